package grammarlang

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/fatih/color"
)

var replaceParser = buildParser()

func buildParser() *participle.Parser[Program] {
	p, err := participle.Build[Program](
		participle.Lexer(ReplaceLexer),
		participle.Elide("Whitespace", "Comment", "DocComment"),
		participle.UseLookahead(2),
	)
	if err != nil {
		panic(fmt.Sprintf("grammarlang: malformed grammar definition: %s", err))
	}
	return p
}

// ParseFile reads and parses a component-table source file.
func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %s", err)
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// ParseString parses src, using name only for positions and diagnostics.
func ParseString(name, src string) (*Program, error) {
	program, err := replaceParser.ParseString(name, src)
	if err != nil {
		reportParseError(src, err)
		return nil, err
	}
	return program, nil
}

// reportParseError prints a caret-style parse error: the offending source
// line with a caret under the error column, followed by the parser message.
func reportParseError(src string, err error) {
	pe, ok := err.(participle.Error)
	if !ok {
		color.Red("unexpected error: %s", err)
		return
	}

	pos := pe.Position()
	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		color.Red("syntax error at unknown location: %s", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", pos.Column-1) + "^"

	color.Red("syntax error in %s at line %d, column %d:", pos.Filename, pos.Line, pos.Column)
	fmt.Println(line)
	color.HiRed(caret)
	fmt.Printf("-> %s\n", pe.Message())
}
