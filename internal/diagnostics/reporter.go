// Package diagnostics turns Replace construction and expansion errors into
// coded Diagnostic values and renders Diagnostics with Rust-style
// caret-and-gutter formatting.
package diagnostics

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Level is the severity of a Diagnostic.
type Level string

const (
	Error   Level = "error"
	Warning Level = "warning"
	Note    Level = "note"
	Help    Level = "help"
)

// Position is a 1-indexed line/column location in a source file.
type Position struct {
	Filename string
	Line     int
	Column   int
}

// Suggestion is a suggested fix attached to a Diagnostic.
type Suggestion struct {
	Message     string
	Replacement string
}

// Diagnostic is a structured error or warning: a code, a message, the
// source location it refers to, and any suggestions or notes to help fix
// it.
type Diagnostic struct {
	Level       Level
	Code        string
	Message     string
	Position    Position
	Length      int
	Suggestions []Suggestion
	Notes       []string
	HelpText    string
}

// Reporter formats Diagnostics against one source file's text.
type Reporter struct {
	filename string
	lines    []string
}

// NewReporter returns a Reporter over source, attributed to filename.
func NewReporter(filename, source string) *Reporter {
	return &Reporter{filename: filename, lines: strings.Split(source, "\n")}
}

// Format renders d with caret underlines and gutter line numbers.
func (r *Reporter) Format(d Diagnostic) string {
	var b strings.Builder

	levelColor := r.levelColor(d.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()

	if d.Code != "" {
		fmt.Fprintf(&b, "%s[%s]: %s\n", levelColor(string(d.Level)), d.Code, d.Message)
	} else {
		fmt.Fprintf(&b, "%s: %s\n", levelColor(string(d.Level)), d.Message)
	}

	width := r.lineNumberWidth(d.Position.Line)
	gutter := strings.Repeat(" ", width)

	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", gutter, dim("-->"), r.filename, d.Position.Line, d.Position.Column)
	fmt.Fprintf(&b, "%s %s\n", gutter, dim("│"))

	if d.Position.Line > 1 && d.Position.Line-1 <= len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Position.Line-1)), dim("│"), r.lines[d.Position.Line-2])
	}

	if d.Position.Line >= 1 && d.Position.Line <= len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, d.Position.Line)), dim("│"), r.lines[d.Position.Line-1])
		fmt.Fprintf(&b, "%s %s %s\n", gutter, dim("│"), r.marker(d.Position.Column, d.Length, d.Level))
	}

	if d.Position.Line < len(r.lines) {
		fmt.Fprintf(&b, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, d.Position.Line+1)), dim("│"), r.lines[d.Position.Line])
	}

	if len(d.Suggestions) > 0 {
		fmt.Fprintf(&b, "%s %s\n", gutter, dim("│"))
		help := color.New(color.FgCyan).SprintFunc()
		for i, s := range d.Suggestions {
			if i == 0 {
				fmt.Fprintf(&b, "%s %s %s: %s\n", gutter, help("help"), help("try"), s.Message)
			} else {
				fmt.Fprintf(&b, "%s %s %s\n", gutter, help("    "), s.Message)
			}
			if s.Replacement != "" {
				fmt.Fprintf(&b, "%s %s %s\n", gutter, help("│"), help(s.Replacement))
			}
		}
	}

	for _, note := range d.Notes {
		noteColor := color.New(color.FgBlue).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", gutter, dim("│"), noteColor("note:"), note)
	}

	if d.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&b, "%s %s %s %s\n", gutter, dim("│"), helpColor("help:"), d.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (r *Reporter) levelColor(level Level) func(...interface{}) string {
	switch level {
	case Error:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

func (r *Reporter) marker(column, length int, level Level) string {
	if length <= 0 {
		length = 1
	}
	spaces := strings.Repeat(" ", max(0, column-1))

	var markerColor func(...interface{}) string
	switch level {
	case Warning:
		markerColor = color.New(color.FgYellow, color.Bold).SprintFunc()
	default:
		markerColor = color.New(color.FgRed, color.Bold).SprintFunc()
	}
	return spaces + markerColor(strings.Repeat("^", length))
}

func (r *Reporter) lineNumberWidth(line int) int {
	width := len(fmt.Sprintf("%d", line))
	if width < 3 {
		width = 3
	}
	return width
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
