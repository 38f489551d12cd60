package grammarlang

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ReplaceLexer tokenizes the textual component-table DSL: component blocks
// naming a non-terminal label, their start/final declarations, and their
// arcs, plus a trailing root declaration.
var ReplaceLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{"DocComment", `///[^\n]*`, nil},
		{"Comment", `//[^\n]*`, nil},

		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Float before Int: a bare integer like "12" must not be consumed
		// greedily by the Float rule's optional fractional part matching
		// nothing, so Float requires a decimal point or exponent.
		{"Float", `[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?|[0-9]+[eE][-+]?[0-9]+`, nil},
		{"Int", `[0-9]+`, nil},

		{"Punctuation", `[{}:,]`, nil},

		{"Whitespace", `[ \t\r\n]+`, nil},
	},
})
