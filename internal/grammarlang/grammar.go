// Package grammarlang implements a textual DSL for describing a Replace
// component table: each component is a small weighted automaton named by
// the non-terminal label it is invoked under, plus a root declaration
// naming which component starts the recursion. build.go turns the parsed
// AST into internal/replace inputs.
package grammarlang

import (
	"strconv"

	"github.com/alecthomas/participle/v2/lexer"
)

// Weight captures either an Int or a Float token as a float64 — arc and
// final-state weights may be written "0" or "0.0" interchangeably.
type Weight float64

// Capture implements participle's capture-from-raw-tokens protocol.
func (w *Weight) Capture(values []string) error {
	f, err := strconv.ParseFloat(values[0], 64)
	if err != nil {
		return err
	}
	*w = Weight(f)
	return nil
}

// Program is a sequence of component declarations followed by exactly one
// root declaration.
type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Components []*ComponentDecl `@@*`
	Root       *RootDecl        `@@`
}

// ComponentDecl declares one component wFST: its non-terminal label, a
// single start-state declaration, zero or more final-state declarations,
// and zero or more arcs.
type ComponentDecl struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Name   string       `"component" @Ident ":"`
	Label  int          `@Int "{"`
	Start  *StartDecl   `@@`
	Finals []*FinalDecl `@@*`
	Arcs   []*ArcDecl   `@@*`
	Close  string       `"}"`
}

// StartDecl names the component's single start state.
type StartDecl struct {
	Pos   lexer.Position
	State int `"start" ":" @Int`
}

// FinalDecl marks a state final with the given weight.
type FinalDecl struct {
	Pos    lexer.Position
	State  int    `"final" ":" @Int`
	Weight Weight `@(Float|Int)`
}

// ArcDecl is one transition: arc FROM TO ILABEL OLABEL WEIGHT.
type ArcDecl struct {
	Pos    lexer.Position
	From   int    `"arc" @Int`
	To     int    `@Int`
	ILabel int    `@Int`
	OLabel int    `@Int`
	Weight Weight `@(Float|Int)`
}

// RootDecl names which component label the Replace recursion starts from.
type RootDecl struct {
	Pos   lexer.Position
	Label int `"root" ":" @Int`
}
