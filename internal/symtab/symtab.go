// Package symtab provides a small bidirectional label/string table, the
// optional alphabet a component wFST may expose per spec.md §6, propagated
// unchanged from the root component to the Replace facade.
package symtab

import "strconv"

// Table maps between dense non-negative integer labels and their symbol
// names. It never reassigns or removes an entry once added — the same
// "no deletion, no rehashing that invalidates identifiers" contract the
// core's interners uphold (see internal/replace/interner.go).
type Table struct {
	name       string
	labelToSym map[int]string
	symToLabel map[string]int
}

// New returns an empty table with the given display name (e.g. "bytes" or
// "phones"), used only for diagnostics and printing.
func New(name string) *Table {
	return &Table{
		name:       name,
		labelToSym: make(map[int]string),
		symToLabel: make(map[string]int),
	}
}

// Name returns the table's display name.
func (t *Table) Name() string {
	return t.name
}

// AddSymbol registers sym at label. Re-adding the same (label, sym) pair is
// a no-op; registering a different symbol at an already-used label, or an
// already-used symbol at a different label, panics, since it would silently
// invalidate every downstream lookup.
func (t *Table) AddSymbol(label int, sym string) {
	if existing, ok := t.labelToSym[label]; ok {
		if existing != sym {
			panic("symtab: label " + strconv.Itoa(label) + " reassigned to " + sym + ", was " + existing)
		}
		return
	}
	if existing, ok := t.symToLabel[sym]; ok {
		panic("symtab: symbol " + sym + " reassigned to label " + strconv.Itoa(label) + ", was " + strconv.Itoa(existing))
	}
	t.labelToSym[label] = sym
	t.symToLabel[sym] = label
}

// Symbol returns the symbol registered at label, if any.
func (t *Table) Symbol(label int) (string, bool) {
	s, ok := t.labelToSym[label]
	return s, ok
}

// Label returns the label registered for sym, if any.
func (t *Table) Label(sym string) (int, bool) {
	l, ok := t.symToLabel[sym]
	return l, ok
}

// Len returns the number of registered symbols.
func (t *Table) Len() int {
	return len(t.labelToSym)
}
