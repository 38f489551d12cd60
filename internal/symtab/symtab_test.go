package symtab_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfst/internal/symtab"
)

func TestAddAndLookupSymbol(t *testing.T) {
	tab := symtab.New("phones")
	tab.AddSymbol(1, "AH")
	tab.AddSymbol(2, "EY")

	sym, ok := tab.Symbol(1)
	require.True(t, ok)
	assert.Equal(t, "AH", sym)

	label, ok := tab.Label("EY")
	require.True(t, ok)
	assert.Equal(t, 2, label)

	assert.Equal(t, 2, tab.Len())
	assert.Equal(t, "phones", tab.Name())
}

func TestAddSymbolIdempotent(t *testing.T) {
	tab := symtab.New("t")
	tab.AddSymbol(1, "A")
	assert.NotPanics(t, func() { tab.AddSymbol(1, "A") })
}

func TestAddSymbolConflictPanics(t *testing.T) {
	tab := symtab.New("t")
	tab.AddSymbol(1, "A")
	assert.Panics(t, func() { tab.AddSymbol(1, "B") })
}

func TestUnknownLookupMiss(t *testing.T) {
	tab := symtab.New("t")
	_, ok := tab.Symbol(99)
	assert.False(t, ok)
	_, ok = tab.Label("nope")
	assert.False(t, ok)
}
