package replace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfst/internal/fst"
	"wfst/internal/replace"
	"wfst/internal/semiring"
	"wfst/internal/symtab"
)

func TestFacadePropagatesRootSymbolTables(t *testing.T) {
	a := singleArcComponent(1, 1, semiring.TropicalOne)
	in := symtab.New("inputs")
	in.AddSymbol(1, "a")
	out := symtab.New("outputs")
	out.AddSymbol(1, "a")
	a.SetInputSymbols(in)
	a.SetOutputSymbols(out)

	engine, err := replace.New([]replace.Component[semiring.Tropical]{{Label: 10, Fst: a}}, 10, replace.NewEpsilonConfig(false))
	require.NoError(t, err)
	facade := replace.NewFacade(engine)

	require.NotNil(t, facade.InputSymbols())
	require.NotNil(t, facade.OutputSymbols())
	sym, ok := facade.InputSymbols().Symbol(1)
	require.True(t, ok)
	assert.Equal(t, "a", sym)
	sym, ok = facade.OutputSymbols().Symbol(1)
	require.True(t, ok)
	assert.Equal(t, "a", sym)

	materialized := facade.Materialize()
	require.NotNil(t, materialized.InputSymbols())
	sym, ok = materialized.InputSymbols().Symbol(1)
	require.True(t, ok)
	assert.Equal(t, "a", sym)
}

func TestFacadeNoSymbolTablesIsNil(t *testing.T) {
	a := singleArcComponent(1, 1, semiring.TropicalOne)
	engine, err := replace.New([]replace.Component[semiring.Tropical]{{Label: 10, Fst: a}}, 10, replace.NewEpsilonConfig(false))
	require.NoError(t, err)
	facade := replace.NewFacade(engine)

	assert.Nil(t, facade.InputSymbols())
	assert.Nil(t, facade.OutputSymbols())
}

func TestMaterializeOfEmptyEngineYieldsEmptyFst(t *testing.T) {
	// A component whose start is unset: Replace has no reachable state at
	// all.
	empty := fst.NewMutableFst[semiring.Tropical]()

	m, err := replace.Replace([]replace.Component[semiring.Tropical]{
		{Label: 10, Fst: empty},
	}, 10, false)
	require.NoError(t, err)
	assert.Equal(t, 0, m.NumStates())
	_, ok := m.Start()
	assert.False(t, ok)
}

func TestMaterializeIsDeterministicAcrossCalls(t *testing.T) {
	a, b := twoLevelComponents()
	engine, err := replace.New([]replace.Component[semiring.Tropical]{
		{Label: 10, Fst: a},
		{Label: 20, Fst: b},
	}, 10, replace.NewEpsilonConfig(true))
	require.NoError(t, err)
	facade := replace.NewFacade(engine)

	first := facade.Materialize()
	second := facade.Materialize()
	assert.Equal(t, first.NumStates(), second.NumStates())
}
