package fst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfst/internal/fst"
)

func TestMutableFstBasics(t *testing.T) {
	m := fst.NewMutableFst[float64]()
	s0 := m.AddState()
	s1 := m.AddState()
	m.SetStart(s0)
	m.SetFinal(s1, 0.0)
	m.AddTransition(s0, fst.Transition[float64]{ILabel: 1, OLabel: 1, Weight: 0.0, Next: s1})

	start, ok := m.Start()
	require.True(t, ok)
	assert.Equal(t, s0, start)

	assert.False(t, m.IsFinal(s0))
	assert.True(t, m.IsFinal(s1))

	w, ok := m.FinalWeight(s1)
	require.True(t, ok)
	assert.Equal(t, 0.0, w)

	trs := m.Transitions(s0)
	require.Len(t, trs, 1)
	assert.Equal(t, s1, trs[0].Next)

	assert.Equal(t, 2, m.NumStates())
	assert.Empty(t, m.Transitions(s1))
}

func TestMutableFstNoStart(t *testing.T) {
	m := fst.NewMutableFst[float64]()
	_, ok := m.Start()
	assert.False(t, ok)
}
