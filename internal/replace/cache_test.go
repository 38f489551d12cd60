package replace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wfst/internal/fst"
)

func TestCacheExpandsEachStateAtMostOnce(t *testing.T) {
	calls := 0
	c := newCache[int](
		func() (int, bool) { return 0, true },
		func(int) { calls++ },
		func() int { return 1 },
	)

	_, _ = c.Transitions(0)
	_, _ = c.Transitions(0)
	_, _, _ = c.FinalWeight(0)
	assert.Equal(t, 1, calls, "expand must run exactly once per state regardless of how many queries follow")
}

func TestCacheBuffersTransitionsAndFinalWeight(t *testing.T) {
	var c *Cache[string]
	c = newCache[string](
		func() (int, bool) { return 0, true },
		func(s int) {
			c.PushTransition(s, fst.Transition[string]{ILabel: 1, OLabel: 2, Weight: "w", Next: 1})
			c.SetFinal(s, "done")
		},
		func() int { return 2 },
	)

	trs, err := c.Transitions(0)
	require.NoError(t, err)
	require.Len(t, trs, 1)
	assert.Equal(t, 1, trs[0].ILabel)

	w, ok, err := c.FinalWeight(0)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "done", w)
}

func TestCachePropagatesErrAndWritesNothingElse(t *testing.T) {
	sentinel := errors.New("broken collaborator")
	var c *Cache[int]
	c = newCache[int](
		func() (int, bool) { return 0, true },
		func(s int) {
			// An expand that hits a collaborator error records only the
			// error, as engine.go's expand does. The cache itself makes no
			// promise beyond "don't call expand twice" — buffering the
			// result before committing is the engine's responsibility.
			c.SetErr(s, sentinel)
		},
		func() int { return 1 },
	)

	trs, err := c.Transitions(0)
	assert.ErrorIs(t, err, sentinel)
	assert.Empty(t, trs)

	_, _, err = c.FinalWeight(0)
	assert.ErrorIs(t, err, sentinel)
}

func TestCacheStartIsComputedOnce(t *testing.T) {
	calls := 0
	c := newCache[int](
		func() (int, bool) {
			calls++
			return 5, true
		},
		func(int) {},
		func() int { return 0 },
	)

	s1, ok1 := c.Start()
	s2, ok2 := c.Start()
	assert.Equal(t, 5, s1)
	assert.Equal(t, 5, s2)
	assert.True(t, ok1)
	assert.True(t, ok2)
	assert.Equal(t, 1, calls)
}
