package replace

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInternerAssignsDenseIncreasingIDs(t *testing.T) {
	in := NewInterner[string]()
	assert.Equal(t, 0, in.FindID("a"))
	assert.Equal(t, 1, in.FindID("b"))
	assert.Equal(t, 2, in.FindID("c"))
	assert.Equal(t, 3, in.Len())
}

func TestInternerIsIdempotent(t *testing.T) {
	in := NewInterner[string]()
	first := in.FindID("x")
	second := in.FindID("x")
	assert.Equal(t, first, second)
	assert.Equal(t, 1, in.Len())
}

func TestInternerRoundTrip(t *testing.T) {
	in := NewInterner[prefixKey]()
	k := prefixKey{parent: -1, comp: 2, state: 7}
	id := in.FindID(k)
	assert.Equal(t, k, in.FindKey(id))
}
