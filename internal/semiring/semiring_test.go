package semiring_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"wfst/internal/semiring"
)

func TestTropicalAddIsMin(t *testing.T) {
	assert.Equal(t, semiring.Tropical(1.0), semiring.Tropical(1.0).Add(semiring.Tropical(2.0)))
	assert.Equal(t, semiring.Tropical(2.0), semiring.Tropical(3.0).Add(semiring.Tropical(2.0)))
}

func TestTropicalMulIsPlus(t *testing.T) {
	assert.Equal(t, semiring.Tropical(5.0), semiring.Tropical(2.0).Mul(semiring.Tropical(3.0)))
}

func TestTropicalZeroAbsorbsMul(t *testing.T) {
	assert.True(t, semiring.TropicalZero.Mul(semiring.Tropical(3.0)).IsZero())
}

func TestTropicalOneIsMulIdentity(t *testing.T) {
	assert.Equal(t, semiring.Tropical(4.0), semiring.TropicalOne.Mul(semiring.Tropical(4.0)))
}

func TestLogZeroIsIdentityForAdd(t *testing.T) {
	assert.Equal(t, semiring.Log(3.0), semiring.LogZero.Add(semiring.Log(3.0)))
}

func TestLogIsZeroDetectsInf(t *testing.T) {
	assert.True(t, semiring.Log(math.Inf(1)).IsZero())
	assert.False(t, semiring.Log(0).IsZero())
}

func TestBooleanSemiring(t *testing.T) {
	assert.Equal(t, semiring.Boolean(true), semiring.Boolean(true).Add(semiring.Boolean(false)))
	assert.Equal(t, semiring.Boolean(false), semiring.Boolean(true).Mul(semiring.Boolean(false)))
	assert.True(t, semiring.BooleanZero.IsZero())
	assert.False(t, semiring.BooleanOne.IsZero())
}
