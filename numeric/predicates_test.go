package numeric_test

import (
	"math"
	"testing"

	"github.com/nomos-verify/tableau/numeric"
	"github.com/stretchr/testify/assert"
)

func TestIsZero(t *testing.T) {
	assert.True(t, numeric.IsZero(0, 1e-9))
	assert.True(t, numeric.IsZero(1e-10, 1e-9))
	assert.False(t, numeric.IsZero(1e-3, 1e-9))
}

func TestPositiveNegative(t *testing.T) {
	assert.True(t, numeric.IsPositive(1.0, 1e-9))
	assert.False(t, numeric.IsPositive(1e-10, 1e-9))
	assert.True(t, numeric.IsNegative(-1.0, 1e-9))
	assert.False(t, numeric.IsNegative(-1e-10, 1e-9))
}

func TestAreEqualInfinities(t *testing.T) {
	assert.True(t, numeric.AreEqual(math.Inf(1), math.Inf(1), 1e-9))
	assert.False(t, numeric.AreEqual(math.Inf(1), math.Inf(-1), 1e-9))
	assert.False(t, numeric.AreEqual(math.Inf(1), 5.0, 1e-9))
}

func TestOrderingPredicates(t *testing.T) {
	assert.True(t, numeric.LT(1.0, 2.0, 1e-9))
	assert.False(t, numeric.LT(2.0, 2.0+1e-10, 1e-9))
	assert.True(t, numeric.GT(2.0, 1.0, 1e-9))
	assert.True(t, numeric.LTE(2.0, 2.0, 1e-9))
	assert.True(t, numeric.GTE(2.0, 2.0, 1e-9))
	assert.True(t, numeric.LTE(1.9999999999, 2.0, 1e-9))
}

func TestInfinitySentinels(t *testing.T) {
	assert.True(t, math.IsInf(numeric.PositiveInfinity(), 1))
	assert.True(t, math.IsInf(numeric.NegativeInfinity(), -1))
}
