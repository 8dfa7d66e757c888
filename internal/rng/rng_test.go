package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSameSeedSameSequence(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Float(), b.Float())
		assert.Equal(t, a.IntBetween(0, 10), b.IntBetween(0, 10))
		assert.Equal(t, a.CoinToss(), b.CoinToss())
	}
}

func TestChanceExtremes(t *testing.T) {
	r := New(1)
	for i := 0; i < 100; i++ {
		assert.False(t, r.Chance(0))
		assert.True(t, r.Chance(100))
	}
}

func TestFloatBetweenStaysInRange(t *testing.T) {
	r := New(7)
	for i := 0; i < 1000; i++ {
		v := r.FloatBetween(92, 94)
		assert.GreaterOrEqual(t, v, 92.0)
		assert.Less(t, v, 94.0)
	}
}

func TestIntBetweenIsInclusive(t *testing.T) {
	r := New(3)
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v := r.IntBetween(0, 4)
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 4)
		seen[v] = true
	}
	assert.Len(t, seen, 5)
}

func TestCoinTossIsBinary(t *testing.T) {
	r := New(9)
	for i := 0; i < 100; i++ {
		v := r.CoinToss()
		assert.True(t, v == 0 || v == 1)
	}
}
