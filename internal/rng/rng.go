package rng

import (
	"math/rand"
)

// Rng wraps a seeded uniform source so every stochastic decision in the
// simulation can be reproduced from a single seed.
type Rng struct {
	src *rand.Rand
}

func New(seed int64) *Rng {
	return &Rng{src: rand.New(rand.NewSource(seed))}
}

// Chance returns true with the given probability expressed as a percentage.
func (r *Rng) Chance(percent float64) bool {
	return r.src.Float64() < percent/100.0
}

// Float returns a uniform draw in [0, 1).
func (r *Rng) Float() float64 {
	return r.src.Float64()
}

// FloatBetween returns a uniform draw in [lo, hi).
func (r *Rng) FloatBetween(lo, hi float64) float64 {
	return lo + r.src.Float64()*(hi-lo)
}

// IntBetween returns a uniform draw in [lo, hi], inclusive on both ends.
func (r *Rng) IntBetween(lo, hi int) int {
	return lo + r.src.Intn(hi-lo+1)
}

// CoinToss returns 0 or 1 with equal probability.
func (r *Rng) CoinToss() int {
	return r.src.Intn(2)
}
