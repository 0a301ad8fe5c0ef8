package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// RandomFactors are the per-direction scalars applied to the branch angle.
// A turns the first child, B the second. Both lie in [0, 1).
type RandomFactors struct {
	A float64
	B float64
}

// Factors rolls a fresh pair of independent, uniform random factors.
func (r *RNG) Factors() RandomFactors {
	return RandomFactors{A: r.r.Float64(), B: r.r.Float64()}
}
