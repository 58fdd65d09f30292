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

// Float64 returns a uniform draw in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// FillBernoulli sets each cell Alive independently with probability p and
// Dead otherwise.
func (r *RNG) FillBernoulli(buf []Cell, p float64) {
	for i := range buf {
		if r.r.Float64() < p {
			buf[i] = Alive
			continue
		}
		buf[i] = Dead
	}
}
