// Package rng is a tiny deterministic generator for the randomized
// fills. Identical seeds must reproduce identical output across runs
// and platforms, so this is a fixed 64-bit LCG rather than math/rand.
package rng

// Rng is a linear congruential generator. Not safe for concurrent use.
type Rng struct {
	state uint64
}

// New seeds a generator. Seed 0 is valid.
func New(seed uint64) *Rng {
	return &Rng{state: seed + 1}
}

// Uint64 advances the generator.
func (r *Rng) Uint64() uint64 {
	r.state = r.state*6364136223846793005 + 1442695040888963407
	return r.state
}

// Float64 returns a value in [0, 1).
func (r *Rng) Float64() float64 {
	return float64(r.Uint64()>>11) / (1 << 53)
}

// Signed returns a value in [-1, 1).
func (r *Rng) Signed() float64 {
	return r.Float64()*2 - 1
}

// Range returns a value in [min, max).
func (r *Rng) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Bool returns true with probability p.
func (r *Rng) Bool(p float64) bool {
	return r.Float64() < p
}

// Index returns an index in [0, n). n must be positive.
func (r *Rng) Index(n int) int {
	return int(r.Float64() * float64(n))
}
