package schedule

import "math/rand/v2"

// Source is the random number source used by Generate. *rand.Rand from
// math/rand/v2 satisfies it.
type Source interface {
	// IntN returns a uniform integer in [0, n). n is always > 0.
	IntN(n int) int
}

// NewSource returns a deterministic source; the same seed always produces
// the same schedule for the same options.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewRandomSource returns a source seeded from the runtime's entropy.
func NewRandomSource() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func randInclusive(rng Source, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
