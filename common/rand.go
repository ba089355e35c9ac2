package common

import "math/rand/v2"

// Rand is the random source used by everything that rolls dice during a
// battle. *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// NewRand returns a PCG-backed source seeded from seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// RangeInt returns a uniform integer in [lo, hi]. hi < lo yields lo.
func RangeInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}

// RangeFloat returns a uniform float in [lo, hi).
func RangeFloat(r Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + r.Float64()*(hi-lo)
}

// Pick returns a uniform index in [0, n).
func Pick(r Rand, n int) int {
	if n <= 1 {
		return 0
	}
	return r.IntN(n)
}
