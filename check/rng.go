// Package check - deterministic RNG for point sampling.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe; each Run owns its own stream.
package check

import "math/rand"

// defaultRNGSeed is the fixed seed used when callers pass seed==0.
const defaultRNGSeed int64 = 1

// effectiveSeed applies the zero-seed policy.
func effectiveSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// rngFromSeed returns a deterministic *rand.Rand for the effective seed.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(effectiveSeed(seed)))
}

// uniform draws from [lo, hi).
func uniform(r *rand.Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}
