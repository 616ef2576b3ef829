package treasure

import "math/rand"

// Rand is the randomness the simulation draws from.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

var _ Rand = (*rand.Rand)(nil)

// newRand builds the production source for a seed.
func newRand(seed int64) Rand {
	return rand.New(rand.NewSource(seed)) //#nosec G404 -- gameplay randomness, not security
}

// randRange returns an integer in the inclusive range [lo, hi].
func randRange(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.Intn(hi-lo+1)
}

// uniform returns a float in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + r.Float64()*(hi-lo)
}

// choice picks one element of a non-empty slice.
func choice[T any](r Rand, items []T) T {
	return items[r.Intn(len(items))]
}
