package sim

import "math/rand"

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// NewRNG returns the single seeded generator for a run. Determinism depends
// on every consumer drawing from this one stream in a fixed order per tick:
// the roster shuffle first, then each agent's own draws in shuffled order.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
func NewRNG(key SimulationKey) *rand.Rand {
	return rand.New(rand.NewSource(int64(key)))
}

// weightedIndex draws an index from weights proportionally. Weights must be
// positive; their sum need not be 1.
func weightedIndex(rng *rand.Rand, weights []float64) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	r := rng.Float64() * sum
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}
