package sim

import (
	"math/rand"
)

// DefaultSeed seeds the priority generator when no seed is given.
// Repeated runs with the same input and seed MUST produce identical
// priority assignments and therefore identical trace output.
const DefaultSeed int64 = 42

// priorityWeights is the fixed discrete distribution over priorities 1..5.
// Mid-range priorities are the most common.
var priorityWeights = [5]float64{0.10, 0.20, 0.30, 0.25, 0.15}

// PriorityGenerator draws priorities for walk-in patients from a seeded
// generator. Each Simulator owns its own generator so tests can create
// independent instances with independent sequences.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PriorityGenerator struct {
	rng *rand.Rand
}

// NewPriorityGenerator creates a generator seeded with the given value.
func NewPriorityGenerator(seed int64) *PriorityGenerator {
	return &PriorityGenerator{rng: rand.New(rand.NewSource(seed))}
}

// Draw returns one priority in 1..5 sampled according to priorityWeights.
// The draw is a single atomic weighted sample: one uniform variate mapped
// through the cumulative weights, not five independent comparisons.
func (g *PriorityGenerator) Draw() int {
	var total float64
	for _, w := range priorityWeights {
		total += w
	}
	u := g.rng.Float64() * total
	var cumulative float64
	for i, w := range priorityWeights {
		cumulative += w
		if u < cumulative {
			return i + 1
		}
	}
	// Float64 rounding can leave u == total; the last bucket takes it.
	return len(priorityWeights)
}

// Reseed replaces the generator state, for test isolation.
func (g *PriorityGenerator) Reseed(seed int64) {
	g.rng = rand.New(rand.NewSource(seed))
}
