package sim

import (
	"testing"
)

func TestPriorityGenerator_DrawsAreInRange(t *testing.T) {
	g := NewPriorityGenerator(DefaultSeed)
	for i := 0; i < 1000; i++ {
		p := g.Draw()
		if p < 1 || p > 5 {
			t.Fatalf("draw %d: got priority %d, want 1..5", i, p)
		}
	}
}

func TestPriorityGenerator_SameSeedSameSequence(t *testing.T) {
	// GIVEN two generators with the same seed
	g1 := NewPriorityGenerator(42)
	g2 := NewPriorityGenerator(42)

	// THEN they produce identical sequences
	for i := 0; i < 100; i++ {
		v1, v2 := g1.Draw(), g2.Draw()
		if v1 != v2 {
			t.Fatalf("draw %d: got %d and %d, want identical", i, v1, v2)
		}
	}
}

func TestPriorityGenerator_ReseedRestartsSequence(t *testing.T) {
	g := NewPriorityGenerator(42)
	first := make([]int, 10)
	for i := range first {
		first[i] = g.Draw()
	}

	// WHEN the generator is reseeded with the same value
	g.Reseed(42)

	// THEN the sequence restarts from the beginning
	for i := range first {
		if got := g.Draw(); got != first[i] {
			t.Fatalf("draw %d after reseed: got %d, want %d", i, got, first[i])
		}
	}
}

func TestPriorityGenerator_DistributionRoughlyMatchesWeights(t *testing.T) {
	// GIVEN many draws from a fixed seed
	g := NewPriorityGenerator(7)
	const n = 100000
	counts := make([]int, 6)
	for i := 0; i < n; i++ {
		counts[g.Draw()]++
	}

	// THEN each priority's frequency is near its weight. Loose bounds:
	// a deterministic seed keeps this stable, the tolerance only guards
	// against a broken cumulative mapping (e.g. uniform or off-by-one).
	want := []float64{0, 0.10, 0.20, 0.30, 0.25, 0.15}
	for p := 1; p <= 5; p++ {
		freq := float64(counts[p]) / n
		if freq < want[p]-0.02 || freq > want[p]+0.02 {
			t.Errorf("priority %d frequency: got %.3f, want %.2f±0.02", p, freq, want[p])
		}
	}
}
