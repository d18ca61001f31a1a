package environment

import (
	"math"
	"testing"

	"github.com/samuelfneumann/gortdp/mdp"
)

func TestSamplerFrequencies(t *testing.T) {
	a, b := mdp.State{X: 0, Y: 0}, mdp.State{X: 1, Y: 0}
	outcomes := []mdp.Outcome{{State: a, Prob: 1}, {State: b, Prob: 3}}

	s := NewSampler(1234)
	draws := 10_000
	counts := make(map[mdp.State]int)
	for i := 0; i < draws; i++ {
		counts[s.Sample(outcomes)]++
	}

	freqA := float64(counts[a]) / float64(draws)
	freqB := float64(counts[b]) / float64(draws)
	if math.Abs(freqA-0.25) > 0.05 {
		t.Errorf("sample: frequency of A = %v, want 0.25 ± 0.05", freqA)
	}
	if math.Abs(freqB-0.75) > 0.05 {
		t.Errorf("sample: frequency of B = %v, want 0.75 ± 0.05", freqB)
	}
}

func TestSamplerSeeded(t *testing.T) {
	weights := []float64{0.1, 0.2, 0.3, 0.4}

	s1, s2 := NewSampler(42), NewSampler(42)
	for i := 0; i < 1000; i++ {
		if c1, c2 := s1.Choose(weights), s2.Choose(weights); c1 != c2 {
			t.Fatalf("choose: samplers with equal seeds diverged at draw "+
				"%d: %d != %d", i, c1, c2)
		}
	}

	if s1.Seed() != 42 {
		t.Errorf("seed: got %v, want 42", s1.Seed())
	}
}

func TestSamplerCertainOutcome(t *testing.T) {
	s := NewSampler(7)
	weights := []float64{0, 1, 0}
	for i := 0; i < 1000; i++ {
		if c := s.Choose(weights); c != 1 {
			t.Fatalf("choose: got index %d, want 1", c)
		}
	}
}

func TestSamplerMalformed(t *testing.T) {
	tests := map[string][]float64{
		"empty":    {},
		"zero":     {0, 0},
		"negative": {1, -0.5},
	}

	for name, weights := range tests {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("choose: expected panic for weights %v", weights)
				}
			}()
			NewSampler(1).Choose(weights)
		})
	}
}

func BenchmarkSamplerChoose(b *testing.B) {
	s := NewSampler(1)
	weights := []float64{0.8, 0.1, 0.1}
	for i := 0; i < b.N; i++ {
		s.Choose(weights)
	}
}
