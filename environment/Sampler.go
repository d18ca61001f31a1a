package environment

import (
	"fmt"

	"golang.org/x/exp/rand"

	"github.com/samuelfneumann/gortdp/mdp"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler samples successor states from transition distributions by
// inverse-CDF sampling. Outcomes are scanned in the order given, so
// that draws falling on a cumulative boundary always resolve to the
// earlier outcome.
//
// Two Samplers with the same seed return the same sequence of samples
// given the same sequence of distributions.
type Sampler struct {
	seed       uint64
	source     rand.Source
	cumulative []float64
}

// NewSampler returns a new Sampler seeded with seed
func NewSampler(seed uint64) *Sampler {
	return &Sampler{seed: seed, source: rand.NewSource(seed)}
}

// Seed returns the seed the Sampler was created with
func (s *Sampler) Seed() uint64 {
	return s.seed
}

// Sample returns the state of a single outcome drawn from the
// distribution of outcomes, weighting each outcome by its Prob.
func (s *Sampler) Sample(outcomes []mdp.Outcome) mdp.State {
	weights := make([]float64, len(outcomes))
	for i := range outcomes {
		weights[i] = outcomes[i].Prob
	}
	return outcomes[s.Choose(weights)].State
}

// Choose returns the index of an element of weights, chosen with
// probability proportional to its weight. A value r is drawn uniformly
// from [0, total weight) and the first index with positive weight whose
// cumulative weight is at least r is returned.
//
// Choose panics if weights is empty, has negative elements, or sums
// to a non-positive value. Such distributions are malformed and can
// never be sampled from.
func (s *Sampler) Choose(weights []float64) int {
	if len(weights) == 0 {
		panic("choose: cannot sample from an empty distribution")
	}
	if w := floats.Min(weights); w < 0 {
		panic(fmt.Sprintf("choose: negative weight %v", w))
	}

	if cap(s.cumulative) < len(weights) {
		s.cumulative = make([]float64, len(weights))
	}
	cumulative := floats.CumSum(s.cumulative[:len(weights)], weights)

	total := cumulative[len(cumulative)-1]
	if !(total > 0) {
		panic(fmt.Sprintf("choose: total weight %v must be positive", total))
	}

	r := distuv.Uniform{Min: 0, Max: total, Src: s.source}.Rand()
	for i := range cumulative {
		if weights[i] > 0 && cumulative[i] >= r {
			return i
		}
	}

	panic(fmt.Sprintf("choose: no outcome selected for draw %v of total "+
		"weight %v", r, total))
}
