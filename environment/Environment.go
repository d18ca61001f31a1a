// Package environment implements the pieces needed to simulate trials
// in a known MDP: starting state distributions, successor sampling, and
// trial termination conditions
package environment

import (
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/timestep"
)

// Starter implements a distribution of starting states and samples
// starting states for trials
type Starter interface {
	Start() mdp.State
}

// Ender determines when trials end. If the trial should end at the
// argument TimeStep, End modifies the TimeStep so that its StepType is
// timestep.Last and its EndType records why the trial ended.
type Ender interface {
	End(*timestep.TimeStep) bool
}

// End checks each Ender in order and returns true at the first Ender
// which ends the trial. Later Enders are not consulted.
func End(t *timestep.TimeStep, enders ...Ender) bool {
	for _, e := range enders {
		if e.End(t) {
			return true
		}
	}
	return false
}
