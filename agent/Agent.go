// Package agent defines agent interfaces for planning in known MDPs
package agent

import (
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/timestep"
)

// Agent determines the implementation details of a planning agent
//
// An Agent is composed of a ValueEstimator, which estimates the values
// of states and actions, and a Policy which chooses actions in each
// state. The Policy of an Agent is greedy with respect to the
// estimates of its ValueEstimator.
type Agent interface {
	ValueEstimator
	Policy
}

// ValueEstimator estimates the values of states and state-action pairs
type ValueEstimator interface {
	// Value returns the estimated value of a state
	Value(mdp.State) float64

	// QValue returns the estimated value of taking an action in a state
	QValue(mdp.State, mdp.Action) float64
}

// Policy represents a deterministic policy. Both methods return the
// action taken in a state, or mdp.NoAction and false if the state has
// no legal actions.
type Policy interface {
	Policy(mdp.State) (mdp.Action, bool)
	Action(mdp.State) (mdp.Action, bool)
}

// Trialer is an Agent which plans by simulating trials in its MDP
type Trialer interface {
	Agent

	// Trial simulates a single trial and performs all its value updates
	Trial() timestep.Trial

	// Iterations returns the number of trials the agent is configured
	// to simulate
	Iterations() int
}
