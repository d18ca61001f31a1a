// Package vi implements synchronous value iteration over the full
// state space of a known MDP. It serves as an exact baseline for
// trial-based planners.
package vi

import (
	"fmt"
	"math"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/utils/floatutils"
)

// ValueIteration implements synchronous value iteration. All values
// start at 0 and every sweep computes the new value of each state
// from the values of the previous sweep.
type ValueIteration struct {
	model    mdp.Model
	discount float64
	values   map[mdp.State]float64
	sweeps   int
}

// New creates a new ValueIteration agent and runs value iteration
// on m until the configured number of sweeps is reached or the values
// converge to within the configured tolerance
func New(m mdp.Model, c Config) (*ValueIteration, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}

	v := &ValueIteration{
		model:    m,
		discount: c.Discount,
		values:   make(map[mdp.State]float64),
	}

	for v.sweeps < c.Iterations {
		delta := v.sweep()
		v.sweeps++
		if c.Tolerance > 0 && delta <= c.Tolerance {
			break
		}
	}
	return v, nil
}

// sweep performs a single synchronous backup of every state and
// returns the largest change in value
func (v *ValueIteration) sweep() float64 {
	next := make(map[mdp.State]float64, len(v.values))
	var delta float64

	for _, s := range v.model.States() {
		if v.model.IsTerminal(s) {
			continue
		}

		if _, q, ok := v.greedy(s); ok {
			next[s] = q
		}
		delta = math.Max(delta, math.Abs(next[s]-v.values[s]))
	}

	v.values = next
	return delta
}

// greedy returns the first action with maximal value in s
func (v *ValueIteration) greedy(s mdp.State) (mdp.Action, float64, bool) {
	if v.model.IsTerminal(s) {
		return mdp.NoAction, 0, false
	}
	actions := v.model.Actions(s)
	if len(actions) == 0 {
		return mdp.NoAction, 0, false
	}

	q := make([]float64, len(actions))
	for i, a := range actions {
		q[i] = v.QValue(s, a)
	}

	i, best := floatutils.ArgMax(q)
	return actions[i], best, true
}

// Sweeps returns the number of sweeps performed
func (v *ValueIteration) Sweeps() int {
	return v.sweeps
}

// Value returns the value of s. States without a value have value 0.
func (v *ValueIteration) Value(s mdp.State) float64 {
	return v.values[s]
}

// QValue returns the value of taking action a in state s
func (v *ValueIteration) QValue(s mdp.State, a mdp.Action) float64 {
	var q float64
	for _, o := range v.model.Transitions(s, a) {
		reward := v.model.Reward(s, a, o.State)
		q += o.Prob * (reward + v.discount*v.values[o.State])
	}
	return q
}

// Policy returns the greedy action in s, breaking ties in favour of
// the action which comes first in the model's action ordering
func (v *ValueIteration) Policy(s mdp.State) (mdp.Action, bool) {
	a, _, ok := v.greedy(s)
	return a, ok
}

// Action returns the greedy action in s
func (v *ValueIteration) Action(s mdp.State) (mdp.Action, bool) {
	return v.Policy(s)
}

// Ensure ValueIteration implements the agent.Agent interface
var _ agent.Agent = &ValueIteration{}
