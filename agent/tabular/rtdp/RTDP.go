// Package rtdp implements the Real-Time Dynamic Programming algorithm
// for planning in known MDPs.
//
// RTDP repeatedly simulates trials from the start state of an MDP,
// acting greedily with respect to its current value estimates and
// sampling successor states from the MDP's transition model. States
// are only given value estimates once they are touched, at which point
// they are initialized with a Heuristic.
//
// In forward mode, the value of each visited state is updated right
// before the agent leaves it. In reverse mode, the visited state-action
// pairs are recorded during the trial and all updates are applied once
// the trial ends, starting from the last visited state.
package rtdp

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/environment"
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/timestep"
	"github.com/samuelfneumann/gortdp/utils/floatutils"
)

// RTDP implements the Real-Time Dynamic Programming algorithm
type RTDP struct {
	model      mdp.Model
	discount   float64
	iterations int
	reverse    bool

	values     *ValueTable
	heuristic  Heuristic
	sampler    *environment.Sampler
	enders     []environment.Ender
	trajectory Trajectory
}

// New creates a new RTDP agent for m, using the GoalDistance heuristic.
// No trials are simulated; see Run and Solve for that.
func New(m mdp.Model, c Config, seed uint64) (*RTDP, error) {
	return NewWithHeuristic(m, c, GoalDistance(m, c.Discount), seed)
}

// NewWithHeuristic creates a new RTDP agent for m which initializes
// the values of untouched states with h.
//
// Every non-terminal state of m whose cell holds a reward has its value
// set to that reward upon construction, so h is never consulted for
// these states.
func NewWithHeuristic(m mdp.Model, c Config, h Heuristic,
	seed uint64) (*RTDP, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("new: %v", err)
	}
	if h == nil {
		return nil, fmt.Errorf("new: heuristic must not be nil")
	}

	values := NewValueTable()
	for _, s := range m.States() {
		if m.IsTerminal(s) {
			continue
		}
		if r, ok := m.Cell(s).Value(); ok {
			values.Set(s, r)
		}
	}

	enders := []environment.Ender{
		environment.NewTerminalEnder(m),
		environment.NewStepLimit(c.MaxIters),
	}

	return &RTDP{
		model:      m,
		discount:   c.Discount,
		iterations: c.Iterations,
		reverse:    c.Reverse,
		values:     values,
		heuristic:  h,
		sampler:    environment.NewSampler(seed),
		enders:     enders,
	}, nil
}

// Solve creates a new RTDP agent for m and simulates c.Iterations
// trials with it
func Solve(m mdp.Model, c Config, seed uint64) (*RTDP, error) {
	r, err := New(m, c, seed)
	if err != nil {
		return nil, err
	}

	r.Run()
	return r, nil
}

// Run simulates the configured number of trials
func (r *RTDP) Run() {
	for i := 0; i < r.iterations; i++ {
		r.Trial()
	}
}

// Iterations returns the number of trials simulated by Run
func (r *RTDP) Iterations() int {
	return r.iterations
}

// Reverse returns whether the agent defers its updates to the end of
// each trial
func (r *RTDP) Reverse() bool {
	return r.reverse
}

// Discount returns the discount factor
func (r *RTDP) Discount() float64 {
	return r.discount
}

// Values returns the agent's value table. Reading values through the
// table does not initialize untouched states.
func (r *RTDP) Values() *ValueTable {
	return r.values
}

// Value returns the value estimate of s. If s has not been assigned a
// value, it is initialized with the heuristic first.
func (r *RTDP) Value(s mdp.State) float64 {
	return r.values.GetOrCompute(s, r.heuristic)
}

// QValue returns the expected discounted return of taking action a in
// state s and then following the current value estimates
func (r *RTDP) QValue(s mdp.State, a mdp.Action) float64 {
	var q float64
	for _, o := range r.model.Transitions(s, a) {
		reward := r.model.Reward(s, a, o.State)
		q += o.Prob * (reward + r.discount*r.Value(o.State))
	}
	return q
}

// Policy returns the greedy action in s. Ties are broken in favour of
// the action which comes first in the model's action ordering. Terminal
// states have no action.
func (r *RTDP) Policy(s mdp.State) (mdp.Action, bool) {
	if r.model.IsTerminal(s) {
		return mdp.NoAction, false
	}

	actions := r.model.Actions(s)
	if len(actions) == 0 {
		return mdp.NoAction, false
	}

	q := make([]float64, len(actions))
	for i, a := range actions {
		q[i] = r.QValue(s, a)
	}

	i, _ := floatutils.ArgMax(q)
	return actions[i], true
}

// Action returns the action taken in s, which is always the greedy
// action
func (r *RTDP) Action(s mdp.State) (mdp.Action, bool) {
	return r.Policy(s)
}

// Trial simulates a single trial from the start state, applying all
// value updates of the trial before returning. A trial ends when a
// terminal state is reached or after MaxIters transitions.
func (r *RTDP) Trial() timestep.Trial {
	var trial timestep.Trial
	r.trajectory.Reset()

	step := timestep.New(timestep.First, r.model.Start(), mdp.NoAction, 0, 0)
	for !environment.End(&step, r.enders...) {
		trial.Steps = append(trial.Steps, step)

		s := step.State
		a, _ := r.Action(s)
		if r.reverse {
			r.trajectory.Push(s, a)
		} else {
			r.backup(s, a)
			trial.Backups++
		}

		next := r.sampler.Sample(r.model.Transitions(s, a))
		reward := r.model.Reward(s, a, next)
		step = timestep.New(timestep.Mid, next, a, reward, step.Number+1)
	}
	trial.Steps = append(trial.Steps, step)

	for !r.trajectory.Empty() {
		r.backup(r.trajectory.Pop())
		trial.Backups++
	}

	return trial
}

// backup sets the value of s to the value of taking a in s
func (r *RTDP) backup(s mdp.State, a mdp.Action) {
	r.values.Set(s, r.QValue(s, a))
}

// Ensure RTDP implements the agent.Trialer interface
var _ agent.Trialer = &RTDP{}
