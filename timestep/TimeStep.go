// Package timestep implements timesteps of simulated trials in an MDP
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/mdp"
)

// StepType denotes the type of step that a TimeStep can be, either the
// first step of a trial, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType denotes why a trial ended
type EndType int

const (
	// Unfinished is the EndType of every TimeStep that is not Last
	Unfinished EndType = iota
	TerminalStateReached
	StepLimitReached
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case StepLimitReached:
		return "StepLimitReached"
	default:
		return "Unfinished"
	}
}

// TimeStep packages together a single timestep of a trial. Action is
// the action that led to State and Reward is the reward received for
// that transition. For the first timestep of a trial, Action is
// mdp.NoAction and Reward is 0.
type TimeStep struct {
	StepType StepType
	State    mdp.State
	Action   mdp.Action
	Reward   float64
	Number   int
	end      EndType
}

// New returns a new TimeStep
func New(t StepType, s mdp.State, a mdp.Action, r float64, n int) TimeStep {
	return TimeStep{StepType: t, State: s, Action: a, Reward: r, Number: n}
}

// First returns whether a TimeStep is the first in a trial
func (t *TimeStep) First() bool {
	return t.StepType == First
}

// Mid returns whether a TimeStep is a middle step in a trial
func (t *TimeStep) Mid() bool {
	return t.StepType == Mid
}

// Last returns whether a TimeStep is the last step in a trial
func (t *TimeStep) Last() bool {
	return t.StepType == Last
}

// SetEnd sets the reason the trial ended at this TimeStep
func (t *TimeStep) SetEnd(e EndType) {
	t.end = e
}

// EndType returns why the trial ended at this TimeStep
func (t *TimeStep) EndType() EndType {
	return t.end
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  State: %v  |  Action: %v  |  " +
		"Reward:  %.2f  |  Step Number:  %v"

	return fmt.Sprintf(str, t.StepType, t.State, t.Action, t.Reward, t.Number)
}

// Trial packages together all TimeSteps of a single simulated trial
type Trial struct {
	Steps []TimeStep

	// Backups counts the value updates applied during the trial
	Backups int
}

// Len returns the number of transitions taken in the trial
func (t Trial) Len() int {
	if len(t.Steps) == 0 {
		return 0
	}
	return t.Steps[len(t.Steps)-1].Number
}

// End returns why the trial ended
func (t Trial) End() EndType {
	if len(t.Steps) == 0 {
		return Unfinished
	}
	last := t.Steps[len(t.Steps)-1]
	return last.EndType()
}

// Return returns the undiscounted sum of rewards seen in the trial
func (t Trial) Return() float64 {
	var ret float64
	for _, step := range t.Steps {
		ret += step.Reward
	}
	return ret
}
