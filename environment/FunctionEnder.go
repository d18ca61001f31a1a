package environment

import (
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/timestep"
)

// FunctionEnder ends a trial whenever a function of the current state
// returns true.
type FunctionEnder struct {
	end     func(mdp.State) bool
	endType timestep.EndType
}

// NewFunctionEnder returns a new FunctionEnder which ends trials with
// end type endType when f returns true.
func NewFunctionEnder(f func(mdp.State) bool, endType timestep.EndType) Ender {
	return &FunctionEnder{f, endType}
}

// NewTerminalEnder returns an Ender which ends trials when a terminal
// state of m is reached.
func NewTerminalEnder(m mdp.Model) Ender {
	return NewFunctionEnder(m.IsTerminal, timestep.TerminalStateReached)
}

// End determines whether or not the current trial should be ended,
// returning a boolean to indicate trial termination. If the trial
// should be ended, End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is the appropriate ending
// type.
func (f *FunctionEnder) End(t *timestep.TimeStep) bool {
	if f.end(t.State) {
		t.StepType = timestep.Last
		t.SetEnd(f.endType)
		return true
	}
	return false
}
