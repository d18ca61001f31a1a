package timestep

import (
	"testing"

	"github.com/samuelfneumann/gortdp/mdp"
)

func TestTrial(t *testing.T) {
	var empty Trial
	if empty.Len() != 0 || empty.End() != Unfinished || empty.Return() != 0 {
		t.Errorf("empty trial: got len %v, end %v, return %v", empty.Len(),
			empty.End(), empty.Return())
	}

	last := New(Last, mdp.TerminalState, mdp.Exit, 1.0, 2)
	last.SetEnd(TerminalStateReached)
	trial := Trial{
		Steps: []TimeStep{
			New(First, mdp.State{X: 0, Y: 0}, mdp.NoAction, 0, 0),
			New(Mid, mdp.State{X: 1, Y: 0}, mdp.East, -0.5, 1),
			last,
		},
	}

	if l := trial.Len(); l != 2 {
		t.Errorf("len: got %v, want 2", l)
	}
	if e := trial.End(); e != TerminalStateReached {
		t.Errorf("end: got %v, want %v", e, TerminalStateReached)
	}
	if r := trial.Return(); r != 0.5 {
		t.Errorf("return: got %v, want 0.5", r)
	}
	if !trial.Steps[0].First() || !trial.Steps[1].Mid() ||
		!trial.Steps[2].Last() {
		t.Error("step types not preserved")
	}
}
