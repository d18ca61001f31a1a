package environment

import "github.com/samuelfneumann/gortdp/timestep"

// StepLimit implements the Ender interface to end trials at specific
// timestep limits
type StepLimit struct {
	episodeSteps int
}

// NewStepLimit creates and returns a new step limit
func NewStepLimit(episodeSteps int) StepLimit {
	return StepLimit{episodeSteps}
}

// End determines whether or not the current trial should be ended,
// returning a boolean to indicate trial termination. If the trial
// should be ended End() will modify the timestep so that its StepType
// field is timestep.Last and its EndType is timestep.StepLimitReached.
func (s StepLimit) End(t *timestep.TimeStep) bool {
	if t.Number >= s.episodeSteps {
		t.StepType = timestep.Last
		t.SetEnd(timestep.StepLimitReached)
		return true
	}
	return false
}
