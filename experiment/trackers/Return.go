package trackers

import (
	"fmt"

	ts "github.com/samuelfneumann/gortdp/timestep"
)

// Return tracks and saves the undiscounted return of each trial in an
// experiment. When a trial produces a TimeStep, this Tracker will
// extract the reward and accumulate the return for the trial.
type Return struct {
	lastTimeStep  int
	currentReturn float64
	trialReturns  []float64
	filename      string
}

// NewReturn creates and returns a new *Return Tracker
func NewReturn(filename string) *Return {
	return &Return{lastTimeStep: -1, filename: filename}
}

// Track tracks the rewards seen on a timestep. When a new trial starts,
// this method will automatically detect this and start accumulating
// the rewards for this new trial separately from the rewards seen on
// previous trials.
//
// Track panics if it is called for non-sequential timesteps
func (r *Return) Track(step ts.TimeStep) {
	// Ensure that Track is called on sequential timesteps
	if r.lastTimeStep+1 != step.Number {
		msg := fmt.Sprintf("track: last two timesteps tracked are not "+
			"sequential: timestep %v --> timestep %v were tracked",
			r.lastTimeStep, step.Number)
		panic(msg)
	}

	r.currentReturn += step.Reward
	if !step.Last() {
		r.lastTimeStep = step.Number
		return
	}

	// Trial has ended, save the return and begin tracking the return
	// for a new trial
	r.trialReturns = append(r.trialReturns, r.currentReturn)
	r.currentReturn = 0.0
	r.lastTimeStep = -1
}

// Data returns the return of each tracked trial
func (r *Return) Data() []float64 {
	return r.trialReturns
}

// Name returns the name of the tracked data
func (r *Return) Name() string {
	return "Return"
}

// Save saves the data tracked by the Return Tracker to disk.
func (r *Return) Save() error {
	return save(r.filename, r.trialReturns)
}
