package trackers

import "github.com/samuelfneumann/gortdp/timestep"

// TrialLength tracks and saves the number of transitions taken in each
// trial of an experiment
type TrialLength struct {
	trialLengths []float64
	filename     string
}

// NewTrialLength returns a new TrialLength tracker which will save
// its data at the specified location filename
func NewTrialLength(filename string) *TrialLength {
	return &TrialLength{filename: filename}
}

// Track caches the trial length if the timestep passed to it is the
// last timestep in the trial
func (e *TrialLength) Track(t timestep.TimeStep) {
	if t.Last() {
		e.trialLengths = append(e.trialLengths, float64(t.Number))
	}
}

// Data returns the length of each tracked trial
func (e *TrialLength) Data() []float64 {
	return e.trialLengths
}

// Name returns the name of the tracked data
func (e *TrialLength) Name() string {
	return "TrialLength"
}

// Save saves the data tracked by the TrialLength Tracker to disk.
func (e *TrialLength) Save() error {
	return save(e.filename, e.trialLengths)
}
