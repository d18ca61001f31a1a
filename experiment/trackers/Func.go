package trackers

import "github.com/samuelfneumann/gortdp/timestep"

// Func tracks the value of a function at the end of each trial, for
// example the value estimate of the start state
type Func struct {
	name     string
	f        func() float64
	values   []float64
	filename string
}

// NewFunc returns a new Func tracker which calls f at the last timestep
// of each trial and saves its data at filename
func NewFunc(name string, f func() float64, filename string) *Func {
	return &Func{name: name, f: f, filename: filename}
}

// Track records the value of the tracked function if t is the last
// timestep of a trial
func (f *Func) Track(t timestep.TimeStep) {
	if t.Last() {
		f.values = append(f.values, f.f())
	}
}

// Data returns the function value recorded for each trial
func (f *Func) Data() []float64 {
	return f.values
}

// Name returns the name of the tracked data
func (f *Func) Name() string {
	return f.name
}

// Save saves the data tracked by the Func Tracker to disk.
func (f *Func) Save() error {
	return save(f.filename, f.values)
}
