package experiment

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/experiment/checkpointer"
	"github.com/samuelfneumann/gortdp/experiment/trackers"
	"github.com/samuelfneumann/gortdp/timestep"
	"github.com/samuelfneumann/progressbar"
	log "github.com/sirupsen/logrus"
)

// Trials is an Experiment that runs a fixed number of trials of an
// agent which plans by simulating trials
type Trials struct {
	agent.Trialer
	id        uuid.UUID
	trials    int
	completed int

	trackers      []trackers.Tracker
	checkpointers []checkpointer.Checkpointer

	log      *log.Entry
	progress *progressbar.ManualProgressBar
}

// NewTrials creates and returns a new experiment which runs n trials
// of agent a. The t parameter determines which data is tracked and
// the c parameter determines how the agent is checkpointed.
func NewTrials(a agent.Trialer, n int, t []trackers.Tracker,
	c []checkpointer.Checkpointer) *Trials {
	id := uuid.New()
	return &Trials{
		Trialer:       a,
		id:            id,
		trials:        n,
		trackers:      t,
		checkpointers: c,
		log:           log.WithField("run", id.String()),
	}
}

// ID returns the unique identifier of the experiment run
func (t *Trials) ID() uuid.UUID {
	return t.id
}

// SetLogger sets the logger that the experiment logs to
func (t *Trials) SetLogger(l *log.Logger) {
	t.log = l.WithField("run", t.id.String())
}

// WithFields adds fields to every record the experiment logs
func (t *Trials) WithFields(fields log.Fields) {
	t.log = t.log.WithFields(fields)
}

// ShowProgress displays a progress bar of width characters on stdout
// while the experiment runs
func (t *Trials) ShowProgress(width int) {
	t.progress = progressbar.NewManual(width, t.trials)
}

// Register registers a Tracker with the experiment so that data
// generated during the experiment can be tracked and saved
func (t *Trials) Register(tr trackers.Tracker) {
	t.trackers = append(t.trackers, tr)
}

// Trackers returns the Trackers registered with the experiment
func (t *Trials) Trackers() []trackers.Tracker {
	return t.trackers
}

// Completed returns the number of trials run so far
func (t *Trials) Completed() int {
	return t.completed
}

// RunTrial runs a single trial of the experiment, tracks its
// TimeSteps, and checkpoints the agent if needed
func (t *Trials) RunTrial() (timestep.Trial, error) {
	trial := t.Trial()
	t.completed++

	for _, step := range trial.Steps {
		t.track(step)
	}

	if t.log.Logger.IsLevelEnabled(log.DebugLevel) {
		start := trial.Steps[0].State
		t.log.WithFields(log.Fields{
			"trial":      t.completed,
			"steps":      trial.Len(),
			"backups":    trial.Backups,
			"end":        trial.End(),
			"startValue": t.Value(start),
		}).Debug("trial finished")
	}

	for _, c := range t.checkpointers {
		if err := c.Checkpoint(t.completed); err != nil {
			return trial, errors.Wrap(err, "runTrial")
		}
	}

	if t.progress != nil {
		t.progress.Increment()
		t.progress.Display()
	}
	return trial, nil
}

// Run runs all remaining trials of the experiment
func (t *Trials) Run() error {
	t.log.WithField("trials", t.trials).Info("experiment started")

	for t.completed < t.trials {
		if _, err := t.RunTrial(); err != nil {
			return errors.Wrap(err, "run")
		}
	}

	if t.progress != nil {
		fmt.Println()
	}
	t.log.WithField("trials", t.completed).Info("experiment finished")
	return nil
}

// Save saves all the data cached by the Trackers to disk
func (t *Trials) Save() error {
	for _, tr := range t.trackers {
		if err := tr.Save(); err != nil {
			return errors.Wrapf(err, "save: could not save %v", tr.Name())
		}
	}
	return nil
}

// track tracks the current timestep by caching its data in each Tracker
func (t *Trials) track(step timestep.TimeStep) {
	for _, tr := range t.trackers {
		tr.Track(step)
	}
}

// Ensure Trials implements the Experiment interface
var _ Experiment = &Trials{}
