// Package experiment implements functionality for running an experiment
package experiment

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/agent/tabular/rtdp"
	"github.com/samuelfneumann/gortdp/environment/envconfig"
	"github.com/samuelfneumann/gortdp/environment/gridworld"
	"github.com/samuelfneumann/gortdp/experiment/checkpointer"
	"github.com/samuelfneumann/gortdp/experiment/trackers"
	"github.com/samuelfneumann/gortdp/timestep"
)

// Experiment outlines structs that can run experiments. Experiments
// send every TimeStep of every trial to their Trackers, which cache
// the data they track in RAM to be later saved to disk with Save. The
// Run method runs all trials of the experiment, while RunTrial runs a
// single trial.
type Experiment interface {
	Run() error
	RunTrial() (timestep.Trial, error)

	// Save all tracked data to disk
	Save() error

	// Register adds a new Tracker to the (possibly already running)
	// experiment
	Register(t trackers.Tracker)
}

// Config represents a configuration of an experiment.
type Config struct {
	Seed      uint64
	EnvConf   envconfig.Config
	AgentConf agent.TypedConfig

	// Checkpoint saves the agent's values every Checkpoint trials. A
	// Checkpoint of 0 disables checkpointing.
	Checkpoint int

	// SaveDir is the directory that tracked data and checkpoints are
	// saved in. An empty SaveDir uses the working directory.
	SaveDir string
}

// DefaultConfig returns a Config of forward RTDP on the BookGrid layout
func DefaultConfig() Config {
	return Config{
		Seed:      1,
		EnvConf:   envconfig.DefaultConfig(),
		AgentConf: agent.NewTypedConfig(rtdp.DefaultConfig()),
	}
}

// LoadConfig loads a JSON serialized experiment Config from filename.
// Missing agent and environment sections are set to their defaults.
func LoadConfig(filename string) (Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, errors.Wrap(err, "loadConfig: could not read config")
	}

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		return Config{}, errors.Wrapf(err, "loadConfig: could not decode %v",
			filename)
	}

	// Fill in missing sections with their defaults
	def := DefaultConfig()
	if c.AgentConf.Config == nil {
		c.AgentConf = def.AgentConf
	}
	if c.EnvConf == (envconfig.Config{}) {
		c.EnvConf = def.EnvConf
	}

	if err := c.Validate(); err != nil {
		return Config{}, errors.Wrap(err, "loadConfig")
	}
	return c, nil
}

// Save saves the Config to filename in JSON format
func (c Config) Save(filename string) error {
	data, err := json.MarshalIndent(c, "", "\t")
	if err != nil {
		return errors.Wrap(err, "save: could not encode config")
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return errors.Wrapf(err, "save: could not write %v", filename)
	}
	return nil
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.AgentConf.Config == nil {
		return fmt.Errorf("validate: no agent config")
	}
	if err := c.AgentConf.Validate(); err != nil {
		return errors.Wrapf(err, "validate: invalid %v config",
			c.AgentConf.Type)
	}
	if err := c.EnvConf.Validate(); err != nil {
		return errors.Wrap(err, "validate: invalid environment config")
	}
	if c.Checkpoint < 0 {
		return fmt.Errorf("validate: checkpoint interval %v must be "+
			"non-negative", c.Checkpoint)
	}
	return nil
}

// path returns the path of a file saved by the experiment
func (c Config) path(name string) string {
	return filepath.Join(c.SaveDir, name)
}

// CreateAgent creates the grid world and agent described by the Config
func (c Config) CreateAgent() (agent.Agent, *gridworld.GridWorld, error) {
	if err := c.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "createAgent")
	}

	g, err := c.EnvConf.Create()
	if err != nil {
		return nil, nil, errors.Wrap(err, "createAgent")
	}

	a, err := c.AgentConf.CreateAgent(g, c.Seed)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createAgent: could not create "+
			"agent")
	}
	return a, g, nil
}

// CreateExp creates the grid world and agent described by the Config
// and returns an experiment running the agent's trials. The agent must
// plan by simulating trials.
func (c Config) CreateExp() (*Trials, *gridworld.GridWorld, error) {
	a, g, err := c.CreateAgent()
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp")
	}

	trialer, ok := a.(agent.Trialer)
	if !ok {
		return nil, nil, fmt.Errorf("createExp: %v agent does not simulate "+
			"trials", c.AgentConf.Type)
	}

	e, err := c.NewExp(trialer, g)
	if err != nil {
		return nil, nil, errors.Wrap(err, "createExp")
	}
	return e, g, nil
}

// NewExp returns an experiment running the configured number of trials
// of a on g. The experiment tracks the length, return, and start state
// value of each trial, and checkpoints the agent's values if configured
// to.
func (c Config) NewExp(a agent.Trialer, g *gridworld.GridWorld) (*Trials,
	error) {
	start := g.Start()
	t := []trackers.Tracker{
		trackers.NewTrialLength(c.path("length.bin")),
		trackers.NewReturn(c.path("return.bin")),
		trackers.NewFunc("StartValue", func() float64 {
			return a.Value(start)
		}, c.path("startvalue.bin")),
	}

	var check []checkpointer.Checkpointer
	if c.Checkpoint > 0 {
		values, ok := a.(interface{ Values() *rtdp.ValueTable })
		if !ok {
			return nil, fmt.Errorf("newExp: cannot checkpoint %v agent",
				c.AgentConf.Type)
		}

		filename := checkpointer.FilenameEnumerator(0, c.path("values"), ".bin")
		n, err := checkpointer.NewNStep(c.Checkpoint, values.Values(), filename)
		if err != nil {
			return nil, errors.Wrap(err, "newExp")
		}
		check = append(check, n)
	}

	return NewTrials(a, a.Iterations(), t, check), nil
}
