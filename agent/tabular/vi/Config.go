package vi

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/mdp"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.ValueIteration, Config{})
}

// Config represents a configuration for the ValueIteration agent
type Config struct {
	Discount   float64
	Iterations int // maximum number of sweeps over the state space

	// Tolerance stops value iteration early once no value changes by
	// more than Tolerance in a sweep. A Tolerance of 0 always performs
	// all Iterations sweeps.
	Tolerance float64
}

// DefaultConfig returns the default value iteration configuration
func DefaultConfig() Config {
	return Config{Discount: 0.9, Iterations: 100}
}

// CreateAgent creates the agent from the Config. Value iteration is
// run to completion before the agent is returned.
func (c Config) CreateAgent(m mdp.Model, _ uint64) (agent.Agent, error) {
	a, err := New(m, c)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*ValueIteration)
	return ok
}

// Validate ensures that the Config is valid
func (c Config) Validate() error {
	if c.Discount <= 0 || c.Discount > 1 {
		return fmt.Errorf("validate: discount %v outside of (0, 1]",
			c.Discount)
	}
	if c.Iterations < 1 {
		return fmt.Errorf("validate: iterations %v must be positive",
			c.Iterations)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("validate: tolerance %v must be non-negative",
			c.Tolerance)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.ValueIteration
}
