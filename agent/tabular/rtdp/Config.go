package rtdp

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/mdp"
)

func init() {
	// Register Config type so that it can be typed using
	// agent.TypedConfig to help with serialization/deserialization.
	agent.Register(agent.RTDP, Config{})
}

// Config represents a configuration for the RTDP agent
type Config struct {
	Discount   float64 // in (0, 1]
	Iterations int     // number of trials
	MaxIters   int     // maximum number of steps per trial

	// Reverse defers all value updates of a trial until the trial ends,
	// and then applies them from the last visited state to the first
	Reverse bool
}

// DefaultConfig returns the default RTDP configuration
func DefaultConfig() Config {
	return Config{
		Discount:   0.9,
		Iterations: 100,
		MaxIters:   100,
		Reverse:    false,
	}
}

// CreateAgent creates the agent from the Config. The agent uses the
// GoalDistance heuristic. To use some other heuristic, use the agent's
// constructor manually.
func (c Config) CreateAgent(m mdp.Model, seed uint64) (agent.Agent, error) {
	a, err := New(m, c, seed)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ValidAgent returns whether the argument agent is a valid agent for
// construction with the Config
func (c Config) ValidAgent(a agent.Agent) bool {
	_, ok := a.(*RTDP)
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
	if c.MaxIters < 1 {
		return fmt.Errorf("validate: max iters %v must be positive",
			c.MaxIters)
	}
	return nil
}

// Type returns the type of the agent constructed by the Config
func (c Config) Type() agent.Type {
	return agent.RTDP
}
