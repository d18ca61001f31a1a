// Package envconfig provides configuration structs for configuring
// grid world MDPs. Environment configurations in this package are JSON
// serializable.
package envconfig

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/samuelfneumann/gortdp/environment/gridworld"
)

// Config implements a specific configuration of a grid world. The grid
// is one of the named layouts in gridworld.Layouts, an inline Grid in
// the textual layout format accepted by gridworld.Parse, or a generated
// Maze.
type Config struct {
	Layout       string
	Grid         string
	Maze         *Maze `json:",omitempty"`
	Noise        float64
	LivingReward float64
}

// Maze configures a maze of Rows x Cols rooms generated by one of the
// algorithms in gridworld.MazeAlgorithms
type Maze struct {
	Rows, Cols int
	Algorithm  string
	Seed       int64
}

// NewConfig returns a new environment Config for a named layout
func NewConfig(layout string, noise, livingReward float64) Config {
	return Config{
		Layout:       layout,
		Noise:        noise,
		LivingReward: livingReward,
	}
}

// DefaultConfig returns the Config of the BookGrid layout with default
// noise and no living reward
func DefaultConfig() Config {
	return NewConfig("BookGrid", gridworld.DefaultNoise, 0)
}

// Validate ensures that the Config describes exactly one grid
func (c Config) Validate() error {
	var set int
	for _, ok := range []bool{c.Layout != "", c.Grid != "", c.Maze != nil} {
		if ok {
			set++
		}
	}
	if set == 0 {
		return fmt.Errorf("validate: one of layout, grid, or maze must be " +
			"set")
	}
	if set > 1 {
		return fmt.Errorf("validate: only one of layout, grid, or maze may " +
			"be set")
	}
	if c.Noise < 0 || c.Noise > 1 {
		return fmt.Errorf("validate: noise %v outside of [0, 1]", c.Noise)
	}
	return nil
}

// Name returns the name of the configured grid
func (c Config) Name() string {
	if c.Layout != "" {
		return c.Layout
	}
	if c.Maze != nil {
		return fmt.Sprintf("%vMaze%dx%d", c.Maze.Algorithm, c.Maze.Rows,
			c.Maze.Cols)
	}
	return "custom"
}

// Create returns the grid world described by the Config
func (c Config) Create() (*gridworld.GridWorld, error) {
	if err := c.Validate(); err != nil {
		return nil, errors.Wrap(err, "create")
	}

	if c.Layout != "" {
		g, err := gridworld.NewLayout(c.Layout, c.Noise, c.LivingReward)
		if err != nil {
			return nil, errors.Wrap(err, "create")
		}
		return g, nil
	}

	if c.Maze != nil {
		g, err := gridworld.NewMaze(c.Maze.Rows, c.Maze.Cols,
			c.Maze.Algorithm, c.Maze.Seed, c.Noise, c.LivingReward)
		if err != nil {
			return nil, errors.Wrap(err, "create")
		}
		return g, nil
	}

	rows, err := gridworld.Parse(c.Grid)
	if err != nil {
		return nil, errors.Wrap(err, "create: could not parse grid")
	}
	g, err := gridworld.New(rows, c.Noise, c.LivingReward)
	if err != nil {
		return nil, errors.Wrap(err, "create")
	}
	return g, nil
}
