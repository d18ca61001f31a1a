package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/environment"
	"github.com/samuelfneumann/gortdp/mdp"
)

// SingleStart starts every trial in the same cell
type SingleStart struct {
	state mdp.State
}

// NewSingleStart returns a Starter which always starts in cell (x, y)
// of a grid with c columns and r rows
func NewSingleStart(x, y, c, r int) (environment.Starter, error) {
	if x < 0 || x >= c {
		return &SingleStart{}, fmt.Errorf("newSingleStart: x = %d outside "+
			"of [0, %d)", x, c)
	} else if y < 0 || y >= r {
		return &SingleStart{}, fmt.Errorf("newSingleStart: y = %d outside "+
			"of [0, %d)", y, r)
	}

	return &SingleStart{mdp.State{X: x, Y: y}}, nil
}

// Start returns the starting state
func (s *SingleStart) Start() mdp.State {
	return s.state
}
