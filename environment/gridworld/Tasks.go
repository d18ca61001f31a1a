package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/mdp"
)

// Goal represents the task of reaching the goal cell of a GridWorld,
// the reward cell holding the largest reward
type Goal struct {
	state      mdp.State
	goalReward float64
}

// NewGoal creates and returns a new goal at position (x, y) with reward
// gr, given that the gridworld has c columns and r rows
func NewGoal(x, y, c, r int, gr float64) (*Goal, error) {
	if x < 0 || x >= c {
		return &Goal{}, fmt.Errorf("newGoal: x = %d outside of [0, %d)", x, c)
	} else if y < 0 || y >= r {
		return &Goal{}, fmt.Errorf("newGoal: y = %d outside of [0, %d)", y, r)
	}

	return &Goal{mdp.State{X: x, Y: y}, gr}, nil
}

// Goal returns the goal state
func (g *Goal) Goal() mdp.State {
	return g.state
}

// GoalReward returns the reward received when exiting the goal state
func (g *Goal) GoalReward() float64 {
	return g.goalReward
}

func (g *Goal) String() string {
	return fmt.Sprintf("Goal | At: %v  |  Reward: %v", g.state, g.goalReward)
}
