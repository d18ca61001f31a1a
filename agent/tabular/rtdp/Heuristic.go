package rtdp

import (
	"math"

	"github.com/samuelfneumann/gortdp/mdp"
)

// Heuristic computes the initial value estimate of a state which has
// not yet been assigned a value
type Heuristic func(mdp.State) float64

// GoalDistance returns a Heuristic which estimates the value of a state
// as the goal reward discounted once for each step of Manhattan
// distance between the state and the goal:
//
//	goalReward * discount^manhattan(s, goal)
//
// Terminal states and cells which hold a reward are estimated as 0.
func GoalDistance(m mdp.Model, discount float64) Heuristic {
	goal := m.Goal()
	goalReward := m.GoalReward()

	return func(s mdp.State) float64 {
		if m.IsTerminal(s) || m.Cell(s).IsReward() {
			return 0
		}
		return goalReward * math.Pow(discount, mdp.Manhattan(s, goal))
	}
}

// Zero returns a Heuristic which estimates every state as 0
func Zero() Heuristic {
	return func(mdp.State) float64 { return 0 }
}
