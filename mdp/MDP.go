// Package mdp outlines the interfaces and structs needed to describe a
// fully known Markov Decision Process
package mdp

import "fmt"

// State is a single state of a grid MDP, identified by its (x, y)
// coordinates. Column x grows to the right and row y grows upwards, so
// that (0, 0) is the bottom-left cell of a grid.
type State struct {
	X, Y int
}

// TerminalState is the single absorbing state that every exit action
// leads to. It has no legal actions.
var TerminalState = State{-1, -1}

func (s State) String() string {
	if s == TerminalState {
		return "TERMINAL"
	}
	return fmt.Sprintf("(%d, %d)", s.X, s.Y)
}

// Action is a discrete action that can be taken in some State
type Action string

// Actions available in grid MDPs
const (
	North Action = "north"
	West  Action = "west"
	South Action = "south"
	East  Action = "east"
	Exit  Action = "exit"

	// NoAction is returned by policies for states with no legal actions
	NoAction Action = ""
)

// Outcome is a single entry of a transition distribution: the
// probability of ending up in State.
type Outcome struct {
	State State
	Prob  float64
}

// Model implements a Markov Decision Process whose dynamics are known
// a priori. Models are read-only: none of their methods may change the
// values returned by any other method.
type Model interface {
	// States returns every state of the MDP, TerminalState first
	States() []State

	// IsTerminal returns whether the state has no legal actions
	IsTerminal(State) bool

	// Actions returns the ordered legal actions in a state. The slice
	// is empty if and only if the state is terminal.
	Actions(State) []Action

	// Transitions returns the ordered distribution over next states
	// when taking an action in a state. Probabilities sum to 1.
	Transitions(State, Action) []Outcome

	// Reward returns the reward for the transition (s, a, next)
	Reward(s State, a Action, next State) float64

	// Start returns the fixed starting state of every trial
	Start() State

	// Goal returns the state holding the largest reward
	Goal() State

	// GoalReward returns the reward of the goal state
	GoalReward() float64

	// Cell returns the classification of the cell underlying a state
	Cell(State) Cell
}
