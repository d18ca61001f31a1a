package rtdp

import "github.com/samuelfneumann/gortdp/mdp"

// chain is a deterministic corridor of cells (0, 0) to (length-1, 0).
// Every action in a non-reward cell moves one cell east. The last cell
// holds the reward and exits to the terminal state.
type chain struct {
	length  int
	reward  float64
	living  float64
	actions []mdp.Action
}

func newChain(length int, reward, living float64) chain {
	return chain{
		length:  length,
		reward:  reward,
		living:  living,
		actions: []mdp.Action{mdp.East},
	}
}

func (c chain) last() mdp.State {
	return mdp.State{X: c.length - 1, Y: 0}
}

func (c chain) States() []mdp.State {
	states := []mdp.State{mdp.TerminalState}
	for x := 0; x < c.length; x++ {
		states = append(states, mdp.State{X: x, Y: 0})
	}
	return states
}

func (c chain) IsTerminal(s mdp.State) bool {
	return s == mdp.TerminalState
}

func (c chain) Actions(s mdp.State) []mdp.Action {
	switch s {
	case mdp.TerminalState:
		return nil
	case c.last():
		return []mdp.Action{mdp.Exit}
	default:
		return c.actions
	}
}

func (c chain) Transitions(s mdp.State, _ mdp.Action) []mdp.Outcome {
	switch s {
	case mdp.TerminalState:
		return nil
	case c.last():
		return []mdp.Outcome{{State: mdp.TerminalState, Prob: 1}}
	default:
		return []mdp.Outcome{{State: mdp.State{X: s.X + 1, Y: 0}, Prob: 1}}
	}
}

func (c chain) Reward(s mdp.State, _ mdp.Action, _ mdp.State) float64 {
	switch s {
	case mdp.TerminalState:
		return 0
	case c.last():
		return c.reward
	default:
		return c.living
	}
}

func (c chain) Start() mdp.State { return mdp.State{X: 0, Y: 0} }
func (c chain) Goal() mdp.State { return c.last() }
func (c chain) GoalReward() float64 { return c.reward }

func (c chain) Cell(s mdp.State) mdp.Cell {
	switch {
	case s == c.last():
		return mdp.NewGoal(c.reward)
	case s == c.Start():
		return mdp.Cell{Kind: mdp.Start}
	default:
		return mdp.Cell{Kind: mdp.Empty}
	}
}
