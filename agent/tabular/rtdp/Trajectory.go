package rtdp

import "github.com/samuelfneumann/gortdp/mdp"

type pair struct {
	state  mdp.State
	action mdp.Action
}

// Trajectory is a last-in-first-out stack of the state-action pairs
// visited during a trial
type Trajectory struct {
	pairs []pair
}

// Push adds a state-action pair to the top of the stack
func (t *Trajectory) Push(s mdp.State, a mdp.Action) {
	t.pairs = append(t.pairs, pair{s, a})
}

// Pop removes and returns the most recently pushed state-action pair.
// Pop panics if the Trajectory is empty.
func (t *Trajectory) Pop() (mdp.State, mdp.Action) {
	if len(t.pairs) == 0 {
		panic("pop: empty trajectory")
	}

	last := t.pairs[len(t.pairs)-1]
	t.pairs = t.pairs[:len(t.pairs)-1]
	return last.state, last.action
}

// Len returns the number of pairs on the stack
func (t *Trajectory) Len() int {
	return len(t.pairs)
}

// Empty returns whether the stack is empty
func (t *Trajectory) Empty() bool {
	return len(t.pairs) == 0
}

// Reset empties the stack
func (t *Trajectory) Reset() {
	t.pairs = t.pairs[:0]
}
