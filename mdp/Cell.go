package mdp

import "fmt"

// CellKind determines what kind of grid cell a Cell is
type CellKind int

const (
	Empty CellKind = iota
	Obstacle
	Start
	Reward
	Goal
)

func (k CellKind) String() string {
	switch k {
	case Obstacle:
		return "Obstacle"
	case Start:
		return "Start"
	case Reward:
		return "Reward"
	case Goal:
		return "Goal"
	default:
		return "Empty"
	}
}

// Cell classifies a single grid cell. The classification is resolved
// once when a grid is built so that no type checks are needed when
// querying a model.
//
// Reward and Goal cells hold a literal reward, which is received when
// exiting the cell. Goal cells are the Reward cells chosen as the goal
// of a grid.
type Cell struct {
	Kind  CellKind
	value float64
}

// NewReward returns a literal reward cell
func NewReward(v float64) Cell {
	return Cell{Kind: Reward, value: v}
}

// NewGoal returns a literal reward cell marked as the goal
func NewGoal(v float64) Cell {
	return Cell{Kind: Goal, value: v}
}

// IsReward returns whether the cell holds a literal numeric reward
func (c Cell) IsReward() bool {
	return c.Kind == Reward || c.Kind == Goal
}

// Value returns the literal reward of the cell and whether the cell
// holds one at all
func (c Cell) Value() (float64, bool) {
	return c.value, c.IsReward()
}

func (c Cell) String() string {
	switch c.Kind {
	case Obstacle:
		return "#"
	case Start:
		return "S"
	case Reward, Goal:
		return fmt.Sprintf("%g", c.value)
	default:
		return "_"
	}
}
