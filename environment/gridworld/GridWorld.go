// Package gridworld implements 2D gridworld MDPs with known dynamics
package gridworld

import (
	"fmt"

	"github.com/samuelfneumann/gortdp/environment"
	"github.com/samuelfneumann/gortdp/mdp"
	"github.com/samuelfneumann/gortdp/utils/matutils"
	"gonum.org/v1/gonum/mat"
)

// DefaultNoise is the default probability of slipping to one of the
// two directions perpendicular to the intended direction of movement
const DefaultNoise float64 = 0.2

var moveActions = []mdp.Action{mdp.North, mdp.West, mdp.South, mdp.East}

// GridWorld represents a gridworld MDP
//
// The grid is indexed by (x, y) coordinates where x is the column and y
// is the row counted from the bottom of the grid. Empty and start cells
// have the actions north, west, south, and east. Each move succeeds
// with probability 1 - noise, and slips to either perpendicular
// direction with probability noise / 2. Moves off the grid or into an
// obstacle leave the agent in place. Reward cells have the single
// action exit, which leads to the terminal state and receives the
// reward of the cell. All other transitions receive the living reward.
type GridWorld struct {
	environment.Starter
	task          *Goal
	grid          [][]mdp.Cell // grid[x][y]
	width, height int
	noise         float64
	livingReward  float64
}

// New creates a new GridWorld from rows of cells. The first row of
// cells is the top row of the grid. The grid must be rectangular and
// contain exactly one start cell and at least one reward cell. The
// reward cell with the largest reward becomes the goal; ties are broken
// in favour of the cell appearing first when reading rows from top to
// bottom and left to right.
func New(rows [][]mdp.Cell, noise, livingReward float64) (*GridWorld, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("new: grid must have at least one cell")
	}
	if noise < 0 || noise > 1 {
		return nil, fmt.Errorf("new: noise %v outside of [0, 1]", noise)
	}

	height, width := len(rows), len(rows[0])
	grid := make([][]mdp.Cell, width)
	for x := range grid {
		grid[x] = make([]mdp.Cell, height)
	}

	var start environment.Starter
	var foundGoal bool
	var goalX, goalY int
	var goalReward float64

	for ybar, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("new: row %d has %d cells, expected %d",
				ybar, len(row), width)
		}

		y := height - ybar - 1
		for x, cell := range row {
			switch cell.Kind {
			case mdp.Start:
				if start != nil {
					return nil, fmt.Errorf("new: multiple start cells")
				}
				start, _ = NewSingleStart(x, y, width, height)

			case mdp.Goal:
				v, _ := cell.Value()
				cell = mdp.NewReward(v)
			}

			if v, ok := cell.Value(); ok && (!foundGoal || v > goalReward) {
				foundGoal, goalX, goalY, goalReward = true, x, y, v
			}
			grid[x][y] = cell
		}
	}

	if start == nil {
		return nil, fmt.Errorf("new: no start cell")
	}
	if !foundGoal {
		return nil, fmt.Errorf("new: no reward cell")
	}

	grid[goalX][goalY] = mdp.NewGoal(goalReward)
	task, _ := NewGoal(goalX, goalY, width, height, goalReward)

	return &GridWorld{
		Starter:      start,
		task:         task,
		grid:         grid,
		width:        width,
		height:       height,
		noise:        noise,
		livingReward: livingReward,
	}, nil
}

// Goal returns the goal state
func (g *GridWorld) Goal() mdp.State {
	return g.task.Goal()
}

// GoalReward returns the reward received when exiting the goal state
func (g *GridWorld) GoalReward() float64 {
	return g.task.GoalReward()
}

// Dims gets the columns and rows of the GridWorld
func (g *GridWorld) Dims() (c, r int) {
	return g.width, g.height
}

// Noise returns the probability of slipping perpendicular to a move
func (g *GridWorld) Noise() float64 {
	return g.noise
}

// SetNoise sets the probability of slipping perpendicular to a move
func (g *GridWorld) SetNoise(noise float64) error {
	if noise < 0 || noise > 1 {
		return fmt.Errorf("setNoise: noise %v outside of [0, 1]", noise)
	}
	g.noise = noise
	return nil
}

// LivingReward returns the reward for every non-exit transition
func (g *GridWorld) LivingReward() float64 {
	return g.livingReward
}

// SetLivingReward sets the reward for every non-exit transition
func (g *GridWorld) SetLivingReward(r float64) {
	g.livingReward = r
}

// Cell returns the cell underlying state s. The terminal state has an
// empty cell, and states outside of the grid are obstacles.
func (g *GridWorld) Cell(s mdp.State) mdp.Cell {
	if s == mdp.TerminalState {
		return mdp.Cell{Kind: mdp.Empty}
	}
	if !g.inBounds(s.X, s.Y) {
		return mdp.Cell{Kind: mdp.Obstacle}
	}
	return g.grid[s.X][s.Y]
}

// States returns the terminal state followed by every non-obstacle
// cell, ordered by column and then by row
func (g *GridWorld) States() []mdp.State {
	states := []mdp.State{mdp.TerminalState}
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.grid[x][y].Kind != mdp.Obstacle {
				states = append(states, mdp.State{X: x, Y: y})
			}
		}
	}
	return states
}

// IsTerminal returns whether s is the terminal state
func (g *GridWorld) IsTerminal(s mdp.State) bool {
	return s == mdp.TerminalState
}

// Actions returns the legal actions in state s
func (g *GridWorld) Actions(s mdp.State) []mdp.Action {
	if g.IsTerminal(s) {
		return nil
	}
	if g.Cell(s).IsReward() {
		return []mdp.Action{mdp.Exit}
	}

	actions := make([]mdp.Action, len(moveActions))
	copy(actions, moveActions)
	return actions
}

// Transitions returns the distribution of next states when taking
// action a in state s. Transitions panics if a is not legal in s.
func (g *GridWorld) Transitions(s mdp.State, a mdp.Action) []mdp.Outcome {
	if !g.legal(s, a) {
		panic(fmt.Sprintf("transitions: illegal action %q in state %v", a, s))
	}
	if g.IsTerminal(s) {
		return nil
	}
	if g.Cell(s).IsReward() {
		return []mdp.Outcome{{State: mdp.TerminalState, Prob: 1.0}}
	}

	north := g.move(s, 0, 1)
	west := g.move(s, -1, 0)
	south := g.move(s, 0, -1)
	east := g.move(s, 1, 0)

	slip := g.noise / 2.0
	var successors []mdp.Outcome
	switch a {
	case mdp.North, mdp.South:
		primary := north
		if a == mdp.South {
			primary = south
		}
		successors = []mdp.Outcome{
			{State: primary, Prob: 1.0 - g.noise},
			{State: west, Prob: slip},
			{State: east, Prob: slip},
		}

	case mdp.West, mdp.East:
		primary := west
		if a == mdp.East {
			primary = east
		}
		successors = []mdp.Outcome{
			{State: primary, Prob: 1.0 - g.noise},
			{State: north, Prob: slip},
			{State: south, Prob: slip},
		}
	}

	return aggregate(successors)
}

// Reward returns the reward for the transition (s, a, next). Leaving a
// reward cell receives the reward of the cell, leaving the terminal
// state receives nothing, and all other transitions receive the living
// reward.
func (g *GridWorld) Reward(s mdp.State, _ mdp.Action, _ mdp.State) float64 {
	if g.IsTerminal(s) {
		return 0.0
	}
	if v, ok := g.Cell(s).Value(); ok {
		return v
	}
	return g.livingReward
}

// ValueMatrix returns a matrix of the values of each cell of the grid,
// laid out as the grid is drawn: row 0 is the top row of the grid.
// Obstacles have a value of 0.
func (g *GridWorld) ValueMatrix(value func(mdp.State) float64) *mat.Dense {
	m := mat.NewDense(g.height, g.width, nil)
	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			if g.grid[x][y].Kind == mdp.Obstacle {
				continue
			}
			m.Set(g.height-y-1, x, value(mdp.State{X: x, Y: y}))
		}
	}
	return m
}

func (g *GridWorld) String() string {
	str := "GridWorld | Start: %v  |  %v  |  Bounds: (%d, %d)  |  " +
		"Noise: %v  |  Living Reward: %v"

	return fmt.Sprintf(str, g.Start(), g.task, g.width, g.height, g.noise,
		g.livingReward)
}

// FormatValues formats the value of each cell as a matrix laid out as
// the grid is drawn, with prec digits after the decimal point
func (g *GridWorld) FormatValues(value func(mdp.State) float64,
	prec int) string {
	return matutils.Format(g.ValueMatrix(value), prec)
}

// move returns the state reached by moving (dx, dy) from s, or s
// itself if the move is blocked
func (g *GridWorld) move(s mdp.State, dx, dy int) mdp.State {
	x, y := s.X+dx, s.Y+dy
	if !g.inBounds(x, y) || g.grid[x][y].Kind == mdp.Obstacle {
		return s
	}
	return mdp.State{X: x, Y: y}
}

func (g *GridWorld) inBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *GridWorld) legal(s mdp.State, a mdp.Action) bool {
	for _, action := range g.Actions(s) {
		if action == a {
			return true
		}
	}
	return g.IsTerminal(s)
}

// aggregate merges outcomes leading to the same state, keeping the
// position of the first occurrence of each state
func aggregate(outcomes []mdp.Outcome) []mdp.Outcome {
	merged := make([]mdp.Outcome, 0, len(outcomes))
	index := make(map[mdp.State]int, len(outcomes))

	for _, o := range outcomes {
		if i, ok := index[o.State]; ok {
			merged[i].Prob += o.Prob
			continue
		}
		index[o.State] = len(merged)
		merged = append(merged, o)
	}
	return merged
}
