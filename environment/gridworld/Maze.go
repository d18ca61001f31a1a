package gridworld

import (
	"fmt"
	"sort"

	"github.com/samuelfneumann/gomaze"
	"github.com/samuelfneumann/gortdp/mdp"
)

// DefaultMazeReward is the reward of the exit cell of generated mazes
const DefaultMazeReward float64 = 1

// MazeAlgorithms holds the maze generation algorithms that can be used
// with NewMaze, by name
var MazeAlgorithms = map[string]func(seed int64) gomaze.Initer{
	"AldousBroder": gomaze.NewAldousBroder,
	"Backtracking": gomaze.NewBacktracking,
	"BinaryTree":   gomaze.NewBinaryTree,
	"Iterative":    gomaze.NewIterative,
	"Wilson":       gomaze.NewWilson,
}

// MazeAlgorithmNames returns the sorted names of all maze generation
// algorithms
func MazeAlgorithmNames() []string {
	names := make([]string, 0, len(MazeAlgorithms))
	for name := range MazeAlgorithms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// MazeRows generates a maze of rows x cols rooms with init and expands
// it into rows of cells, top row first. Room (r, c) of the maze becomes
// cell (2r, 2c). The cells between two rooms are empty if the rooms are
// connected and obstacles otherwise, and all cells between diagonal
// rooms are obstacles. The top left room is the start and the bottom
// right room holds reward.
func MazeRows(rows, cols int, init gomaze.Initer,
	reward float64) ([][]mdp.Cell, error) {
	if rows < 1 || cols < 1 || rows*cols < 2 {
		return nil, fmt.Errorf("mazeRows: maze of %d x %d rooms must "+
			"have at least two rooms", rows, cols)
	}

	g := gomaze.NewGrid(rows, cols)
	if err := init.Init(g); err != nil {
		return nil, fmt.Errorf("mazeRows: could not generate maze: %v", err)
	}

	cells := make([][]mdp.Cell, 2*rows-1)
	for i := range cells {
		cells[i] = make([]mdp.Cell, 2*cols-1)
		for j := range cells[i] {
			if i%2 == 1 || j%2 == 1 {
				cells[i][j] = mdp.Cell{Kind: mdp.Obstacle}
			}
		}
	}

	for _, room := range g.Cells() {
		r, c := 2*room.Row(), 2*room.Col()
		if room.CanMoveEast() {
			cells[r][c+1] = mdp.Cell{Kind: mdp.Empty}
		}
		if room.CanMoveSouth() {
			cells[r+1][c] = mdp.Cell{Kind: mdp.Empty}
		}
	}

	cells[0][0] = mdp.Cell{Kind: mdp.Start}
	cells[2*rows-2][2*cols-2] = mdp.NewReward(reward)
	return cells, nil
}

// NewMaze creates a GridWorld from a maze of rows x cols rooms
// generated by the named algorithm in MazeAlgorithms. The exit of the
// maze holds DefaultMazeReward.
func NewMaze(rows, cols int, algorithm string, seed int64, noise,
	livingReward float64) (*GridWorld, error) {
	newIniter, ok := MazeAlgorithms[algorithm]
	if !ok {
		return nil, fmt.Errorf("newMaze: no such algorithm %q", algorithm)
	}

	cells, err := MazeRows(rows, cols, newIniter(seed), DefaultMazeReward)
	if err != nil {
		return nil, fmt.Errorf("newMaze: %v", err)
	}
	return New(cells, noise, livingReward)
}
