package gridworld

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/samuelfneumann/gortdp/mdp"
)

// Layouts holds the named grid layouts that can be created with
// NewLayout. Layouts are written one row per line with the top row of
// the grid first. Cells are separated by whitespace: "_" or "." is an
// empty cell, "#" an obstacle, "S" the start cell, and a number a cell
// holding that reward.
var Layouts = map[string]string{
	"BookGrid": `
		_ _ _  1
		_ # _ -1
		S _ _  _`,

	"BridgeGrid": `
		#  -100 -100 -100 -100 -100 #
		1  S    _    _    _    _    10
		#  -100 -100 -100 -100 -100 #`,

	"CliffGrid": `
		_ _ _ _ _
		S _ _ _ 10
		-100 -100 -100 -100 -100`,

	"CliffGrid2": `
		_ _ _ _ _
		8 S _ _ 10
		-100 -100 -100 -100 -100`,

	"DiscountGrid": `
		_   _   _   _   _
		_   #   _   _   _
		_   #   1   #   10
		S   _   _   _   _
		-10 -10 -10 -10 -10`,

	"MazeGrid": `
		_ _ _ 1
		# # _ #
		_ # _ _
		_ # # _
		S _ _ _`,
}

// LayoutNames returns the sorted names of all registered layouts
func LayoutNames() []string {
	names := make([]string, 0, len(Layouts))
	for name := range Layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewLayout creates the GridWorld with the registered layout name
func NewLayout(name string, noise, livingReward float64) (*GridWorld, error) {
	layout, ok := Layouts[name]
	if !ok {
		return nil, fmt.Errorf("newLayout: no such layout %q", name)
	}

	rows, err := Parse(layout)
	if err != nil {
		return nil, fmt.Errorf("newLayout: could not parse layout %q: %v",
			name, err)
	}
	return New(rows, noise, livingReward)
}

// Parse parses a textual layout into rows of cells, top row first.
// Blank lines are ignored.
func Parse(layout string) ([][]mdp.Cell, error) {
	var rows [][]mdp.Cell

	for i, line := range strings.Split(layout, "\n") {
		tokens := strings.Fields(line)
		if len(tokens) == 0 {
			continue
		}

		row := make([]mdp.Cell, len(tokens))
		for j, token := range tokens {
			cell, err := parseCell(token)
			if err != nil {
				return nil, fmt.Errorf("parse: line %d, column %d: %v", i+1,
					j+1, err)
			}
			row[j] = cell
		}

		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("parse: line %d has %d cells, expected %d",
				i+1, len(row), len(rows[0]))
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("parse: empty layout")
	}
	return rows, nil
}

func parseCell(token string) (mdp.Cell, error) {
	switch token {
	case "_", ".":
		return mdp.Cell{Kind: mdp.Empty}, nil
	case "#":
		return mdp.Cell{Kind: mdp.Obstacle}, nil
	case "S":
		return mdp.Cell{Kind: mdp.Start}, nil
	}

	v, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return mdp.Cell{}, fmt.Errorf("unknown cell %q", token)
	}
	return mdp.NewReward(v), nil
}
