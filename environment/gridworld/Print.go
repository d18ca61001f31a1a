package gridworld

import (
	"fmt"
	"io"

	"github.com/logrusorgru/aurora"
	"github.com/samuelfneumann/gortdp/mdp"
)

var arrows = map[mdp.Action]string{
	mdp.North:    "^",
	mdp.West:     "<",
	mdp.South:    "v",
	mdp.East:     ">",
	mdp.Exit:     "x",
	mdp.NoAction: ".",
}

// PrintValues prints the value of each cell of the grid to w, top row
// first. Obstacles are printed as "#". If colors is true, the start cell
// is printed in yellow, positive reward cells in green, negative reward
// cells in red, and all other cells in blue.
func (g *GridWorld) PrintValues(w io.Writer, value func(mdp.State) float64,
	colors bool) {
	au := aurora.NewAurora(colors)

	g.print(w, au, func(s mdp.State) string {
		return fmt.Sprintf("%7.2f ", value(s))
	})
}

// PrintPolicy prints the action of policy in each cell of the grid to
// w, top row first, using the same colors as PrintValues.
func (g *GridWorld) PrintPolicy(w io.Writer,
	policy func(mdp.State) (mdp.Action, bool), colors bool) {
	au := aurora.NewAurora(colors)

	g.print(w, au, func(s mdp.State) string {
		a, _ := policy(s)
		return fmt.Sprintf("%4s    ", arrows[a])
	})
}

func (g *GridWorld) print(w io.Writer, au aurora.Aurora,
	format func(mdp.State) string) {
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			s := mdp.State{X: x, Y: y}
			cell := g.grid[x][y]

			if cell.Kind == mdp.Obstacle {
				fmt.Fprint(w, au.White(fmt.Sprintf("%7s ", "#")))
			} else {
				str := format(s)
				v, _ := cell.Value()
				switch {
				case cell.Kind == mdp.Start:
					fmt.Fprint(w, au.Yellow(str))
				case cell.IsReward() && v >= 0:
					fmt.Fprint(w, au.Green(str))
				case cell.IsReward():
					fmt.Fprint(w, au.Red(str))
				default:
					fmt.Fprint(w, au.Blue(str))
				}
			}
			fmt.Fprint(w, au.White("|"))
		}
		fmt.Fprintln(w)
	}
}
