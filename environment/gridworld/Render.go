package gridworld

import (
	"fmt"
	"image"
	"math"

	"github.com/fogleman/gg"
	"github.com/pkg/errors"
	"github.com/samuelfneumann/gortdp/mdp"
	"gonum.org/v1/gonum/floats"
)

// DefaultCellSize is the default width and height of a rendered cell
// in pixels
const DefaultCellSize int = 80

// Render draws the values and policy of each cell of the grid. Cells
// are shaded from red (lowest value) to green (highest value), and
// obstacles are drawn in grey. The value of each cell is written at its
// centre with the action of policy written below it. If policy is nil,
// no actions are drawn.
func (g *GridWorld) Render(value func(mdp.State) float64,
	policy func(mdp.State) (mdp.Action, bool), cellSize int) image.Image {
	size := float64(cellSize)
	dc := gg.NewContext(g.width*cellSize, g.height*cellSize)
	dc.SetRGB(0, 0, 0)
	dc.Clear()

	values := make(map[mdp.State]float64)
	for _, s := range g.States() {
		if !g.IsTerminal(s) {
			values[s] = value(s)
		}
	}
	low, high := valueRange(values)

	for x := 0; x < g.width; x++ {
		for y := 0; y < g.height; y++ {
			s := mdp.State{X: x, Y: y}
			px, py := float64(x)*size, float64(g.height-y-1)*size

			dc.DrawRectangle(px, py, size, size)
			if g.grid[x][y].Kind == mdp.Obstacle {
				dc.SetRGB(0.5, 0.5, 0.5)
				dc.Fill()
				continue
			}

			shade := 0.5
			if high > low {
				shade = (values[s] - low) / (high - low)
			}
			dc.SetRGB(1-shade, shade, 0.2)
			dc.FillPreserve()
			dc.SetRGB(1, 1, 1)
			dc.SetLineWidth(2)
			if g.grid[x][y].Kind == mdp.Start {
				dc.SetLineWidth(5)
			}
			dc.Stroke()

			dc.SetRGB(0, 0, 0)
			dc.DrawStringAnchored(fmt.Sprintf("%.2f", values[s]),
				px+size/2, py+size/2, 0.5, 0.5)
			if policy != nil {
				a, _ := policy(s)
				dc.DrawStringAnchored(arrows[a], px+size/2, py+3*size/4,
					0.5, 0.5)
			}
		}
	}

	return dc.Image()
}

// RenderPNG renders the grid as Render does and saves the image in PNG
// format to filename
func (g *GridWorld) RenderPNG(filename string, value func(mdp.State) float64,
	policy func(mdp.State) (mdp.Action, bool), cellSize int) error {
	img := g.Render(value, policy, cellSize)
	if err := gg.SavePNG(filename, img); err != nil {
		return errors.Wrapf(err, "renderPNG: could not save %v", filename)
	}
	return nil
}

// valueRange returns the minimum and maximum finite values
func valueRange(values map[mdp.State]float64) (float64, float64) {
	finite := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsInf(v, 0) && !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return 0, 0
	}
	return floats.Min(finite), floats.Max(finite)
}
