package mdp

import "gonum.org/v1/gonum/floats"

// Manhattan returns the Manhattan distance between the cells of two
// states
func Manhattan(a, b State) float64 {
	return floats.Distance(
		[]float64{float64(a.X), float64(a.Y)},
		[]float64{float64(b.X), float64(b.Y)},
		1,
	)
}
