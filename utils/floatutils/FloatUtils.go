// Package floatutils provides utilities for working with floats
package floatutils

import "math"

// DefaultTolerance is the default tolerance used when comparing floats
const DefaultTolerance float64 = 1e-9

// ArgMax returns the index of the first maximum value in a slice of
// float64 along with that value. Values are scanned from left to
// right, so that ties are always broken in favour of the lowest index.
// NaN values are never selected unless every value is NaN. ArgMax
// returns (-1, -Inf) for an empty slice.
func ArgMax(values []float64) (int, float64) {
	index, max := -1, math.Inf(-1)

	for i, value := range values {
		if index < 0 && !math.IsNaN(value) || value > max {
			index, max = i, value
		}
	}

	if index < 0 && len(values) > 0 {
		return 0, values[0]
	}
	return index, max
}

// Equal returns whether a and b are within tol of each other
func Equal(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
