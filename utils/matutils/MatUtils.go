// Package matutils implements utility functions for working with
// mat.Matrix structs
package matutils

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Format formats a matrix for printing, one row per line, with prec
// digits after the decimal point. A negative prec prints each element
// with the fewest digits needed to represent it exactly.
func Format(X mat.Matrix, prec int) string {
	fa := mat.Formatted(X, mat.Prefix(""), mat.Squeeze())
	if prec < 0 {
		return fmt.Sprintf("%v", fa)
	}
	return fmt.Sprintf("%.*f", prec, fa)
}
