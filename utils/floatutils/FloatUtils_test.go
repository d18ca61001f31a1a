package floatutils

import (
	"math"
	"testing"
)

func TestArgMax(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		values []float64
		index  int
		max    float64
	}{
		{[]float64{1, 3, 2}, 1, 3},
		{[]float64{3, 3, 3}, 0, 3},
		{[]float64{1, 2, 2, 0}, 1, 2},
		{[]float64{-1, -1}, 0, -1},
		{[]float64{nan, 1, 1}, 1, 1},
		{[]float64{math.Inf(-1), math.Inf(-1)}, 0, math.Inf(-1)},
		{[]float64{1, inf, inf}, 1, inf},
	}

	for _, test := range tests {
		index, max := ArgMax(test.values)
		if index != test.index || max != test.max {
			t.Errorf("argMax(%v) = (%v, %v), want (%v, %v)", test.values,
				index, max, test.index, test.max)
		}
	}

	if index, _ := ArgMax(nil); index != -1 {
		t.Errorf("argMax(nil): index = %v, want -1", index)
	}
	if index, max := ArgMax([]float64{nan}); index != 0 || !math.IsNaN(max) {
		t.Errorf("argMax([NaN]) = (%v, %v), want (0, NaN)", index, max)
	}
}

func TestEqual(t *testing.T) {
	if !Equal(1, 1+1e-12, DefaultTolerance) {
		t.Error("equal: values within tolerance reported unequal")
	}
	if Equal(1, 1.1, DefaultTolerance) {
		t.Error("equal: values outside tolerance reported equal")
	}
}
