package matutils

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestFormat(t *testing.T) {
	m := mat.NewDense(2, 2, []float64{1, 2.5, -3, 4.126})

	tests := []struct {
		prec int
		want []string
	}{
		{-1, []string{"1", "2.5", "-3", "4.126"}},
		{2, []string{"1.00", "2.50", "-3.00", "4.13"}},
	}

	for _, test := range tests {
		str := Format(m, test.prec)
		for _, want := range test.want {
			if !strings.Contains(str, want) {
				t.Errorf("format %d: %q does not contain %q", test.prec, str,
					want)
			}
		}
		if lines := strings.Count(str, "\n"); lines != 1 {
			t.Errorf("format %d: got %d newlines, want 1:\n%v", test.prec,
				lines, str)
		}
	}
}
