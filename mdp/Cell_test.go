package mdp

import "testing"

func TestCellValue(t *testing.T) {
	tests := []struct {
		cell     Cell
		value    float64
		isReward bool
		str      string
	}{
		{Cell{Kind: Empty}, 0, false, "_"},
		{Cell{Kind: Obstacle}, 0, false, "#"},
		{Cell{Kind: Start}, 0, false, "S"},
		{NewReward(-100), -100, true, "-100"},
		{NewGoal(10), 10, true, "10"},
		{NewReward(0.5), 0.5, true, "0.5"},
	}

	for _, test := range tests {
		v, ok := test.cell.Value()
		if ok != test.isReward {
			t.Errorf("value: cell %v reward = %v, want %v", test.cell.Kind,
				ok, test.isReward)
		}
		if ok && v != test.value {
			t.Errorf("value: cell %v = %v, want %v", test.cell.Kind, v,
				test.value)
		}
		if s := test.cell.String(); s != test.str {
			t.Errorf("string: got %q, want %q", s, test.str)
		}
	}
}

func TestStateString(t *testing.T) {
	if s := TerminalState.String(); s != "TERMINAL" {
		t.Errorf("string: got %q, want %q", s, "TERMINAL")
	}
	if s := (State{2, 3}).String(); s != "(2, 3)" {
		t.Errorf("string: got %q, want %q", s, "(2, 3)")
	}
}

func TestManhattan(t *testing.T) {
	tests := []struct {
		a, b State
		want float64
	}{
		{State{0, 0}, State{0, 0}, 0},
		{State{0, 0}, State{3, 4}, 7},
		{State{5, 1}, State{2, 3}, 5},
	}

	for _, test := range tests {
		if d := Manhattan(test.a, test.b); d != test.want {
			t.Errorf("manhattan: %v to %v = %v, want %v", test.a, test.b, d,
				test.want)
		}
	}
}
