package envconfig

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/samuelfneumann/gortdp/mdp"
)

func TestCreateLayout(t *testing.T) {
	g, err := DefaultConfig().Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if c, r := g.Dims(); c != 4 || r != 3 {
		t.Errorf("dims: got (%d, %d), want (4, 3)", c, r)
	}
	if g.Noise() != 0.2 {
		t.Errorf("noise: got %v, want 0.2", g.Noise())
	}
}

func TestCreateGrid(t *testing.T) {
	data := []byte(`{"Grid": "S _ 5\n_ # -2", "Noise": 0, "LivingReward": -0.1}`)

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	g, err := c.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if s := g.Start(); s != (mdp.State{X: 0, Y: 1}) {
		t.Errorf("start: got %v, want (0, 1)", s)
	}
	if s := g.Goal(); s != (mdp.State{X: 2, Y: 1}) {
		t.Errorf("goal: got %v, want (2, 1)", s)
	}
	if r := g.LivingReward(); r != -0.1 {
		t.Errorf("living reward: got %v, want -0.1", r)
	}
	if c.Name() != "custom" {
		t.Errorf("name: got %q, want %q", c.Name(), "custom")
	}
}

func TestCreateErrors(t *testing.T) {
	invalid := []Config{
		{},
		{Layout: "BookGrid", Grid: "S 1"},
		{Layout: "BookGrid", Noise: 2},
		{Layout: "NoSuchGrid"},
		{Grid: "_ _ 1"},
		{Layout: "BookGrid", Maze: &Maze{Rows: 2, Cols: 2,
			Algorithm: "Wilson"}},
		{Maze: &Maze{Rows: 2, Cols: 2, Algorithm: "NoSuchAlgorithm"}},
		{Maze: &Maze{Rows: 1, Cols: 1, Algorithm: "Wilson"}},
	}

	for _, c := range invalid {
		if _, err := c.Create(); err == nil {
			t.Errorf("create: expected error for %+v", c)
		}
	}
}

func TestCreateMaze(t *testing.T) {
	data := []byte(`{"Maze": {"Rows": 3, "Cols": 2, "Algorithm": ` +
		`"Backtracking", "Seed": 4}, "Noise": 0.1}`)

	var c Config
	if err := json.Unmarshal(data, &c); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	g, err := c.Create()
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if cols, rows := g.Dims(); cols != 3 || rows != 5 {
		t.Errorf("dims: got (%d, %d), want (3, 5)", cols, rows)
	}
	if g.Noise() != 0.1 {
		t.Errorf("noise: got %v, want 0.1", g.Noise())
	}
	if want := "BacktrackingMaze3x2"; c.Name() != want {
		t.Errorf("name: got %q, want %q", c.Name(), want)
	}

	out, err := json.Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(out), "Maze") {
		t.Errorf("marshal: %s should omit an unset maze", out)
	}
}
