package experiment

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/agent/tabular/rtdp"
	"github.com/samuelfneumann/gortdp/agent/tabular/vi"
	"github.com/samuelfneumann/gortdp/experiment/trackers"
	"github.com/samuelfneumann/gortdp/mdp"
	log "github.com/sirupsen/logrus"
)

func newConfig(t *testing.T, trials, checkpoint int) Config {
	t.Helper()
	agentConf := rtdp.DefaultConfig()
	agentConf.Iterations = trials

	c := DefaultConfig()
	c.AgentConf = agent.NewTypedConfig(agentConf)
	c.Checkpoint = checkpoint
	c.SaveDir = t.TempDir()
	return c
}

func TestRun(t *testing.T) {
	c := newConfig(t, 20, 5)
	e, g, err := c.CreateExp()
	if err != nil {
		t.Fatalf("createExp: %v", err)
	}

	var logs bytes.Buffer
	logger := log.New()
	logger.SetOutput(&logs)
	logger.SetLevel(log.DebugLevel)
	e.SetLogger(logger)

	e.ShowProgress(20)

	if err := e.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	if n := e.Completed(); n != 20 {
		t.Errorf("completed: got %d trials, want 20", n)
	}

	for _, tr := range e.Trackers() {
		if n := len(tr.Data()); n != 20 {
			t.Errorf("%v: tracked %d trials, want 20", tr.Name(), n)
		}
	}

	if err := e.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	lengths, err := trackers.LoadData(filepath.Join(c.SaveDir, "length.bin"))
	if err != nil {
		t.Fatalf("loadData: %v", err)
	}
	for i, l := range lengths {
		if l < 1 || l > 100 {
			t.Errorf("length: trial %d has length %v", i, l)
		}
	}

	for i := 1; i <= 4; i++ {
		name := filepath.Join(c.SaveDir, fmt.Sprintf("values%d.bin", i))
		values, err := rtdp.LoadValueTable(name)
		if err != nil {
			t.Errorf("checkpoint %d: %v", i, err)
			continue
		}
		if _, ok := values.Lookup(g.Start()); !ok {
			t.Errorf("checkpoint %d: no value for start state", i)
		}
	}

	out := logs.String()
	for _, want := range []string{"experiment started", "trial finished",
		"experiment finished", e.ID().String()} {
		if !strings.Contains(out, want) {
			t.Errorf("log: output does not contain %q", want)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	filename := filepath.Join(dir, "exp.json")
	data := `{
		"Seed": 3,
		"EnvConf": {"Layout": "BridgeGrid", "Noise": 0.2},
		"AgentConf": {
			"Type": "RTDP",
			"Config": {"Discount": 0.9, "Iterations": 5, "MaxIters": 50,
				"Reverse": true}
		}
	}`
	if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if c.Seed != 3 || c.EnvConf.Layout != "BridgeGrid" {
		t.Errorf("loadConfig: got %+v", c)
	}
	want := rtdp.Config{Discount: 0.9, Iterations: 5, MaxIters: 50,
		Reverse: true}
	if got, ok := c.AgentConf.Config.(rtdp.Config); !ok || got != want {
		t.Errorf("loadConfig: agent config %+v, want %+v",
			c.AgentConf.Config, want)
	}
	// Saved configs load back unchanged
	saved := filepath.Join(dir, "saved.json")
	if err := c.Save(saved); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := LoadConfig(saved)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if loaded.EnvConf != c.EnvConf || loaded.AgentConf.Config != c.AgentConf.Config {
		t.Errorf("loadConfig: got %+v, want %+v", loaded, c)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "exp.json")
	if err := os.WriteFile(filename, []byte(`{"Seed": 9}`), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadConfig(filename)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	def := DefaultConfig()
	if c.EnvConf != def.EnvConf || c.AgentConf.Type != agent.RTDP {
		t.Errorf("loadConfig: defaults not applied: %+v", c)
	}
}

func TestConfigErrors(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"bad json":   `{"Seed": `,
		"bad agent":  `{"AgentConf": {"Type": "Sarsa"}}`,
		"bad values": `{"AgentConf": {"Type": "RTDP", "Config": {"Discount": 2}}}`,
		"bad env":    `{"EnvConf": {"Layout": "BookGrid", "Grid": "S 1"}}`,
		"checkpoint": `{"Checkpoint": -1}`,
	}

	for name, data := range tests {
		filename := filepath.Join(dir, strings.ReplaceAll(name, " ", "_"))
		if err := os.WriteFile(filename, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := LoadConfig(filename); err == nil {
			t.Errorf("%v: expected error", name)
		}
	}

	if _, err := LoadConfig(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("loadConfig: expected error for missing file")
	}
}

func TestCreateExpNonTrialer(t *testing.T) {
	c := DefaultConfig()
	c.AgentConf = agent.NewTypedConfig(vi.DefaultConfig())
	if _, _, err := c.CreateExp(); err == nil {
		t.Error("createExp: expected error for value iteration agent")
	}
}

func TestCreateAgentValueIteration(t *testing.T) {
	c := DefaultConfig()
	c.AgentConf = agent.NewTypedConfig(vi.DefaultConfig())

	a, g, err := c.CreateAgent()
	if err != nil {
		t.Fatalf("createAgent: %v", err)
	}
	if _, ok := a.(*vi.ValueIteration); !ok {
		t.Fatalf("createAgent: got %T, want *vi.ValueIteration", a)
	}
	if action, _ := a.Policy(g.Start()); action != mdp.North {
		t.Errorf("policy: got %v at start, want %v", action, mdp.North)
	}

	c.AgentConf = agent.NewTypedConfig(vi.Config{})
	if a, _, err := c.CreateAgent(); err == nil || a != nil {
		t.Errorf("createAgent: got (%v, %v) for an invalid config, want a "+
			"nil agent and an error", a, err)
	}
}

func TestTrialsFromStart(t *testing.T) {
	c := newConfig(t, 3, 0)
	e, g, err := c.CreateExp()
	if err != nil {
		t.Fatalf("createExp: %v", err)
	}

	trial, err := e.RunTrial()
	if err != nil {
		t.Fatalf("runTrial: %v", err)
	}
	if s := trial.Steps[0].State; s != g.Start() {
		t.Errorf("runTrial: trial started in %v, want %v", s, g.Start())
	}
	if s := trial.Steps[len(trial.Steps)-1].State; s != mdp.TerminalState &&
		trial.Len() != 100 {
		t.Errorf("runTrial: trial ended early in %v", s)
	}
}
