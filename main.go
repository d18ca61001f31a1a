package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/samuelfneumann/gortdp/agent"
	"github.com/samuelfneumann/gortdp/agent/tabular/rtdp"
	"github.com/samuelfneumann/gortdp/agent/tabular/vi"
	"github.com/samuelfneumann/gortdp/environment/envconfig"
	"github.com/samuelfneumann/gortdp/environment/gridworld"
	"github.com/samuelfneumann/gortdp/experiment"
	"github.com/samuelfneumann/gortdp/experiment/plot"
	"github.com/samuelfneumann/gortdp/experiment/trackers"
	"github.com/samuelfneumann/gortdp/mdp"
	log "github.com/sirupsen/logrus"
)

var (
	configFile = flag.String("config", "", "JSON experiment config file")
	layout     = flag.String("layout", "BookGrid", "grid layout, one of "+
		strings.Join(gridworld.LayoutNames(), ", "))
	maze      = flag.String("maze", "", "generate a maze with this algorithm instead of using a layout")
	mazeRows  = flag.Int("maze-rows", 5, "number of maze rooms per column")
	mazeCols  = flag.Int("maze-cols", 5, "number of maze rooms per row")
	noise     = flag.Float64("noise", gridworld.DefaultNoise, "probability of slipping sideways")
	living    = flag.Float64("living", 0, "reward of every non-exit transition")
	trials    = flag.Int("trials", 100, "number of trials")
	maxIters  = flag.Int("max-iters", 100, "maximum number of steps per trial")
	discount  = flag.Float64("discount", 0.9, "discount factor")
	reverse   = flag.Bool("reverse", false, "apply updates in reverse after each trial")
	seed      = flag.Uint64("seed", 1, "random seed")
	saveDir   = flag.String("save-dir", "", "save tracked data to this directory")
	every     = flag.Int("checkpoint", 0, "checkpoint values every n trials")
	pngFile   = flag.String("png", "", "render values and policy to this PNG file")
	chartFile = flag.String("chart", "", "write an HTML chart of per-trial data to this file")
	compare   = flag.Bool("compare", false, "compare with value iteration")
	color     = flag.Bool("color", true, "print grids in color")
	verbose   = flag.Bool("v", false, "log every trial")
	progress  = flag.Bool("progress", false, "display a progress bar")
)

func main() {
	flag.Parse()

	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	c, err := config()
	if err != nil {
		log.WithError(err).Fatal("could not configure experiment")
	}

	a, g, err := c.CreateAgent()
	if err != nil {
		log.WithError(err).Fatal("could not create agent")
	}

	var tracked []trackers.Tracker
	if trialer, ok := a.(agent.Trialer); ok {
		tracked, err = run(c, trialer, g)
		if err != nil {
			log.WithError(err).Fatal("could not run experiment")
		}
	} else {
		log.WithField("agent", c.AgentConf.Type).Info("agent planned " +
			"without simulating trials")
		if c.SaveDir != "" || c.Checkpoint > 0 || *chartFile != "" {
			log.Warn("nothing is tracked or checkpointed without trials")
		}
	}

	fmt.Println("Values:")
	g.PrintValues(os.Stdout, a.Value, *color)
	fmt.Println("\nPolicy:")
	g.PrintPolicy(os.Stdout, a.Policy, *color)

	if *pngFile != "" {
		err := g.RenderPNG(*pngFile, a.Value, a.Policy,
			gridworld.DefaultCellSize)
		if err != nil {
			log.WithError(err).Fatal("could not render grid")
		}
	}

	if *chartFile != "" && len(tracked) > 0 {
		var series []plot.Series
		for _, tr := range tracked {
			series = append(series, plot.Series{Name: tr.Name(),
				Data: tr.Data()})
		}

		title := fmt.Sprintf("%v on %v", c.AgentConf.Type, c.EnvConf.Name())
		if err := plot.LinesFile(*chartFile, title, series...); err != nil {
			log.WithError(err).Fatal("could not plot tracked data")
		}
	}

	if *compare {
		if err := compareVI(g, a, c); err != nil {
			log.WithError(err).Fatal("could not compare with value iteration")
		}
	}
}

// run runs the trials of a on g and saves the tracked data if
// configured to. The experiment's Trackers are returned.
func run(c experiment.Config, a agent.Trialer,
	g *gridworld.GridWorld) ([]trackers.Tracker, error) {
	e, err := c.NewExp(a, g)
	if err != nil {
		return nil, err
	}
	e.WithFields(log.Fields{
		"agent":  c.AgentConf.Type,
		"layout": c.EnvConf.Name(),
	})
	if *progress {
		e.ShowProgress(50)
	}

	if err := e.Run(); err != nil {
		return nil, err
	}
	if c.SaveDir != "" {
		if err := e.Save(); err != nil {
			return nil, err
		}
	}
	return e.Trackers(), nil
}

// config returns the experiment Config from the config file, with any
// explicitly set flags taking precedence
func config() (experiment.Config, error) {
	c := experiment.DefaultConfig()
	if *configFile != "" {
		var err error
		if c, err = experiment.LoadConfig(*configFile); err != nil {
			return c, err
		}
	}

	agentConf, _ := c.AgentConf.Config.(rtdp.Config)
	if *configFile == "" {
		agentConf = rtdp.Config{
			Discount:   *discount,
			Iterations: *trials,
			MaxIters:   *maxIters,
			Reverse:    *reverse,
		}
		c.EnvConf.Layout = *layout
		c.EnvConf.Noise = *noise
		c.EnvConf.LivingReward = *living
	}

	var err error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "layout":
			c.EnvConf.Layout, c.EnvConf.Grid, c.EnvConf.Maze = *layout, "", nil
		case "maze", "maze-rows", "maze-cols":
			c.EnvConf.Layout, c.EnvConf.Grid = "", ""
			c.EnvConf.Maze = &envconfig.Maze{
				Rows:      *mazeRows,
				Cols:      *mazeCols,
				Algorithm: *maze,
				Seed:      int64(*seed),
			}
		case "noise":
			c.EnvConf.Noise = *noise
		case "living":
			c.EnvConf.LivingReward = *living
		case "seed":
			c.Seed = *seed
		case "save-dir":
			c.SaveDir = *saveDir
		case "checkpoint":
			c.Checkpoint = *every
		case "trials", "max-iters", "discount", "reverse":
			if c.AgentConf.Type != agent.RTDP {
				err = fmt.Errorf("config: -%v requires an %v agent, have %v",
					f.Name, agent.RTDP, c.AgentConf.Type)
			}
		}
	})
	if err != nil {
		return c, err
	}

	if c.AgentConf.Type == agent.RTDP {
		flag.Visit(func(f *flag.Flag) {
			switch f.Name {
			case "trials":
				agentConf.Iterations = *trials
			case "max-iters":
				agentConf.MaxIters = *maxIters
			case "discount":
				agentConf.Discount = *discount
			case "reverse":
				agentConf.Reverse = *reverse
			}
		})
		c.AgentConf = agent.NewTypedConfig(agentConf)
	}

	return c, c.Validate()
}

// compareVI runs value iteration on g, prints its values, and reports
// the states in which its greedy policy differs from that of a
func compareVI(g *gridworld.GridWorld, a agent.Agent,
	c experiment.Config) error {
	conf := vi.Config{Discount: 0.9, Iterations: 1000, Tolerance: 1e-12}
	switch agentConf := c.AgentConf.Config.(type) {
	case rtdp.Config:
		conf.Discount = agentConf.Discount
	case vi.Config:
		conf.Discount = agentConf.Discount
	}

	baseline, err := vi.New(g, conf)
	if err != nil {
		return err
	}

	fmt.Printf("\nValue iteration values (%d sweeps):\n", baseline.Sweeps())
	g.PrintValues(os.Stdout, baseline.Value, *color)

	fmt.Println("\nDifference to value iteration:")
	fmt.Println(g.FormatValues(func(s mdp.State) float64 {
		return a.Value(s) - baseline.Value(s)
	}, 3))

	var differ []mdp.State
	for _, s := range g.States() {
		want, _ := baseline.Policy(s)
		if got, _ := a.Policy(s); got != want {
			differ = append(differ, s)
		}
	}
	fmt.Printf("\nPolicies differ in %d of %d states", len(differ),
		len(g.States()))
	if len(differ) > 0 {
		fmt.Printf(": %v", differ)
	}
	fmt.Println()
	return nil
}
