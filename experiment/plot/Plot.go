// Package plot renders data tracked during experiments as HTML charts
package plot

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/pkg/errors"
)

// Series is a named sequence of per-trial values
type Series struct {
	Name string
	Data []float64
}

// Lines renders one line per Series on a single chart, plotted against
// the trial number, and writes the chart to w as an HTML page
func Lines(w io.Writer, title string, series ...Series) error {
	if len(series) == 0 {
		return fmt.Errorf("lines: no series to plot")
	}

	trials := 0
	for _, s := range series {
		if len(s.Data) > trials {
			trials = len(s.Data)
		}
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithInitializationOpts(opts.Initialization{Theme: "shine"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "trial"}),
	)

	x := make([]string, trials)
	for i := range x {
		x[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(x)

	for _, s := range series {
		items := make([]opts.LineData, len(s.Data))
		for i, v := range s.Data {
			items[i] = opts.LineData{Value: v}
		}
		line.AddSeries(s.Name, items)
	}

	page := components.NewPage()
	page.AddCharts(line)
	if err := page.Render(w); err != nil {
		return errors.Wrap(err, "lines: could not render chart")
	}
	return nil
}

// LinesFile renders the chart of Lines to filename
func LinesFile(filename, title string, series ...Series) error {
	f, err := os.Create(filename)
	if err != nil {
		return errors.Wrapf(err, "linesFile: could not create %v", filename)
	}
	defer f.Close()

	return Lines(f, title, series...)
}
