package report

import (
	"fmt"
	"io"
	"randomwalk/estimator"
	"randomwalk/experiments"
	"randomwalk/walk"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

type Estimates struct {
	Title     string
	Snapshots experiments.Snapshots
}

// RenderCharts writes an HTML page with one chart per estimate set and one
// error comparison chart.
func RenderCharts(w io.Writer, estimates []Estimates, curves []experiments.Curve) error {
	page := components.NewPage()
	page.PageTitle = "Random walk value estimation"

	for _, e := range estimates {
		page.AddCharts(estimatesChart(e))
	}
	if len(curves) > 0 {
		page.AddCharts(errorsChart(curves))
	}

	if err := page.Render(w); err != nil {
		return fmt.Errorf("failed to render charts: %w", err)
	}
	return nil
}

func estimatesChart(e Estimates) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: e.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: "States"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Estimated Values"}),
	)

	states := make([]string, walk.NumInterior)
	for i := range states {
		states[i] = strconv.Itoa(i + 1)
	}
	line.SetXAxis(states)
	line.AddSeries("True values", lineData(walk.TrueValues().Interior()))
	for _, checkpoint := range e.Snapshots.Checkpoints() {
		values, _ := e.Snapshots.Interior(checkpoint)
		line.AddSeries(fmt.Sprintf("%d episodes", checkpoint), lineData(values))
	}
	return line
}

func errorsChart(curves []experiments.Curve) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Comparison of MC vs TD(0) Absolute Errors"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Episodes"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Average Absolute Errors"}),
	)

	longest := 0
	for _, curve := range curves {
		longest = max(longest, len(curve.Errors))
	}
	episodes := make([]string, longest)
	for i := range episodes {
		episodes[i] = strconv.Itoa(i)
	}
	line.SetXAxis(episodes)

	for _, curve := range curves {
		style := opts.LineStyle{Type: "solid"}
		if curve.Kind == estimator.MC {
			style.Type = "dashed"
		}
		line.AddSeries(CurveLabel(curve), lineData(curve.Errors), charts.WithLineStyleOpts(style))
	}
	return line
}

func lineData(values []float64) []opts.LineData {
	items := make([]opts.LineData, 0, len(values))
	for _, v := range values {
		items = append(items, opts.LineData{Value: v})
	}
	return items
}
