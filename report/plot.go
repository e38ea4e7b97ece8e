package report

import (
	"fmt"
	"randomwalk/estimator"
	"randomwalk/experiments"
	"randomwalk/walk"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

const (
	figureWidth  = 10 * vg.Inch
	figureHeight = 6 * vg.Inch
)

// PlotEstimates draws the true values and every snapshot over states 1..7.
func PlotEstimates(path, title string, snapshots experiments.Snapshots) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "States"
	p.Y.Label.Text = "Estimated Values"
	p.X.Tick.Marker = stateTicks()
	p.Legend.Top = true
	p.Legend.Left = true

	truth, err := plotter.NewLine(statePoints(walk.TrueValues().Interior()))
	if err != nil {
		return fmt.Errorf("failed to build true value line: %w", err)
	}
	truth.Color = plotutil.Color(0)
	truth.Width = vg.Points(2)
	p.Add(truth)
	p.Legend.Add("True values", truth)

	for i, checkpoint := range snapshots.Checkpoints() {
		values, _ := snapshots.Interior(checkpoint)
		line, err := plotter.NewLine(statePoints(values))
		if err != nil {
			return fmt.Errorf("failed to build line for %d episodes: %w", checkpoint, err)
		}
		line.Color = plotutil.Color(i + 1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%d episodes", checkpoint), line)
	}

	if err := p.Save(figureWidth, figureHeight, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// PlotErrors draws one averaged error curve per configuration, solid for
// TD(0) and dashed for MC.
func PlotErrors(path string, curves []experiments.Curve) error {
	p := plot.New()
	p.Title.Text = "Comparison of MC vs TD(0) Absolute Errors"
	p.X.Label.Text = "Episodes"
	p.Y.Label.Text = "Average Absolute Errors"
	p.Legend.Top = true

	for i, curve := range curves {
		points := make(plotter.XYs, len(curve.Errors))
		for j, e := range curve.Errors {
			points[j] = plotter.XY{X: float64(j), Y: e}
		}
		line, err := plotter.NewLine(points)
		if err != nil {
			return fmt.Errorf("failed to build line for %s: %w", CurveLabel(curve), err)
		}
		line.Color = plotutil.Color(i)
		if curve.Kind == estimator.MC {
			line.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		p.Add(line)
		p.Legend.Add(CurveLabel(curve), line)
	}

	if err := p.Save(figureWidth, figureHeight, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

func CurveLabel(curve experiments.Curve) string {
	return fmt.Sprintf("%s, α = %.2f", curve.Kind, curve.Alpha)
}

func statePoints(values []float64) plotter.XYs {
	points := make(plotter.XYs, len(values))
	for i, v := range values {
		points[i] = plotter.XY{X: float64(i + 1), Y: v}
	}
	return points
}

func stateTicks() plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, walk.NumInterior)
	for i := range ticks {
		ticks[i] = plot.Tick{Value: float64(i + 1), Label: strconv.Itoa(i + 1)}
	}
	return ticks
}
