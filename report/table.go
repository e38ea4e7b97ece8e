package report

import (
	"fmt"
	"io"
	"math"
	"randomwalk/experiments"
	"randomwalk/walk"

	"github.com/logrusorgru/aurora"
)

// Distance from the true value under which an estimate counts as close.
const (
	closeTolerance = 0.05
	nearTolerance  = 0.15
)

// PrintValues writes one row per checkpoint with the interior estimates,
// coloured by their distance from the true values.
func PrintValues(w io.Writer, title string, snapshots experiments.Snapshots, colors bool) error {
	au := aurora.NewAurora(colors)
	truth := walk.TrueValues().Interior()

	if _, err := fmt.Fprintf(w, "%s\n", au.Bold(title)); err != nil {
		return err
	}

	header := fmt.Sprintf("%-10s", "episodes")
	for s := 1; s <= walk.NumInterior; s++ {
		header += fmt.Sprintf(" %6d", s)
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}

	row := fmt.Sprintf("%-10s", "true")
	for _, v := range truth {
		row += fmt.Sprintf(" %6.3f", v)
	}
	if _, err := fmt.Fprintln(w, au.Cyan(row)); err != nil {
		return err
	}

	for _, checkpoint := range snapshots.Checkpoints() {
		values, _ := snapshots.Interior(checkpoint)
		if _, err := fmt.Fprintf(w, "%-10d", checkpoint); err != nil {
			return err
		}
		for i, v := range values {
			cell := fmt.Sprintf(" %6.3f", v)
			if _, err := fmt.Fprint(w, colorize(au, cell, math.Abs(v-truth[i]))); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}

func colorize(au aurora.Aurora, cell string, distance float64) aurora.Value {
	switch {
	case distance <= closeTolerance:
		return au.Green(cell)
	case distance <= nearTolerance:
		return au.Yellow(cell)
	default:
		return au.Red(cell)
	}
}
