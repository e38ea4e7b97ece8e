package cli

import (
	"fmt"
	"os"
	"randomwalk/estimator"
	"randomwalk/experiments"
	"randomwalk/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func allCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Run the estimates and errors experiments and render an HTML report",
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runAll()
		},
	}
}

// runAll draws both experiments from the same generator, estimates first.
func (s *session) runAll() error {
	kinds := []estimator.Kind{estimator.TD, estimator.MC}
	estimates, err := s.runEstimates(kinds)
	if err != nil {
		return err
	}
	curves, err := s.runErrors(kinds)
	if err != nil {
		return err
	}

	if err := writeCharts(s.writer.Path("charts.html"), estimates, curves); err != nil {
		return err
	}
	log.Info().Msg("stored charts")

	return s.writeSetup()
}

// writeCharts renders the HTML report to path. The file is only reported as
// written once it has been closed without error.
func writeCharts(path string, estimates []report.Estimates, curves []experiments.Curve) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create charts file: %w", err)
	}
	if err := report.RenderCharts(f, estimates, curves); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close charts file: %w", err)
	}
	return nil
}
