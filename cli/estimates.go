package cli

import (
	"randomwalk/estimator"
	"randomwalk/experiments"
	"randomwalk/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var estimateFigures = []struct {
	kind  estimator.Kind
	title string
	file  string
}{
	{estimator.MC, "Monte Carlo Estimates", "Monte_Carlo_Estimates.png"},
	{estimator.TD, "TD(0) Estimates", "TD0_Estimates.png"},
}

func estimatesCommand(s *session) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "estimates",
		Short: "Snapshot value estimates at checkpoint episodes for MC and TD(0)",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(kind)
			if err != nil {
				return err
			}
			if _, err := s.runEstimates(kinds); err != nil {
				return err
			}
			return s.writeSetup()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only run one estimator (td or mc)")
	return cmd
}

// runEstimates collects snapshots for the selected estimators, Monte Carlo
// first.
func (s *session) runEstimates(kinds []estimator.Kind) ([]report.Estimates, error) {
	cfg := s.config
	estimates := []report.Estimates{}

	for _, figure := range estimateFigures {
		if !selected(kinds, figure.kind) {
			continue
		}
		log.Info().Msgf("collecting %s estimates over %d episodes...", figure.kind, cfg.TrajectoryEpisodes)

		snapshots, err := experiments.CollectTrajectories(s.rng, figure.kind, cfg.Checkpoints, cfg.TrajectoryEpisodes)
		if err != nil {
			return nil, err
		}
		if err := report.PrintValues(s.out, figure.title, snapshots, cfg.Color); err != nil {
			return nil, err
		}
		if err := s.writer.WriteEstimates(figure.kind, snapshots.Records(figure.kind)); err != nil {
			return nil, err
		}
		if err := report.PlotEstimates(s.writer.Path(figure.file), figure.title, snapshots); err != nil {
			return nil, err
		}
		log.Info().Msgf("stored %s estimates", figure.kind)

		estimates = append(estimates, report.Estimates{Title: figure.title, Snapshots: snapshots})
	}
	return estimates, nil
}
