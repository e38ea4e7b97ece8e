package cli

import (
	"randomwalk/estimator"
	"randomwalk/experiments"
	"randomwalk/report"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func errorsCommand(s *session) *cobra.Command {
	var kind string
	cmd := &cobra.Command{
		Use:   "errors",
		Short: "Average the per-episode error of MC and TD(0) over independent runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseKinds(kind)
			if err != nil {
				return err
			}
			if _, err := s.runErrors(kinds); err != nil {
				return err
			}
			return s.writeSetup()
		},
	}
	cmd.Flags().StringVar(&kind, "kind", "", "Only run one estimator (td or mc)")
	return cmd
}

// runErrors compares the selected estimators, TD(0) first.
func (s *session) runErrors(kinds []estimator.Kind) ([]experiments.Curve, error) {
	cfg := s.config
	aggregator := experiments.NewAggregator(
		experiments.WithEpisodes(cfg.Episodes),
		experiments.WithRuns(cfg.Runs),
		experiments.WithMetrics(),
	)
	configs := []experiments.Config{}
	if selected(kinds, estimator.TD) {
		configs = append(configs, experiments.Config{Kind: estimator.TD, Alphas: cfg.TDAlphas})
	}
	if selected(kinds, estimator.MC) {
		configs = append(configs, experiments.Config{Kind: estimator.MC, Alphas: cfg.MCAlphas})
	}

	curves, err := experiments.Compare(s.rng, aggregator, configs)
	if err != nil {
		return nil, err
	}

	if err := s.writer.WriteErrors(experiments.ErrorRecords(curves)); err != nil {
		return nil, err
	}
	log.Info().Msg("stored error curves")

	if err := s.writer.WriteRunMetrics(aggregator.Metrics()); err != nil {
		return nil, err
	}
	log.Info().Msg("stored run metrics")

	if err := report.PlotErrors(s.writer.Path("MC_vs_TD_abs_errors.png"), curves); err != nil {
		return nil, err
	}
	return curves, nil
}
