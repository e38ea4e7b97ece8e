package experiments

import (
	"randomwalk/estimator"
	"randomwalk/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

type Config struct {
	Kind   estimator.Kind
	Alphas []float64
}

// Compare aggregates every configuration in order, drawing from the same
// generator, and returns the curves in configuration then step size order.
func Compare(rng *rand.Rand, a *Aggregator, configs []Config) ([]Curve, error) {
	curves := []Curve{}

	log.Info().Msgf("starting error comparison with %d runs of %d episodes...", a.runs, a.episodes)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %s with alphas %v...", ci+1, len(configs), config.Kind, config.Alphas)

		result, err := a.Aggregate(rng, config.Kind, config.Alphas)
		if err != nil {
			return nil, err
		}
		for _, curve := range result {
			errs := curve.Errors
			log.Info().Msgf("%s alpha=%.2f: error %.4f at episode 0, %.4f at episode %d", curve.Kind, curve.Alpha, errs[0], errs[len(errs)-1], len(errs)-1)
		}
		curves = append(curves, result...)

		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	log.Info().Msg("completed error comparison")
	return curves, nil
}

func ErrorRecords(curves []Curve) []metrics.ErrorRecord {
	records := []metrics.ErrorRecord{}
	for _, curve := range curves {
		for i, e := range curve.Errors {
			records = append(records, metrics.ErrorRecord{
				Kind:    curve.Kind,
				Alpha:   curve.Alpha,
				Episode: i,
				Error:   e,
			})
		}
	}
	return records
}
