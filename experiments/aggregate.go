package experiments

import (
	"fmt"
	"randomwalk/estimator"
	"randomwalk/experiments/metrics"
	"randomwalk/walk"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Curve is the run-averaged error before every episode for one step size.
type Curve struct {
	Kind   estimator.Kind
	Alpha  float64
	Errors []float64
}

type Aggregator struct {
	episodes int
	runs     int
	metrics  metrics.Collector
	results  []metrics.RunMetric
}

func NewAggregator(options ...Option) *Aggregator {
	a := &Aggregator{ // Default values
		episodes: DefaultEpisodes,
		runs:     DefaultRuns,
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}
	return a
}

// Metrics returns one entry per step size aggregated so far. Empty unless
// the aggregator was built WithMetrics.
func (a *Aggregator) Metrics() []metrics.RunMetric {
	return a.results
}

// Aggregate computes, for each step size, the mean absolute error before
// every episode index averaged over independent runs. Curves come back in
// the order of alphas, one per entry, duplicates included. On error no
// metrics are recorded for the call.
func (a *Aggregator) Aggregate(rng *rand.Rand, kind estimator.Kind, alphas []float64) ([]Curve, error) {
	curves := make([]Curve, 0, len(alphas))
	results := []metrics.RunMetric{}
	truth := walk.TrueValues()

	for _, alpha := range alphas {
		a.metrics.Start(kind, alpha)
		total := make([]float64, a.episodes)
		errs := make([]float64, a.episodes)

		for run := 0; run < a.runs; run++ {
			v := walk.InitialValues()
			for i := 0; i < a.episodes; i++ {
				errs[i] = walk.MeanAbsError(v, truth)
				episode, err := kind.RunEpisode(rng, v, alpha)
				if err != nil {
					a.metrics.Complete()
					return nil, fmt.Errorf("failed to run %s episode %d of run %d: %w", kind, i, run, err)
				}
				a.metrics.AddEpisode(episode)
			}
			floats.Add(total, errs)
			a.metrics.AddRun()
		}
		floats.Scale(1/float64(a.runs), total)

		curves = append(curves, Curve{Kind: kind, Alpha: alpha, Errors: total})
		if metric := a.metrics.Complete(); metric.Runs > 0 {
			results = append(results, metric)
			log.Debug().Msgf("%s alpha=%.2f: %d episodes, %.1f mean steps, took %s", kind, alpha, metric.Episodes, metric.MeanSteps(), metric.Duration)
		}
	}

	a.results = append(a.results, results...)
	return curves, nil
}
