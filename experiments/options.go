package experiments

import "randomwalk/experiments/metrics"

const (
	DefaultEpisodes = 201
	DefaultRuns     = 200
)

var DefaultCheckpoints = []int{0, 3, 30, 200}

type Option func(a *Aggregator)

func WithEpisodes(episodes int) Option {
	return func(a *Aggregator) {
		if episodes > 0 {
			a.episodes = episodes
		}
	}
}

func WithRuns(runs int) Option {
	return func(a *Aggregator) {
		if runs > 0 {
			a.runs = runs
		}
	}
}

func WithMetrics() Option {
	return func(a *Aggregator) {
		a.metrics = metrics.NewCollector()
	}
}
