package metrics

import (
	"randomwalk/estimator"
	"randomwalk/walk"
	"time"
)

// RunMetric summarises every episode run for one (estimator, step size)
// configuration.
type RunMetric struct {
	Kind       estimator.Kind
	Alpha      float64
	Runs       int
	Episodes   int
	TotalSteps int
	RightExits int // Episodes ending in walk.RightTerminal
	Duration   time.Duration
}

func (m RunMetric) MeanSteps() float64 {
	if m.Episodes == 0 {
		return 0
	}
	return float64(m.TotalSteps) / float64(m.Episodes)
}

type Collector interface {
	Start(kind estimator.Kind, alpha float64)
	AddEpisode(episode estimator.Episode)
	AddRun()
	Complete() RunMetric
}

type collector struct {
	kind       estimator.Kind
	alpha      float64
	startTime  time.Time
	runs       int
	episodes   int
	totalSteps int
	rightExits int
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(kind estimator.Kind, alpha float64) {
	*m = collector{
		kind:      kind,
		alpha:     alpha,
		startTime: time.Now(),
	}
}

func (m *collector) AddEpisode(episode estimator.Episode) {
	m.episodes++
	m.totalSteps += episode.Steps
	if episode.Return == walk.WIN {
		m.rightExits++
	}
}

func (m *collector) AddRun() {
	m.runs++
}

func (m *collector) Complete() RunMetric {
	return RunMetric{
		Kind:       m.kind,
		Alpha:      m.alpha,
		Runs:       m.runs,
		Episodes:   m.episodes,
		TotalSteps: m.totalSteps,
		RightExits: m.rightExits,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(kind estimator.Kind, alpha float64) {}
func (m *dummyCollector) AddEpisode(episode estimator.Episode)     {}
func (m *dummyCollector) AddRun()                                  {}
func (m *dummyCollector) Complete() RunMetric                      { return RunMetric{} }
