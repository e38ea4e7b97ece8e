package experiments

import (
	"fmt"
	"randomwalk/estimator"
	"randomwalk/experiments/metrics"
	"randomwalk/walk"
	"slices"

	"golang.org/x/exp/rand"
)

// Snapshots maps an episode count to the value table as it stood before
// that episode ran.
type Snapshots map[int]walk.Values

func (s Snapshots) Checkpoints() []int {
	checkpoints := make([]int, 0, len(s))
	for c := range s {
		checkpoints = append(checkpoints, c)
	}
	slices.Sort(checkpoints)
	return checkpoints
}

// Interior returns the estimates of states 1..7 at a checkpoint.
func (s Snapshots) Interior(checkpoint int) ([]float64, bool) {
	v, ok := s[checkpoint]
	if !ok {
		return nil, false
	}
	return v.Interior(), true
}

func (s Snapshots) Records(kind estimator.Kind) []metrics.EstimateRecord {
	records := []metrics.EstimateRecord{}
	for _, c := range s.Checkpoints() {
		for state, value := range s[c] {
			if walk.IsTerminal(state) {
				continue
			}
			records = append(records, metrics.EstimateRecord{
				Kind:       kind,
				Checkpoint: c,
				State:      state,
				Value:      value,
			})
		}
	}
	return records
}

// CollectTrajectories runs totalEpisodes consecutive episodes on one table
// with the kind's default step size, copying the table before each episode
// whose index is a checkpoint.
func CollectTrajectories(rng *rand.Rand, kind estimator.Kind, checkpoints []int, totalEpisodes int) (Snapshots, error) {
	snapshots := Snapshots{}
	v := walk.InitialValues()
	alpha := kind.DefaultAlpha()

	for i := 0; i < totalEpisodes; i++ {
		if slices.Contains(checkpoints, i) {
			snapshots[i] = v.Clone()
		}
		if _, err := kind.RunEpisode(rng, v, alpha); err != nil {
			return nil, fmt.Errorf("failed to run %s episode %d: %w", kind, i, err)
		}
	}

	return snapshots, nil
}
