package estimator

import (
	"randomwalk/walk"

	"golang.org/x/exp/rand"
)

// RunTD runs one episode, applying the TD(0) update after every transition.
func RunTD(rng *rand.Rand, v walk.Values, alpha float64) (Episode, error) {
	if err := v.Validate(); err != nil {
		return Episode{}, err
	}

	episode := Episode{}
	state := walk.Start
	for {
		next, reward, err := walk.Step(rng, state)
		if err != nil {
			return episode, err
		}
		UpdateTD(v, state, next, reward, alpha)
		episode.Steps++

		state = next
		if walk.IsTerminal(state) {
			episode.Return = reward
			return episode, nil
		}
	}
}

// UpdateTD applies V(s) <- V(s) + alpha*(r + V(s') - V(s)). V(s') is read
// before V(s) changes and is never written.
func UpdateTD(v walk.Values, state, next int, reward, alpha float64) {
	v[state] = v[state] + alpha*(reward+v[next]-v[state])
}
