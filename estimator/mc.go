package estimator

import (
	"randomwalk/walk"

	"golang.org/x/exp/rand"
)

// RunMC runs one episode to termination, then moves the estimate of every
// visited non-terminal state towards the observed return.
func RunMC(rng *rand.Rand, v walk.Values, alpha float64) (Episode, error) {
	if err := v.Validate(); err != nil {
		return Episode{}, err
	}

	trajectory, ret, err := Generate(rng)
	if err != nil {
		return Episode{}, err
	}
	UpdateMC(v, trajectory, ret, alpha)

	return Episode{Steps: len(trajectory) - 1, Return: ret}, nil
}

// Generate walks from walk.Start until a terminal state and returns every
// visited state, terminal included, with the episode return.
func Generate(rng *rand.Rand) ([]int, float64, error) {
	state := walk.Start
	trajectory := []int{state}
	for {
		next, _, err := walk.Step(rng, state)
		if err != nil {
			return trajectory, walk.LOSS, err
		}
		trajectory = append(trajectory, next)
		state = next

		switch state {
		case walk.LeftTerminal:
			return trajectory, walk.LOSS, nil
		case walk.RightTerminal:
			return trajectory, walk.WIN, nil
		}
	}
}

// UpdateMC applies V(s) <- V(s) + alpha*(ret - V(s)) once per visit for every
// state of the trajectory except the last, terminal one.
func UpdateMC(v walk.Values, trajectory []int, ret, alpha float64) {
	if len(trajectory) == 0 {
		return
	}
	for _, state := range trajectory[:len(trajectory)-1] {
		v[state] = v[state] + alpha*(ret-v[state])
	}
}
