package walk

import (
	"errors"

	"golang.org/x/exp/rand"
)

// Chain layout
const (
	NumStates     = 9
	NumInterior   = NumStates - 2
	Start         = 4
	LeftTerminal  = 0
	RightTerminal = NumStates - 1
)

// Reward for the transition into RightTerminal, every other transition pays 0
const WIN = 1.0
const LOSS = 0.0

var (
	ErrTerminalState   = errors.New("walk: step from a terminal state")
	ErrStateOutOfRange = errors.New("walk: state out of range")
)

func IsTerminal(state int) bool {
	return state == LeftTerminal || state == RightTerminal
}

// Step moves one position left or right with equal probability and returns
// the next state and the reward observed on the transition.
func Step(rng *rand.Rand, state int) (int, float64, error) {
	if state < LeftTerminal || state > RightTerminal {
		return state, LOSS, ErrStateOutOfRange
	}
	if IsTerminal(state) {
		return state, LOSS, ErrTerminalState
	}

	next := state + direction(rng)
	if next == RightTerminal {
		return next, WIN, nil
	}
	return next, LOSS, nil
}

func direction(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
