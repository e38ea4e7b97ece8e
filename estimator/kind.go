package estimator

import (
	"errors"
	"fmt"
	"randomwalk/walk"
	"strings"

	"golang.org/x/exp/rand"
)

// Kind selects the update rule used to estimate state values.
type Kind int

const (
	TD Kind = iota
	MC
)

var ErrUnknownKind = errors.New("unknown estimator")

// Episode summarises a finished episode.
type Episode struct {
	Steps  int
	Return float64
}

func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(s) {
	case "td", "td0", "td(0)":
		return TD, nil
	case "mc", "montecarlo", "monte-carlo":
		return MC, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownKind, s)
}

func (k Kind) String() string {
	switch k {
	case TD:
		return "TD"
	case MC:
		return "MC"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DefaultAlpha is the step size used when collecting value trajectories.
func (k Kind) DefaultAlpha() float64 {
	if k == MC {
		return 0.02
	}
	return 0.05
}

// DefaultAlphas are the step sizes compared by the error experiment.
func (k Kind) DefaultAlphas() []float64 {
	if k == MC {
		return []float64{0.02, 0.03, 0.04}
	}
	return []float64{0.15, 0.1, 0.05}
}

// RunEpisode runs one episode from walk.Start and updates v in place.
func (k Kind) RunEpisode(rng *rand.Rand, v walk.Values, alpha float64) (Episode, error) {
	switch k {
	case TD:
		return RunTD(rng, v, alpha)
	case MC:
		return RunMC(rng, v, alpha)
	}
	return Episode{}, fmt.Errorf("%w: %s", ErrUnknownKind, k)
}
