package walk

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// ErrTableLength is returned when a value table does not hold exactly one
// entry per state.
var ErrTableLength = errors.New("walk: value table length")

// Values holds one estimate per state, indexed by state.
type Values []float64

// InitialValues is the starting estimate. Both terminal entries start at 0.0,
// which keeps them neutral as TD(0) bootstrap targets.
func InitialValues() Values {
	v := make(Values, NumStates)
	for s := LeftTerminal + 1; s < RightTerminal; s++ {
		v[s] = 0.5
	}
	return v
}

// TrueValues returns V*(s) = s/8.
func TrueValues() Values {
	v := make(Values, NumStates)
	for s := range v {
		v[s] = float64(s) / float64(RightTerminal)
	}
	return v
}

// Validate checks that v has NumStates entries.
func (v Values) Validate() error {
	if len(v) != NumStates {
		return fmt.Errorf("%w: got %d, want %d", ErrTableLength, len(v), NumStates)
	}
	return nil
}

// Clone returns an independent copy of v.
func (v Values) Clone() Values {
	c := make(Values, len(v))
	copy(c, v)
	return c
}

// Interior returns a copy of the estimates for states 1..7.
func (v Values) Interior() []float64 {
	interior := make([]float64, NumInterior)
	copy(interior, v[LeftTerminal+1:RightTerminal])
	return interior
}

// MeanAbsError averages |truth[s] - v[s]| over the interior states.
func MeanAbsError(v, truth Values) float64 {
	return floats.Distance(v[LeftTerminal+1:RightTerminal], truth[LeftTerminal+1:RightTerminal], 1) / NumInterior
}
