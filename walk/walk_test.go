package walk

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestStep(t *testing.T) {
	t.Run("moving one position from an interior state", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))
		for state := LeftTerminal + 1; state < RightTerminal; state++ {
			for i := 0; i < 100; i++ {
				next, reward, err := Step(rng, state)

				require.NoError(t, err)
				require.Contains(t, []int{state - 1, state + 1}, next, "Should move exactly one position")
				if next == RightTerminal {
					require.Equal(t, WIN, reward, "Should pay 1 on entering the right terminal")
				} else {
					require.Equal(t, LOSS, reward, "Should pay 0 elsewhere")
				}
			}
		}
	})

	t.Run("stepping from a terminal state", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		_, _, err := Step(rng, LeftTerminal)
		require.ErrorIs(t, err, ErrTerminalState)

		_, _, err = Step(rng, RightTerminal)
		require.ErrorIs(t, err, ErrTerminalState)
	})

	t.Run("stepping from outside the chain", func(t *testing.T) {
		rng := rand.New(rand.NewSource(1))

		_, _, err := Step(rng, -1)
		require.ErrorIs(t, err, ErrStateOutOfRange)

		_, _, err = Step(rng, NumStates)
		require.ErrorIs(t, err, ErrStateOutOfRange)
	})

	t.Run("both directions are drawn", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		seen := map[int]int{}
		for i := 0; i < 1000; i++ {
			next, _, err := Step(rng, Start)
			require.NoError(t, err)
			seen[next-Start]++
		}

		require.Len(t, seen, 2, "Should move both left and right")
		require.InDelta(t, 500, seen[1], 100, "Should move right about half the time")
	})
}

func TestEpisodeTerminates(t *testing.T) {
	const maxSteps = 100000
	for seed := uint64(0); seed < 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		state := Start
		steps := 0
		for !IsTerminal(state) && steps < maxSteps {
			next, _, err := Step(rng, state)
			require.NoError(t, err)
			require.GreaterOrEqual(t, next, LeftTerminal)
			require.LessOrEqual(t, next, RightTerminal)
			state = next
			steps++
		}

		require.True(t, IsTerminal(state), "Episode with seed %d should terminate within %d steps", seed, maxSteps)
	}
}
