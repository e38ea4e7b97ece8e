package experiments

import (
	"math"
	"randomwalk/estimator"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func defaultConfigs() []Config {
	return []Config{
		{Kind: estimator.TD, Alphas: estimator.TD.DefaultAlphas()},
		{Kind: estimator.MC, Alphas: estimator.MC.DefaultAlphas()},
	}
}

func TestCompare(t *testing.T) {
	t.Run("curves follow configuration order", func(t *testing.T) {
		rng := rand.New(rand.NewSource(8))
		a := NewAggregator(WithRuns(2), WithEpisodes(15))

		curves, err := Compare(rng, a, defaultConfigs())

		require.NoError(t, err)
		require.Len(t, curves, 6)
		want := []struct {
			kind  estimator.Kind
			alpha float64
		}{
			{estimator.TD, 0.15}, {estimator.TD, 0.1}, {estimator.TD, 0.05},
			{estimator.MC, 0.02}, {estimator.MC, 0.03}, {estimator.MC, 0.04},
		}
		for i, w := range want {
			require.Equal(t, w.kind, curves[i].Kind)
			require.Equal(t, w.alpha, curves[i].Alpha)
			require.Len(t, curves[i].Errors, 15)
		}
	})

	t.Run("is deterministic for a seed", func(t *testing.T) {
		run := func() []Curve {
			rng := rand.New(rand.NewSource(21641))
			curves, err := Compare(rng, NewAggregator(WithRuns(3), WithEpisodes(20)), defaultConfigs())
			require.NoError(t, err)
			return curves
		}

		require.Equal(t, run(), run())
	})

	t.Run("NaN and duplicate step sizes keep their positions", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		a := NewAggregator(WithRuns(1), WithEpisodes(3))

		var curves []Curve
		var err error
		require.NotPanics(t, func() {
			curves, err = Compare(rng, a, []Config{
				{Kind: estimator.TD, Alphas: []float64{math.NaN()}},
				{Kind: estimator.MC, Alphas: []float64{0.02, 0.02}},
			})
		})

		require.NoError(t, err)
		require.Len(t, curves, 3)
		require.True(t, math.IsNaN(curves[0].Alpha))
		require.Equal(t, estimator.MC, curves[1].Kind)
		require.Equal(t, estimator.MC, curves[2].Kind)
		require.Len(t, curves[2].Errors, 3)
	})

	t.Run("unknown kind fails the comparison", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))

		_, err := Compare(rng, NewAggregator(WithRuns(1), WithEpisodes(3)), []Config{{Kind: estimator.Kind(9), Alphas: []float64{0.1}}})

		require.ErrorIs(t, err, estimator.ErrUnknownKind)
	})

	t.Run("flattening into error records", func(t *testing.T) {
		records := ErrorRecords([]Curve{
			{Kind: estimator.TD, Alpha: 0.1, Errors: []float64{0.3, 0.2}},
			{Kind: estimator.MC, Alpha: 0.02, Errors: []float64{0.3}},
		})

		require.Len(t, records, 3)
		require.Equal(t, 1, records[1].Episode)
		require.Equal(t, 0.2, records[1].Error)
		require.Equal(t, estimator.MC, records[2].Kind)
	})
}
