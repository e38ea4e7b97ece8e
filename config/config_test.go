package config

import (
	"os"
	"path/filepath"
	"randomwalk/estimator"
	"randomwalk/experiments"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestDefault(t *testing.T) {
	config := Default()

	require.Equal(t, uint64(21641), config.Seed)
	require.Equal(t, []int{0, 3, 30, 200}, config.Checkpoints)
	require.Equal(t, 201, config.TrajectoryEpisodes)
	require.Equal(t, 201, config.Episodes)
	require.Equal(t, 200, config.Runs)
	require.Equal(t, []float64{0.15, 0.1, 0.05}, config.TDAlphas)
	require.Equal(t, []float64{0.02, 0.03, 0.04}, config.MCAlphas)
	require.NoError(t, config.Validate())
}

func TestDefaultFollowsExperimentDefaults(t *testing.T) {
	config := Default()

	require.Equal(t, experiments.DefaultCheckpoints, config.Checkpoints)
	require.Equal(t, experiments.DefaultEpisodes, config.Episodes)
	require.Equal(t, experiments.DefaultRuns, config.Runs)
	require.Equal(t, estimator.TD.DefaultAlphas(), config.TDAlphas)
	require.Equal(t, estimator.MC.DefaultAlphas(), config.MCAlphas)

	config.Checkpoints[0] = 99
	config.TDAlphas[0] = 99
	require.Equal(t, []int{0, 3, 30, 200}, experiments.DefaultCheckpoints, "Config should own its checkpoints")
	require.Equal(t, 0.15, estimator.TD.DefaultAlphas()[0])
}

func TestLoad(t *testing.T) {
	t.Run("empty path gives defaults", func(t *testing.T) {
		config, err := Load("")
		require.NoError(t, err)
		require.Equal(t, Default(), config)
	})

	t.Run("file overrides only the fields it sets", func(t *testing.T) {
		path := writeConfig(t, `
seed: 7
runs: 10
mc_alphas: [0.01]
log_level: debug
`)

		config, err := Load(path)

		require.NoError(t, err)
		require.Equal(t, uint64(7), config.Seed)
		require.Equal(t, 10, config.Runs)
		require.Equal(t, []float64{0.01}, config.MCAlphas)
		require.Equal(t, "debug", config.LogLevel)
		require.Equal(t, 201, config.Episodes, "Unset fields should keep defaults")
		require.Equal(t, []float64{0.15, 0.1, 0.05}, config.TDAlphas)
	})

	t.Run("environment overrides the seed", func(t *testing.T) {
		t.Setenv("RANDOMWALK_SEED", "123")

		config, err := Load("")

		require.NoError(t, err)
		require.Equal(t, uint64(123), config.Seed)
	})

	t.Run("invalid seed in environment", func(t *testing.T) {
		t.Setenv("RANDOMWALK_SEED", "abc")

		_, err := Load("")
		require.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeConfig(t, "runs: [oops"))
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	cases := map[string]func(c *Config){
		"zero runs":                func(c *Config) { c.Runs = 0 },
		"negative episodes":        func(c *Config) { c.Episodes = -1 },
		"zero trajectory episodes": func(c *Config) { c.TrajectoryEpisodes = 0 },
		"no TD alphas":             func(c *Config) { c.TDAlphas = nil },
		"no output dir":            func(c *Config) { c.OutputDir = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			config := Default()
			mutate(config)
			require.Error(t, config.Validate())
		})
	}
}
