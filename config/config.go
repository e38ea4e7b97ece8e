// Package config loads experiment parameters from an optional YAML file.
// Every field defaults to the constants the experiments were designed with.
package config

import (
	"fmt"
	"os"
	"randomwalk/estimator"
	"randomwalk/experiments"
	"slices"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	// Seed feeds the single generator shared by every experiment in a process.
	Seed uint64 `yaml:"seed"`

	// Checkpoints are the episode counts at which value tables are snapshotted.
	Checkpoints []int `yaml:"checkpoints"`

	// TrajectoryEpisodes is the number of consecutive episodes run when
	// collecting value snapshots.
	TrajectoryEpisodes int `yaml:"trajectory_episodes"`

	// Episodes and Runs size the error comparison.
	Episodes int `yaml:"episodes"`
	Runs     int `yaml:"runs"`

	TDAlphas []float64 `yaml:"td_alphas"`
	MCAlphas []float64 `yaml:"mc_alphas"`

	OutputDir string `yaml:"output_dir"`

	// LogLevel is any zerolog level name.
	LogLevel string `yaml:"log_level"`

	// Color enables ANSI colours in terminal tables.
	Color bool `yaml:"color"`
}

func Default() *Config {
	return &Config{
		Seed:               21641,
		Checkpoints:        slices.Clone(experiments.DefaultCheckpoints),
		TrajectoryEpisodes: experiments.DefaultEpisodes,
		Episodes:           experiments.DefaultEpisodes,
		Runs:               experiments.DefaultRuns,
		TDAlphas:           estimator.TD.DefaultAlphas(),
		MCAlphas:           estimator.MC.DefaultAlphas(),
		OutputDir:          "results",
		LogLevel:           "info",
		Color:              true,
	}
}

// Load returns the defaults when path is empty, otherwise the defaults
// overlaid with the file. RANDOMWALK_SEED overrides the seed in both cases.
func Load(path string) (*Config, error) {
	config := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("RANDOMWALK_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing RANDOMWALK_SEED: %w", err)
		}
		config.Seed = seed
	}

	return config, nil
}

func (c *Config) Validate() error {
	if c.TrajectoryEpisodes <= 0 {
		return fmt.Errorf("trajectory_episodes must be positive, got %d", c.TrajectoryEpisodes)
	}
	if c.Episodes <= 0 {
		return fmt.Errorf("episodes must be positive, got %d", c.Episodes)
	}
	if c.Runs <= 0 {
		return fmt.Errorf("runs must be positive, got %d", c.Runs)
	}
	if len(c.TDAlphas) == 0 || len(c.MCAlphas) == 0 {
		return fmt.Errorf("td_alphas and mc_alphas must not be empty")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("output_dir must not be empty")
	}
	return nil
}
