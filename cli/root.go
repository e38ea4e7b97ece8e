package cli

import (
	"fmt"
	"io"
	"os"
	"randomwalk/config"
	"randomwalk/experiments/metrics"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"
)

type flags struct {
	configPath string
	seed       uint64
	outputDir  string
	logLevel   string
	noColor    bool
}

// session is the state shared by the commands of one process: one config,
// one generator seeded at startup and one output directory.
type session struct {
	config *config.Config
	rng    *rand.Rand
	writer *metrics.Writer
	out    io.Writer
	start  time.Time
}

func NewRootCommand() *cobra.Command {
	f := &flags{}
	s := &session{}

	rootCommand := &cobra.Command{
		Use:           "randomwalk",
		Short:         "Compare TD(0) and Monte Carlo value estimation on a 9-state random walk",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.init(cmd, f)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return s.runAll()
		},
	}
	rootCommand.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "YAML file with experiment parameters")
	rootCommand.PersistentFlags().Uint64Var(&f.seed, "seed", 0, "Seed for the random walk generator")
	rootCommand.PersistentFlags().StringVarP(&f.outputDir, "out", "o", "", "Folder under which a timestamped results folder is created")
	rootCommand.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCommand.PersistentFlags().BoolVar(&f.noColor, "no-color", false, "Disable coloured terminal output")

	rootCommand.AddCommand(estimatesCommand(s))
	rootCommand.AddCommand(errorsCommand(s))
	rootCommand.AddCommand(allCommand(s))
	return rootCommand
}

func (s *session) init(cmd *cobra.Command, f *flags) error {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return err
	}

	changed := cmd.Flags().Changed
	if changed("seed") {
		cfg.Seed = f.seed
	}
	if changed("out") {
		cfg.OutputDir = f.outputDir
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if f.noColor {
		cfg.Color = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := setupLogging(cfg.LogLevel, cmd.ErrOrStderr()); err != nil {
		return err
	}

	writer, err := metrics.NewWriter(cfg.OutputDir)
	if err != nil {
		return err
	}

	s.config = cfg
	s.rng = rand.New(rand.NewSource(cfg.Seed))
	s.writer = writer
	s.out = cmd.OutOrStdout()
	s.start = time.Now()

	log.Info().Msgf("seed %d, writing results to %s", cfg.Seed, writer.Dir())
	return nil
}

func setupLogging(level string, w io.Writer) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	zerolog.SetGlobalLevel(lvl)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly})
	return nil
}

func (s *session) writeSetup() error {
	cfg := s.config
	err := s.writer.WriteSetup(metrics.Setup{
		Seed:               cfg.Seed,
		Checkpoints:        cfg.Checkpoints,
		TrajectoryEpisodes: cfg.TrajectoryEpisodes,
		Episodes:           cfg.Episodes,
		Runs:               cfg.Runs,
		TDAlphas:           cfg.TDAlphas,
		MCAlphas:           cfg.MCAlphas,
		StartTime:          s.start,
		EndTime:            time.Now(),
	})
	if err != nil {
		return err
	}
	log.Info().Msg("stored setup")
	return nil
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
