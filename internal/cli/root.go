package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/aoc2022/internal/config"
	"github.com/katalvlaran/aoc2022/internal/logging"
	"github.com/katalvlaran/aoc2022/puzzle"
	"github.com/katalvlaran/aoc2022/puzzle/day12"
	"github.com/katalvlaran/aoc2022/puzzle/day19"
)

// app carries the global flags and the configuration they resolve to.
// PersistentPreRunE fills cfg before any subcommand runs.
type app struct {
	configPath string
	logLevel   string
	verbose    bool

	cfg *config.Config
}

// NewRootCommand creates the root command for the CLI
func NewRootCommand() *cobra.Command {
	a := &app{}
	rootCmd := &cobra.Command{
		Use:   "aoc2022",
		Short: "Advent of Code 2022 solvers",
		Long: `aoc2022 runs the puzzle solvers and the blueprint geode search.

Configuration is loaded from multiple sources with priority:
1. Environment variables (AOC_* prefix)
2. Config file (config.yaml in . or ./configs, or --config)
3. Default values

Examples:
  aoc2022 days
  aoc2022 solve 19
  aoc2022 solve 12 --input ./my-input.txt --json
  aoc2022 geodes blueprints.yaml --minutes 32 --max-branches 0
  aoc2022 config show`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "",
		"Path to config file (default: ./config.yaml or ./configs/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "",
		"Log level override: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false,
		"Enable debug logging (same as --log-level debug)")

	rootCmd.AddCommand(a.newSolveCommand())
	rootCmd.AddCommand(a.newGeodesCommand())
	rootCmd.AddCommand(a.newDaysCommand())
	rootCmd.AddCommand(a.newConfigCommand())

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCommand().Execute()
}

// setup loads configuration and initializes logging.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	a.cfg = cfg

	logging.InitWriter(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	logging.Debug("configuration loaded", "config", a.configPath, "input_dir", cfg.Input.Dir)

	return nil
}

// registry returns every solvable day wired with the loaded configuration.
func (a *app) registry() (*puzzle.Registry, error) {
	r := puzzle.NewRegistry()
	if err := r.Register(12, day12.Factory); err != nil {
		return nil, err
	}
	if err := r.Register(19, day19.Factory(a.cfg.Day19())); err != nil {
		return nil, err
	}

	return r, nil
}
