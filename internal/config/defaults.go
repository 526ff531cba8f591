package config

import "github.com/katalvlaran/aoc2022/puzzle/day19"

// SetDefaults sets default values for all configuration fields
func SetDefaults(cfg *Config) {
	// Input defaults
	if cfg.Input.Dir == "" {
		cfg.Input.Dir = ".input"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}

	// Geodes defaults follow the puzzle's own parameters
	d := day19.DefaultConfig()
	if cfg.Geodes.PartOneMinutes == 0 {
		cfg.Geodes.PartOneMinutes = d.PartOneMinutes
	}
	if cfg.Geodes.PartTwoMinutes == 0 {
		cfg.Geodes.PartTwoMinutes = d.PartTwoMinutes
	}
	if cfg.Geodes.PartTwoBlueprints == 0 {
		cfg.Geodes.PartTwoBlueprints = d.PartTwoBlueprints
	}
	// MaxBranches has no zero-value default: 0 selects exhaustive
	// branching. LoadConfig seeds it through viper instead.
}

// Day19 maps the geodes settings onto the solver's config
func (c *Config) Day19() day19.Config {
	return day19.Config{
		PartOneMinutes:    c.Geodes.PartOneMinutes,
		PartTwoMinutes:    c.Geodes.PartTwoMinutes,
		PartTwoBlueprints: c.Geodes.PartTwoBlueprints,
		Workers:           c.Solver.Workers,
		MaxBranches:       c.Geodes.MaxBranches,
	}
}
