package day19

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/geode"
)

// ErrInvalidConfig is returned by Config.Validate.
var ErrInvalidConfig = errors.New("day19: invalid config")

// Config tunes both parts. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// PartOneMinutes is the budget for the quality-level sum.
	PartOneMinutes int
	// PartTwoMinutes is the budget for the geode product.
	PartTwoMinutes int
	// PartTwoBlueprints is how many leading blueprints part two multiplies.
	PartTwoBlueprints int
	// Workers caps concurrent searches; 0 means GOMAXPROCS.
	Workers int
	// MaxBranches is handed to geode.Options.MaxBranches.
	MaxBranches int
}

// DefaultConfig returns the puzzle's own parameters.
func DefaultConfig() Config {
	return Config{
		PartOneMinutes:    24,
		PartTwoMinutes:    32,
		PartTwoBlueprints: 3,
		Workers:           0,
		MaxBranches:       geode.DefaultMaxBranches,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.PartOneMinutes <= 0:
		return fmt.Errorf("%w: PartOneMinutes must be positive (%d)", ErrInvalidConfig, c.PartOneMinutes)
	case c.PartTwoMinutes <= 0:
		return fmt.Errorf("%w: PartTwoMinutes must be positive (%d)", ErrInvalidConfig, c.PartTwoMinutes)
	case c.PartTwoBlueprints <= 0:
		return fmt.Errorf("%w: PartTwoBlueprints must be positive (%d)", ErrInvalidConfig, c.PartTwoBlueprints)
	case c.Workers < 0:
		return fmt.Errorf("%w: Workers cannot be negative (%d)", ErrInvalidConfig, c.Workers)
	case c.MaxBranches < 0:
		return fmt.Errorf("%w: MaxBranches cannot be negative (%d)", ErrInvalidConfig, c.MaxBranches)
	}

	return nil
}

// searchOptions builds the geode options for one budget.
func (c Config) searchOptions(budget int) geode.Options {
	return geode.Options{TimeBudget: budget, MaxBranches: c.MaxBranches}
}
