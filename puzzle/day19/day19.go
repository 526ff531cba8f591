// Package day19 solves the geode-cracking robot factory puzzle on top of
// package geode: part one sums quality levels over every blueprint, part
// two multiplies the best geode counts of the first few blueprints under a
// longer budget. Blueprints are searched in parallel.
package day19

import (
	"context"
	"strings"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/puzzle"
)

// Day holds the parsed blueprints.
type Day struct {
	Blueprints []blueprint.Blueprint

	cfg Config
}

// Factory returns a puzzle.Factory that builds days with cfg.
func Factory(cfg Config) puzzle.Factory {
	return func(lines []string) (puzzle.Day, error) {
		return New(lines, cfg)
	}
}

// New parses lines as blueprint text and validates cfg.
func New(lines []string, cfg Config) (*Day, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bps, err := blueprint.ParseText(strings.NewReader(strings.Join(lines, "\n")))
	if err != nil {
		return nil, err
	}

	return &Day{Blueprints: bps, cfg: cfg}, nil
}

// PartOne returns the sum of quality levels at PartOneMinutes.
func (d *Day) PartOne(ctx context.Context) (puzzle.Solution, error) {
	evals, err := EvaluateAll(ctx, d.Blueprints, d.cfg.PartOneMinutes, d.cfg)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Unsigned(uint64(QualitySum(evals))), nil
}

// PartTwo returns the product of the best geode counts of the first
// PartTwoBlueprints blueprints (or all, if fewer) at PartTwoMinutes.
func (d *Day) PartTwo(ctx context.Context) (puzzle.Solution, error) {
	bps := d.Blueprints
	if len(bps) > d.cfg.PartTwoBlueprints {
		bps = bps[:d.cfg.PartTwoBlueprints]
	}
	evals, err := EvaluateAll(ctx, bps, d.cfg.PartTwoMinutes, d.cfg)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.Unsigned(uint64(GeodeProduct(evals))), nil
}
