package day19_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/geode"
	"github.com/katalvlaran/aoc2022/puzzle"
	"github.com/katalvlaran/aoc2022/puzzle/day19"
)

var sample = []string{
	"Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian.",
	"Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian.",
}

func TestDefaultConfig(t *testing.T) {
	cfg := day19.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 24, cfg.PartOneMinutes)
	assert.Equal(t, 32, cfg.PartTwoMinutes)
	assert.Equal(t, 3, cfg.PartTwoBlueprints)
	assert.Equal(t, geode.DefaultMaxBranches, cfg.MaxBranches)
}

func TestConfig_Validate(t *testing.T) {
	mutations := map[string]func(*day19.Config){
		"part one minutes": func(c *day19.Config) { c.PartOneMinutes = 0 },
		"part two minutes": func(c *day19.Config) { c.PartTwoMinutes = -1 },
		"blueprints":       func(c *day19.Config) { c.PartTwoBlueprints = 0 },
		"workers":          func(c *day19.Config) { c.Workers = -2 },
		"branches":         func(c *day19.Config) { c.MaxBranches = -1 },
	}
	for name, mutate := range mutations {
		t.Run(name, func(t *testing.T) {
			cfg := day19.DefaultConfig()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), day19.ErrInvalidConfig)

			_, err := day19.New(sample, cfg)
			assert.ErrorIs(t, err, day19.ErrInvalidConfig)
		})
	}
}

func TestNew(t *testing.T) {
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)
	require.Len(t, d.Blueprints, 2)
	assert.Equal(t, 2, d.Blueprints[1].ID)

	_, err = day19.New([]string{"Blueprint one: Each ore robot costs 4 ore."}, day19.DefaultConfig())
	assert.ErrorIs(t, err, blueprint.ErrSyntax)

	_, err = day19.New(nil, day19.DefaultConfig())
	assert.ErrorIs(t, err, blueprint.ErrNoBlueprints)
}

func TestPartOne(t *testing.T) {
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)

	got, err := d.PartOne(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Unsigned(33), got)
}

func TestPartTwo(t *testing.T) {
	if testing.Short() {
		t.Skip("32-minute searches skipped in short mode")
	}
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)

	got, err := d.PartTwo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Unsigned(56*62), got)
}

func TestPartTwo_LimitsBlueprints(t *testing.T) {
	cfg := day19.DefaultConfig()
	cfg.PartTwoMinutes = 24
	cfg.PartTwoBlueprints = 1
	d, err := day19.New(sample, cfg)
	require.NoError(t, err)

	got, err := d.PartTwo(context.Background())
	require.NoError(t, err)
	assert.Equal(t, puzzle.Unsigned(9), got, "only blueprint 1 is multiplied")
}

func TestEvaluateAll(t *testing.T) {
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 4} {
		cfg := day19.DefaultConfig()
		cfg.Workers = workers
		evals, err := day19.EvaluateAll(context.Background(), d.Blueprints, 24, cfg)
		require.NoError(t, err)
		require.Len(t, evals, 2)

		assert.Equal(t, 1, evals[0].Blueprint.ID, "results keep input order")
		assert.Equal(t, 9, evals[0].Result.Max)
		assert.Equal(t, 9, evals[0].Quality())
		assert.Equal(t, 12, evals[1].Result.Max)
		assert.Equal(t, 24, evals[1].Quality())
		assert.Equal(t, 24, evals[1].Minutes)
		assert.Equal(t, 33, day19.QualitySum(evals))
		assert.Equal(t, 108, day19.GeodeProduct(evals))
	}
}

func TestEvaluateAll_Errors(t *testing.T) {
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)

	_, err = day19.EvaluateAll(context.Background(), d.Blueprints, 0, day19.DefaultConfig())
	assert.ErrorIs(t, err, geode.ErrNonPositiveBudget)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = day19.EvaluateAll(ctx, d.Blueprints, 24, day19.DefaultConfig())
	assert.True(t, errors.Is(err, context.Canceled))

	evals, err := day19.EvaluateAll(context.Background(), nil, 24, day19.DefaultConfig())
	require.NoError(t, err)
	assert.Empty(t, evals)
	assert.Equal(t, 1, day19.GeodeProduct(evals))
}

func TestSummarize(t *testing.T) {
	d, err := day19.New(sample, day19.DefaultConfig())
	require.NoError(t, err)
	evals, err := day19.EvaluateAll(context.Background(), d.Blueprints, 24, day19.DefaultConfig())
	require.NoError(t, err)

	s := day19.Summarize(evals, 24, day19.DefaultConfig())
	assert.Equal(t, 24, s.Minutes)
	assert.Equal(t, geode.DefaultMaxBranches, s.MaxBranches)
	assert.Equal(t, 33, s.QualitySum)
	assert.Equal(t, 108, s.GeodeProduct)
	require.Len(t, s.Blueprints, 2)
	assert.Equal(t, day19.BlueprintSummary{
		ID:         2,
		MaxGeodes:  12,
		Quality:    24,
		Examined:   evals[1].Result.Examined,
		Pruned:     evals[1].Result.Pruned,
		ElapsedMS:  s.Blueprints[1].ElapsedMS,
		MaxOreCost: 3,
	}, s.Blueprints[1])
	assert.Equal(t, 4, s.Blueprints[0].MaxOreCost)
}
