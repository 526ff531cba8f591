package day19

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/geode"
)

// Evaluation is the search outcome for one blueprint.
type Evaluation struct {
	Blueprint blueprint.Blueprint
	Minutes   int
	Result    geode.Result
	Elapsed   time.Duration
}

// Quality is the blueprint ID times its best geode count.
func (e Evaluation) Quality() int {
	return e.Blueprint.ID * e.Result.Max
}

// EvaluateAll searches every blueprint at the given budget, running up to
// cfg.Workers searches at once. Results keep the order of bps. The first
// failing search cancels the rest; searches already running finish first.
func EvaluateAll(ctx context.Context, bps []blueprint.Blueprint, minutes int, cfg Config) ([]Evaluation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	workers := cfg.Workers
	if workers == 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	out := make([]Evaluation, len(bps))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, bp := range bps {
		i, bp := i, bp
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			res, err := geode.Search(bp, cfg.searchOptions(minutes))
			if err != nil {
				return fmt.Errorf("day19: blueprint %d: %w", bp.ID, err)
			}
			out[i] = Evaluation{Blueprint: bp, Minutes: minutes, Result: res, Elapsed: time.Since(start)}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// QualitySum adds up Quality over evals.
func QualitySum(evals []Evaluation) int {
	sum := 0
	for _, e := range evals {
		sum += e.Quality()
	}

	return sum
}

// GeodeProduct multiplies the best geode counts of evals.
func GeodeProduct(evals []Evaluation) int {
	product := 1
	for _, e := range evals {
		product *= e.Result.Max
	}

	return product
}
