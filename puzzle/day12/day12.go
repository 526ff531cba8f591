// Package day12 solves the hill-climbing puzzle: fewest steps across a
// heightmap where each step may climb at most one level.
package day12

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/grid"
	"github.com/katalvlaran/aoc2022/puzzle"
)

var (
	// ErrBadCell indicates a character other than a-z, S or E.
	ErrBadCell = errors.New("day12: invalid heightmap cell")
	// ErrMissingMarker indicates a map without exactly one S and one E.
	ErrMissingMarker = errors.New("day12: heightmap needs exactly one S and one E")
)

// Day is a parsed heightmap with heights 0 (a) through 25 (z).
type Day struct {
	heights *grid.Grid
	start   grid.Position
	target  grid.Position
}

// Factory adapts New to puzzle.Factory.
func Factory(lines []string) (puzzle.Day, error) {
	return New(lines)
}

// New parses the heightmap. S has height a and E has height z.
func New(lines []string) (*Day, error) {
	d := &Day{}
	var starts, targets int
	g, err := grid.FromLines(lines, func(r rune, p grid.Position) (int, error) {
		switch {
		case r == 'S':
			d.start = p
			starts++
			return 0, nil
		case r == 'E':
			d.target = p
			targets++
			return 'z' - 'a', nil
		case r >= 'a' && r <= 'z':
			return int(r - 'a'), nil
		default:
			return 0, fmt.Errorf("%w: %q at %s", ErrBadCell, r, p)
		}
	})
	if err != nil {
		return nil, err
	}
	if starts != 1 || targets != 1 {
		return nil, fmt.Errorf("%w: found %d S and %d E", ErrMissingMarker, starts, targets)
	}
	d.heights = g

	return d, nil
}

// PartOne returns the fewest steps from S to E.
func (d *Day) PartOne(ctx context.Context) (puzzle.Solution, error) {
	res, err := d.heights.ShortestPath(d.start,
		func(p grid.Position) bool { return p == d.target },
		d.climbable,
		grid.WithContext(ctx))
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("day12: climb from %s: %w", d.start, err)
	}

	return puzzle.Unsigned(uint64(res.Steps)), nil
}

// PartTwo returns the fewest steps to E from any lowest cell. It searches
// backwards from E, so one BFS covers every candidate start.
func (d *Day) PartTwo(ctx context.Context) (puzzle.Solution, error) {
	res, err := d.heights.ShortestPath(d.target,
		func(p grid.Position) bool { return d.heights.At(p) == 0 },
		func(from, to grid.Position) bool { return d.climbable(to, from) },
		grid.WithContext(ctx))
	if err != nil {
		return puzzle.Solution{}, fmt.Errorf("day12: descend from %s: %w", d.target, err)
	}

	return puzzle.Unsigned(uint64(res.Steps)), nil
}

// climbable reports whether a step from one cell to the next climbs at
// most one level. Any descent is allowed.
func (d *Day) climbable(from, to grid.Position) bool {
	return d.heights.At(to) <= d.heights.At(from)+1
}
