package puzzle_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/puzzle"
)

// countDay answers the number of lines and the longest line.
type countDay struct {
	lines []string
	fail  error
}

func (d countDay) PartOne(context.Context) (puzzle.Solution, error) {
	return puzzle.Unsigned(uint64(len(d.lines))), nil
}

func (d countDay) PartTwo(context.Context) (puzzle.Solution, error) {
	if d.fail != nil {
		return puzzle.Solution{}, d.fail
	}
	longest := ""
	for _, l := range d.lines {
		if len(l) > len(longest) {
			longest = l
		}
	}

	return puzzle.Text(longest), nil
}

func countFactory(lines []string) (puzzle.Day, error) {
	return countDay{lines: lines}, nil
}

func TestRegistry_Register(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(19, countFactory))
	require.NoError(t, r.Register(1, countFactory))

	assert.ErrorIs(t, r.Register(19, countFactory), puzzle.ErrDuplicateDay)
	assert.ErrorIs(t, r.Register(0, countFactory), puzzle.ErrInvalidDay)
	assert.ErrorIs(t, r.Register(26, countFactory), puzzle.ErrInvalidDay)
	assert.ErrorIs(t, r.Register(5, nil), puzzle.ErrInvalidDay)

	assert.Equal(t, []int{1, 19}, r.Days())
}

func TestRegistry_Solve(t *testing.T) {
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(3, countFactory))

	rep, err := r.Solve(context.Background(), 3, []string{"ab", "abcd", "a"})
	require.NoError(t, err)

	assert.Equal(t, 3, rep.Day)
	assert.NotEqual(t, uuid.Nil, rep.RunID)
	assert.Equal(t, puzzle.Unsigned(3), rep.PartOne.Solution)
	assert.Equal(t, puzzle.Text("abcd"), rep.PartTwo.Solution)
	assert.GreaterOrEqual(t, rep.PartOne.Elapsed, time.Duration(0))

	out := rep.String()
	assert.True(t, strings.HasPrefix(out, "Part 1: 3 ("), out)
	assert.Contains(t, out, "Part 2: abcd (")
	assert.Contains(t, out, " seconds)\n")

	again, err := r.Solve(context.Background(), 3, nil)
	require.NoError(t, err)
	assert.NotEqual(t, rep.RunID, again.RunID, "every solve gets its own run ID")
}

func TestRegistry_SolveErrors(t *testing.T) {
	boom := errors.New("boom")
	r := puzzle.NewRegistry()
	require.NoError(t, r.Register(1, func([]string) (puzzle.Day, error) { return nil, boom }))
	require.NoError(t, r.Register(2, func(lines []string) (puzzle.Day, error) {
		return countDay{lines: lines, fail: boom}, nil
	}))

	_, err := r.Solve(context.Background(), 9, nil)
	assert.ErrorIs(t, err, puzzle.ErrUnknownDay)

	_, err = r.Solve(context.Background(), 1, nil)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "input")

	rep, err := r.Solve(context.Background(), 2, []string{"x"})
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "part two")
	assert.Equal(t, puzzle.Unsigned(1), rep.PartOne.Solution, "part one still reported")
}
