package grid_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/grid"
)

// maze: 0 is open floor, 1 is wall.
var maze = []string{
	"0001",
	"1101",
	"0000",
	"0110",
}

func open(g *grid.Grid) func(from, to grid.Position) bool {
	return func(_, to grid.Position) bool { return g.At(to) == 0 }
}

func at(target grid.Position) func(grid.Position) bool {
	return func(p grid.Position) bool { return p == target }
}

func TestShortestPath(t *testing.T) {
	g, err := grid.FromLines(maze, digits)
	require.NoError(t, err)

	res, err := g.ShortestPath(grid.Position{}, at(grid.Position{X: 0, Y: 3}), open(g))
	require.NoError(t, err)

	assert.Equal(t, 7, res.Steps)
	assert.Equal(t, grid.Position{X: 0, Y: 3}, res.Goal)
	require.Len(t, res.Path, 8)
	assert.Equal(t, grid.Position{}, res.Path[0])
	assert.Equal(t, res.Goal, res.Path[7])
	for i := 1; i < len(res.Path); i++ {
		a, b := res.Path[i-1], res.Path[i]
		assert.Equal(t, 1, abs(a.X-b.X)+abs(a.Y-b.Y), "step %d is not orthogonal", i)
		assert.Equal(t, 0, g.At(b))
	}
}

func TestShortestPath_StartIsGoal(t *testing.T) {
	g, err := grid.FromLines(maze, digits)
	require.NoError(t, err)

	res, err := g.ShortestPath(grid.Position{X: 1, Y: 0}, at(grid.Position{X: 1, Y: 0}), open(g))
	require.NoError(t, err)
	assert.Zero(t, res.Steps)
	assert.Equal(t, []grid.Position{{1, 0}}, res.Path)
}

func TestShortestPath_Errors(t *testing.T) {
	g, err := grid.FromLines(maze, digits)
	require.NoError(t, err)
	anywhere := at(grid.Position{X: 3, Y: 3})

	_, err = g.ShortestPath(grid.Position{X: 9, Y: 9}, anywhere, open(g))
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = g.ShortestPath(grid.Position{}, at(grid.Position{X: 3, Y: 0}), open(g))
	assert.ErrorIs(t, err, grid.ErrNoPath, "goal is a wall")

	_, err = g.ShortestPath(grid.Position{}, anywhere, open(g), grid.WithMaxDepth(-1))
	assert.ErrorIs(t, err, grid.ErrOptionViolation)

	_, err = g.ShortestPath(grid.Position{}, anywhere, open(g), grid.WithMaxDepth(3))
	assert.ErrorIs(t, err, grid.ErrNoPath, "goal lies 6 steps away")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = g.ShortestPath(grid.Position{}, anywhere, open(g), grid.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	boom := errors.New("boom")
	_, err = g.ShortestPath(grid.Position{}, anywhere, open(g), grid.WithOnVisit(func(grid.Position, int) error { return boom }))
	assert.ErrorIs(t, err, boom)
}

func TestShortestPath_OnVisitOrder(t *testing.T) {
	g, err := grid.FromLines(maze, digits)
	require.NoError(t, err)

	var depths []int
	_, err = g.ShortestPath(grid.Position{}, at(grid.Position{X: 3, Y: 3}), open(g),
		grid.WithOnVisit(func(_ grid.Position, d int) error {
			depths = append(depths, d)
			return nil
		}))
	require.NoError(t, err)

	require.NotEmpty(t, depths)
	for i := 1; i < len(depths); i++ {
		assert.LessOrEqual(t, depths[i-1], depths[i], "BFS visits in non-decreasing depth")
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
