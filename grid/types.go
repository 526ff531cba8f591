package grid

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for grid construction and search.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrOutOfBounds indicates a start position outside the grid.
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrNoPath indicates no goal cell is reachable from the start.
	ErrNoPath = errors.New("grid: no path to a goal cell")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("grid: invalid option supplied")
)

// Connectivity selects neighbour connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Position addresses one cell.
type Position struct {
	X, Y int
}

// String renders p as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Option configures ShortestPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*PathOptions)

// PathOptions holds parameters and callbacks for ShortestPath.
type PathOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for each dequeued cell with its distance from the
	// start. Returning an error aborts the search.
	OnVisit func(p Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	MaxDepth int

	err error
}

// DefaultPathOptions returns PathOptions with a background context,
// no depth limit and a no-op OnVisit.
func DefaultPathOptions() PathOptions {
	return PathOptions{
		Ctx:     context.Background(),
		OnVisit: func(Position, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *PathOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on every visited cell.
func WithOnVisit(fn func(p Position, depth int) error) Option {
	return func(o *PathOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the search to d steps.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *PathOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// PathResult is the outcome of a successful ShortestPath.
type PathResult struct {
	// Steps is the number of moves from the start to Goal.
	Steps int
	// Goal is the first goal cell reached.
	Goal Position
	// Path lists the cells from the start to Goal, both included.
	Path []Position
}
