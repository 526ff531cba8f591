package grid

import (
	"context"
	"fmt"
)

// queueItem pairs a cell slot with its BFS depth.
type queueItem struct {
	idx   int
	depth int
}

// walker encapsulates mutable ShortestPath state.
type walker struct {
	g       *Grid
	opts    PathOptions
	ctx     context.Context
	isGoal  func(Position) bool
	canStep func(from, to Position) bool
	queue   []queueItem
	prev    []int // predecessor slot, -1 for the start and unseen cells
	seen    []bool
}

// ShortestPath runs breadth-first search from `from` until a cell satisfying
// isGoal is dequeued. A move from a cell to a neighbour is taken only when
// canStep(from, to) holds. Returns the fewest-steps path to the first goal
// cell reached.
//
// Errors: ErrOutOfBounds for a start outside the grid, ErrOptionViolation
// for bad options, ErrNoPath when no goal is reachable (within MaxDepth),
// the context error on cancellation, or a wrapped OnVisit error.
func (g *Grid) ShortestPath(from Position, isGoal func(Position) bool, canStep func(from, to Position) bool, opts ...Option) (PathResult, error) {
	o := DefaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return PathResult{}, o.err
	}
	if !g.InBounds(from) {
		return PathResult{}, fmt.Errorf("%w: start %s", ErrOutOfBounds, from)
	}

	n := len(g.cells)
	w := &walker{
		g:       g,
		opts:    o,
		ctx:     o.Ctx,
		isGoal:  isGoal,
		canStep: canStep,
		queue:   make([]queueItem, 0, n),
		prev:    make([]int, n),
		seen:    make([]bool, n),
	}
	for i := range w.prev {
		w.prev[i] = -1
	}

	start := g.index(from)
	w.seen[start] = true
	w.queue = append(w.queue, queueItem{idx: start})

	return w.loop()
}

// loop processes the queue until a goal is found, it empties, or an error occurs.
func (w *walker) loop() (PathResult, error) {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return PathResult{}, w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		p := w.g.position(item.idx)

		if err := w.opts.OnVisit(p, item.depth); err != nil {
			return PathResult{}, fmt.Errorf("grid: OnVisit error at %s: %w", p, err)
		}
		if w.isGoal(p) {
			return w.result(item), nil
		}
		w.enqueueNeighbours(p, item.depth)
	}

	return PathResult{}, ErrNoPath
}

// enqueueNeighbours adds every unseen, legal neighbour of p within MaxDepth.
func (w *walker) enqueueNeighbours(p Position, depth int) {
	next := depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	from := w.g.index(p)
	for _, q := range w.g.Neighbours(p) {
		i := w.g.index(q)
		if w.seen[i] || !w.canStep(p, q) {
			continue
		}
		w.seen[i] = true
		w.prev[i] = from
		w.queue = append(w.queue, queueItem{idx: i, depth: next})
	}
}

// result reconstructs the path ending at item.
func (w *walker) result(item queueItem) PathResult {
	path := make([]Position, item.depth+1)
	for at, k := item.idx, item.depth; at >= 0; at, k = w.prev[at], k-1 {
		path[k] = w.g.position(at)
	}

	return PathResult{Steps: item.depth, Goal: path[item.depth], Path: path}
}
