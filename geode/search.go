package geode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/resource"
)

// searchEngine holds the policy, the work list and the running result of
// one invocation. Nothing in it outlives Search.
type searchEngine struct {
	// Policy
	bp        blueprint.Blueprint
	budget    int
	branches  int
	useBound  bool
	onExamine func(State)

	// Work list and de-duplication
	stack   []State
	visited map[State]struct{}

	// successor scratch, reused across expansions
	scratch []State

	res Result
}

// initialStackCap sizes the work list up front. Its depth grows with the
// budget, so append takes over for long budgets.
const initialStackCap = 64

// Search runs the branch-and-bound over bp and returns the best Target
// amount together with search statistics.
//
// Errors:
//   - ErrNonPositiveBudget if opts.TimeBudget <= 0.
//   - ErrOptionViolation if opts.MaxBranches < 0.
//   - ErrNoStatesExamined if the work list emptied without examining a state.
func Search(bp blueprint.Blueprint, opts Options) (Result, error) {
	if opts.TimeBudget <= 0 {
		return Result{}, fmt.Errorf("%w: %d", ErrNonPositiveBudget, opts.TimeBudget)
	}
	if opts.MaxBranches < 0 {
		return Result{}, fmt.Errorf("%w: MaxBranches cannot be negative (%d)", ErrOptionViolation, opts.MaxBranches)
	}

	e := searchEngine{
		bp:        bp,
		budget:    opts.TimeBudget,
		branches:  opts.MaxBranches,
		useBound:  !opts.DisableBound,
		onExamine: opts.OnExamine,
		stack:     make([]State, 0, initialStackCap),
		visited:   make(map[State]struct{}),
		scratch:   make([]State, 0, 1+resource.NumKinds),
	}
	e.run(Seed())

	if e.res.Examined == 0 {
		return Result{}, ErrNoStatesExamined
	}

	return e.res, nil
}

// MaxGeodes is Search with DefaultOptions, returning only the maximum.
func MaxGeodes(bp blueprint.Blueprint, budget int) (int, error) {
	res, err := Search(bp, DefaultOptions(budget))
	if err != nil {
		return 0, err
	}

	return res.Max, nil
}

// run drains the work list starting from seed.
func (e *searchEngine) run(seed State) {
	e.stack = append(e.stack, seed)
	for len(e.stack) > 0 {
		s := e.stack[len(e.stack)-1]
		e.stack = e.stack[:len(e.stack)-1]

		if _, seen := e.visited[s]; seen {
			e.res.Duplicates++
			continue
		}
		e.visited[s] = struct{}{}
		e.examine(s)

		if s.Time >= e.budget {
			continue
		}
		e.expand(s)
	}
}

// examine records s in the running maximum.
func (e *searchEngine) examine(s State) {
	e.res.Examined++
	if v := s.Resources.Get(Target); v > e.res.Max {
		e.res.Max = v
	}
	if e.onExamine != nil {
		e.onExamine(s)
	}
}

// expand pushes the highest-priority successors of s whose subtree can
// still beat the incumbent. The bound depends only on s, so it is computed
// once for all successors.
func (e *searchEngine) expand(s State) {
	e.res.Expanded++
	e.scratch = s.appendSuccessors(e.scratch[:0], e.bp)

	bound := math.MaxInt
	if e.useBound {
		bound = OptimisticBound(s, e.budget)
	}

	limit := len(e.scratch)
	if e.branches != Exhaustive && e.branches < limit {
		e.res.Truncated += limit - e.branches
		limit = e.branches
	}

	// Generation order is "nothing", ore, clay, obsidian, geode; priority
	// is the reverse, so walk from the back.
	for i := 0; i < limit; i++ {
		if bound <= e.res.Max {
			e.res.Pruned += limit - i
			return
		}
		e.stack = append(e.stack, e.scratch[len(e.scratch)-1-i])
	}
}
