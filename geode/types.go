package geode

import (
	"errors"

	"github.com/katalvlaran/aoc2022/resource"
)

// Sentinel errors for Search.
var (
	// ErrNonPositiveBudget is returned when Options.TimeBudget <= 0.
	ErrNonPositiveBudget = errors.New("geode: time budget must be positive")

	// ErrOptionViolation is returned for inconsistent options (e.g. negative MaxBranches).
	ErrOptionViolation = errors.New("geode: invalid option supplied")

	// ErrNoStatesExamined signals a work list that emptied before the seed
	// was examined; it indicates a malformed seed and is never retried.
	ErrNoStatesExamined = errors.New("geode: search examined no states")
)

// Target is the resource whose final amount the search maximises.
const Target = resource.Geode

const (
	// DefaultMaxBranches is the number of successors pushed per expanded state.
	DefaultMaxBranches = 2

	// Exhaustive disables the branching limit when used as Options.MaxBranches.
	Exhaustive = 0
)

// Options configures one Search invocation.
type Options struct {
	// TimeBudget is the number of steps to simulate; must be > 0.
	TimeBudget int

	// MaxBranches caps the successors pushed per expanded state, highest
	// priority first. Exhaustive (0) pushes every successor; negative is invalid.
	MaxBranches int

	// DisableBound turns off the optimistic-bound prune (testing only).
	DisableBound bool

	// OnExamine, if set, is called for every examined (popped, unseen) state.
	OnExamine func(State)
}

// DefaultOptions returns Options for the given budget with the default
// branching limit and pruning enabled.
func DefaultOptions(budget int) Options {
	return Options{
		TimeBudget:  budget,
		MaxBranches: DefaultMaxBranches,
	}
}

// Result is the outcome of one Search.
type Result struct {
	// Max is the largest Target amount held by any examined state.
	Max int

	// Examined counts states popped for the first time.
	Examined int
	// Expanded counts examined states that were not terminal.
	Expanded int
	// Duplicates counts popped states already in the visited set.
	Duplicates int
	// Pruned counts successors rejected by the bound.
	Pruned int
	// Truncated counts successors dropped by the branching limit.
	Truncated int
}
