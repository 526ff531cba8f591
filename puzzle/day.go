package puzzle

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Sentinel errors for the registry.
var (
	// ErrInvalidDay indicates a day outside 1..25 or a nil factory.
	ErrInvalidDay = errors.New("puzzle: day must be in 1..25 with a factory")
	// ErrDuplicateDay indicates a second registration for the same day.
	ErrDuplicateDay = errors.New("puzzle: day already registered")
	// ErrUnknownDay indicates a day with no registered factory.
	ErrUnknownDay = errors.New("puzzle: day not registered")
)

// LastDay is the highest day number a calendar has.
const LastDay = 25

// Day answers both parts of one day's puzzle for a fixed input.
type Day interface {
	PartOne(ctx context.Context) (Solution, error)
	PartTwo(ctx context.Context) (Solution, error)
}

// Factory builds a Day from its input lines.
type Factory func(lines []string) (Day, error)

// Registry maps day numbers to factories. The zero value is not usable;
// call NewRegistry.
type Registry struct {
	factories map[int]Factory
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[int]Factory)}
}

// Register adds f as the factory for day.
func (r *Registry) Register(day int, f Factory) error {
	if day < 1 || day > LastDay || f == nil {
		return fmt.Errorf("%w: %d", ErrInvalidDay, day)
	}
	if _, ok := r.factories[day]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateDay, day)
	}
	r.factories[day] = f

	return nil
}

// Days returns the registered day numbers in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.factories))
	for d := range r.factories {
		days = append(days, d)
	}
	sort.Ints(days)

	return days
}

// Solve builds day from lines and runs both parts in order, timing each.
// An error from the factory or either part aborts the solve; ctx is
// handed to the parts unchanged.
func (r *Registry) Solve(ctx context.Context, day int, lines []string) (Report, error) {
	f, ok := r.factories[day]
	if !ok {
		return Report{}, fmt.Errorf("%w: %d", ErrUnknownDay, day)
	}
	d, err := f(lines)
	if err != nil {
		return Report{}, fmt.Errorf("puzzle: day %d input: %w", day, err)
	}

	rep := Report{Day: day, RunID: uuid.New()}
	if rep.PartOne, err = timePart(ctx, d.PartOne); err != nil {
		return rep, fmt.Errorf("puzzle: day %d part one: %w", day, err)
	}
	if rep.PartTwo, err = timePart(ctx, d.PartTwo); err != nil {
		return rep, fmt.Errorf("puzzle: day %d part two: %w", day, err)
	}

	return rep, nil
}

// timePart runs one part and measures its wall-clock duration.
func timePart(ctx context.Context, part func(context.Context) (Solution, error)) (PartReport, error) {
	start := time.Now()
	sol, err := part(ctx)

	return PartReport{Solution: sol, Elapsed: time.Since(start)}, err
}
