package geode

import (
	"fmt"
	"math"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/resource"
)

// State is one search node. It is a value: transitions return a new State.
// Producers[k] is the number of robots yielding resource k.
type State struct {
	Time      int
	Resources resource.Vector
	Producers resource.Vector
}

// Seed returns the initial state: time 0, one ore robot, nothing in stock.
func Seed() State {
	return State{Producers: resource.Unit(resource.Ore)}
}

// Wait advances one step without building: every robot collects one unit.
func (s State) Wait() State {
	return State{
		Time:      s.Time + 1,
		Resources: s.Resources.AddAll(s.Producers),
		Producers: s.Producers,
	}
}

// Build advances one step while commissioning a robot of kind k.
// It reports false, and returns s unchanged, when the cost of k is not
// covered by the resources held at the start of the step. The new robot
// does not collect during the step it is built in.
func (s State) Build(bp blueprint.Blueprint, k resource.Kind) (State, bool) {
	cost := bp.CostOf(k)
	if !s.Resources.Contains(cost) {
		return s, false
	}
	n := s.Wait()
	n.Resources = n.Resources.RemoveAll(cost)
	n.Producers = n.Producers.Add(k, 1)

	return n, true
}

// Successors returns the states reachable in one step: "build nothing"
// first, then one Build per affordable kind in ascending kind order.
func (s State) Successors(bp blueprint.Blueprint) []State {
	return s.appendSuccessors(make([]State, 0, 1+resource.NumKinds), bp)
}

// appendSuccessors is Successors without the allocation.
func (s State) appendSuccessors(dst []State, bp blueprint.Blueprint) []State {
	dst = append(dst, s.Wait())
	for _, k := range resource.Kinds() {
		if n, ok := s.Build(bp, k); ok {
			dst = append(dst, n)
		}
	}

	return dst
}

// String renders the state for debugging.
func (s State) String() string {
	return fmt.Sprintf("t=%d stock[%s] robots[%s]", s.Time, s.Resources, s.Producers)
}

// OptimisticBound returns an upper bound on the Target amount reachable
// from s within budget: current amount plus, for each remaining step, the
// current robots and one extra robot for every two steps left.
func OptimisticBound(s State, budget int) int {
	rem := budget - s.Time
	if rem <= 0 {
		return s.Resources.Get(Target)
	}

	have := s.Resources.Get(Target)
	perMinute := s.Producers.Get(Target) + (rem+1)/2
	if perMinute > (math.MaxInt-have)/rem {
		return math.MaxInt
	}

	return have + rem*perMinute
}
