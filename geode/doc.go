// Package geode implements a branch-and-bound search for the robot-factory puzzle.
//
// Given a blueprint.Blueprint and a time budget, Search finds the largest
// number of geodes that can be held when the budget runs out. Every step
// the factory either builds nothing or builds one affordable robot; every
// robot yields one unit of its resource per step.
//
// Rationale (succinct):
//  1. State is a comparable value {Time, Resources, Producers}; the visited
//     set keys on it directly, so economically identical states reached by
//     different action sequences are examined once.
//  2. Transitions (State.Wait, State.Build) judge affordability on the
//     resources held at the start of the step, credit production from the
//     robots that existed before the step, then pay the cost from the
//     post-production pool. This order defines the simulated economy.
//  3. Search drives an explicit LIFO work list (no recursion). Each popped,
//     unseen state updates the running maximum; states at the budget are
//     terminal.
//  4. Bound: geodes + rem·(geodeRobots + ⌈rem/2⌉), rem = budget − time.
//     It assumes a new geode robot every second step from now on and is
//     never below the true optimum of the subtree. Successors are pushed
//     only while this bound beats the best value seen.
//  5. Branching: of the generated successors only the MaxBranches with the
//     highest priority are pushed, priority being geode, obsidian, clay,
//     ore robot, then "build nothing". The default of 2 is a heuristic: it
//     is what keeps 32-step budgets tractable, and it is NOT proven to keep
//     the optimum on every blueprint. Exhaustive lifts the limit.
//
// Complexity:
//   - Worst case exponential in the budget; pruning and the branching limit
//     make the puzzle inputs finish in well under a second per blueprint.
//   - Memory: one visited-set entry per examined state.
//
// Concurrency: a search is single-threaded and shares nothing; independent
// blueprints may be searched in parallel by the caller.
package geode
