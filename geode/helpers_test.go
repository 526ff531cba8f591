package geode_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/blueprint"
	"github.com/katalvlaran/aoc2022/geode"
)

const (
	sampleOne = "Blueprint 1: Each ore robot costs 4 ore. Each clay robot costs 2 ore. Each obsidian robot costs 3 ore and 14 clay. Each geode robot costs 2 ore and 7 obsidian."
	sampleTwo = "Blueprint 2: Each ore robot costs 2 ore. Each clay robot costs 3 ore. Each obsidian robot costs 3 ore and 8 clay. Each geode robot costs 3 ore and 12 obsidian."

	// cheap lets every kind be built within the first few steps, so small
	// budgets already produce geodes.
	cheap = "Blueprint 7: Each ore robot costs 1 ore. Each clay robot costs 1 ore. Each obsidian robot costs 1 ore and 1 clay. Each geode robot costs 1 ore and 1 obsidian."

	// unreachable prices every robot beyond what one ore robot can gather.
	unreachable = "Blueprint 9: Each ore robot costs 50 ore. Each clay robot costs 50 ore. Each obsidian robot costs 50 ore and 50 clay. Each geode robot costs 50 ore and 50 obsidian."
)

func mustBlueprint(t testing.TB, line string) blueprint.Blueprint {
	t.Helper()
	bp, err := blueprint.ParseLine(line)
	require.NoError(t, err)

	return bp
}

func mustBlueprints(t testing.TB, lines ...string) []blueprint.Blueprint {
	t.Helper()
	bps, err := blueprint.ParseText(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)

	return bps
}

// bruteForce returns the exact optimum from every reachable state by
// exhaustive recursion without pruning. memo ends up holding every state
// reachable from the seed.
func bruteForce(bp blueprint.Blueprint, budget int) (int, map[geode.State]int) {
	memo := make(map[geode.State]int)
	var best func(s geode.State) int
	best = func(s geode.State) int {
		if v, ok := memo[s]; ok {
			return v
		}
		v := s.Resources.Get(geode.Target)
		if s.Time < budget {
			for _, n := range s.Successors(bp) {
				if w := best(n); w > v {
					v = w
				}
			}
		}
		memo[s] = v

		return v
	}

	return best(geode.Seed()), memo
}
