package geode_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/geode"
	"github.com/katalvlaran/aoc2022/resource"
)

func TestSeed(t *testing.T) {
	s := geode.Seed()
	assert.Equal(t, 0, s.Time)
	assert.True(t, s.Resources.IsZero())
	assert.Equal(t, resource.Vector{1, 0, 0, 0}, s.Producers)
}

func TestState_Wait(t *testing.T) {
	s := geode.State{Time: 3, Resources: resource.Vector{1, 2, 0, 0}, Producers: resource.Vector{2, 1, 0, 0}}
	n := s.Wait()

	assert.Equal(t, 4, n.Time)
	assert.Equal(t, resource.Vector{3, 3, 0, 0}, n.Resources)
	assert.Equal(t, s.Producers, n.Producers)
	// s is a value; the transition left it untouched.
	assert.Equal(t, 3, s.Time)
}

func TestState_Build(t *testing.T) {
	bp := mustBlueprint(t, sampleOne)
	s := geode.State{Time: 4, Resources: resource.Vector{4, 0, 0, 0}, Producers: resource.Vector{1, 0, 0, 0}}

	n, ok := s.Build(bp, resource.Ore)
	require.True(t, ok)
	assert.Equal(t, 5, n.Time)
	// paid 4, then the pre-existing robot collected 1.
	assert.Equal(t, resource.Vector{1, 0, 0, 0}, n.Resources)
	assert.Equal(t, resource.Vector{2, 0, 0, 0}, n.Producers)

	_, ok = s.Build(bp, resource.Obsidian)
	assert.False(t, ok, "obsidian robot needs clay")
}

func TestState_BuildJudgesAffordabilityBeforeProduction(t *testing.T) {
	bp := mustBlueprint(t, sampleOne)
	// 3 ore in stock plus 1 collected this step would cover 4, but the
	// cost is checked against the stock at the start of the step.
	s := geode.State{Time: 3, Resources: resource.Vector{3, 0, 0, 0}, Producers: resource.Vector{1, 0, 0, 0}}

	_, ok := s.Build(bp, resource.Ore)
	assert.False(t, ok)
}

func TestState_Successors(t *testing.T) {
	bp := mustBlueprint(t, sampleOne)

	succ := geode.Seed().Successors(bp)
	require.Len(t, succ, 1, "nothing is affordable at the start")
	assert.Equal(t, geode.Seed().Wait(), succ[0])

	s := geode.State{Time: 10, Resources: resource.Vector{4, 14, 7, 0}, Producers: resource.Vector{1, 3, 1, 0}}
	succ = s.Successors(bp)
	require.Len(t, succ, 5)
	assert.Equal(t, s.Wait(), succ[0], "build nothing comes first")
	for i, k := range resource.Kinds() {
		assert.Equal(t, 1, succ[i+1].Producers.Get(k)-s.Producers.Get(k), "successor %d builds %s", i+1, k)
	}
}

func TestOptimisticBound(t *testing.T) {
	s := geode.State{Time: 20, Resources: resource.Vector{0, 0, 0, 3}, Producers: resource.Vector{1, 1, 1, 2}}

	// rem = 4: 3 + 4*(2 + 2)
	assert.Equal(t, 19, geode.OptimisticBound(s, 24))
	// rem = 5: 3 + 5*(2 + 3)
	assert.Equal(t, 28, geode.OptimisticBound(s, 25))
	// no time left: only what is held
	assert.Equal(t, 3, geode.OptimisticBound(s, 20))
}

func TestOptimisticBound_SaturatesOnHugeBudgets(t *testing.T) {
	assert.Equal(t, math.MaxInt, geode.OptimisticBound(geode.Seed(), math.MaxInt))
	assert.Equal(t, math.MaxInt, geode.OptimisticBound(geode.Seed(), math.MaxInt/2+1))
	// largest budget whose bound still fits
	assert.Equal(t, 3037000499*1518500250, geode.OptimisticBound(geode.Seed(), 3037000499))
}

func TestOptimisticBound_NeverBelowOptimum(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		budget int
	}{
		{"cheap", cheap, 9},
		{"sample one", sampleOne, 12},
		{"sample two", sampleTwo, 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			bp := mustBlueprint(t, tc.line)
			_, exact := bruteForce(bp, tc.budget)
			require.NotEmpty(t, exact)

			for s, v := range exact {
				if b := geode.OptimisticBound(s, tc.budget); b < v {
					t.Fatalf("bound %d below optimum %d at %s", b, v, s)
				}
			}
		})
	}
}
