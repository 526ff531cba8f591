package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/resource"
)

func TestParseKind(t *testing.T) {
	cases := map[string]resource.Kind{
		"ore":       resource.Ore,
		"Clay":      resource.Clay,
		" obsidian": resource.Obsidian,
		"GEODE":     resource.Geode,
	}
	for in, want := range cases {
		got, err := resource.ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := resource.ParseKind("diamond")
	assert.ErrorIs(t, err, resource.ErrUnknownKind)
}

func TestKind_StringAndValid(t *testing.T) {
	assert.Equal(t, "obsidian", resource.Obsidian.String())
	assert.True(t, resource.Geode.Valid())
	assert.False(t, resource.Kind(resource.NumKinds).Valid())
	assert.Equal(t, "kind(7)", resource.Kind(7).String())
}

func TestKinds_Ascending(t *testing.T) {
	kinds := resource.Kinds()
	for i := 1; i < len(kinds); i++ {
		assert.Less(t, kinds[i-1], kinds[i])
	}
	assert.Equal(t, resource.Ore, kinds[0])
	assert.Equal(t, resource.Geode, kinds[resource.NumKinds-1])
}

func TestVector_GetSetAdd(t *testing.T) {
	var v resource.Vector
	w := v.Set(resource.Clay, 5).Add(resource.Clay, 2).Add(resource.Geode, 1)

	assert.Equal(t, 7, w.Get(resource.Clay))
	assert.Equal(t, 1, w.Get(resource.Geode))
	assert.True(t, v.IsZero(), "receiver must not be mutated")
}

func TestVector_Contains(t *testing.T) {
	stock := resource.Vector{4, 14, 0, 0}

	assert.True(t, stock.Contains(resource.Vector{3, 14, 0, 0}))
	assert.True(t, stock.Contains(resource.Vector{}))
	assert.True(t, stock.Contains(stock))
	assert.False(t, stock.Contains(resource.Vector{2, 0, 7, 0}))
	assert.False(t, stock.Contains(resource.Vector{5, 0, 0, 0}))
}

func TestVector_AddAllRemoveAll(t *testing.T) {
	a := resource.Vector{4, 14, 2, 1}
	b := resource.Vector{3, 14, 0, 0}

	require.True(t, a.Contains(b))
	diff := a.RemoveAll(b)
	assert.Equal(t, resource.Vector{1, 0, 2, 1}, diff)
	assert.Equal(t, a, diff.AddAll(b))
	assert.Equal(t, resource.Vector{4, 14, 2, 1}, a)
}

func TestUnit(t *testing.T) {
	assert.Equal(t, resource.Vector{0, 0, 1, 0}, resource.Unit(resource.Obsidian))
}

func TestVector_String(t *testing.T) {
	assert.Equal(t, "ore=1 clay=2 obsidian=3 geode=4", resource.Vector{1, 2, 3, 4}.String())
}

func TestVector_RemoveAllPanicsWhenShort(t *testing.T) {
	a := resource.Vector{1, 0, 0, 0}
	require.False(t, a.Contains(resource.Vector{2, 0, 0, 0}))
	assert.Panics(t, func() { a.RemoveAll(resource.Vector{2, 0, 0, 0}) })
}
