package bitset_test

import (
	"testing"

	"github.com/arbortw/treedecomp/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet_AddRemoveTest(t *testing.T) {
	var s bitset.Set
	assert.True(t, s.IsEmpty())

	s = s.Add(3).Add(64).Add(255)
	assert.True(t, s.Test(3))
	assert.True(t, s.Test(64))
	assert.True(t, s.Test(255))
	assert.False(t, s.Test(4))
	assert.Equal(t, 3, s.Cardinality())

	s = s.Remove(64)
	assert.False(t, s.Test(64))
	assert.Equal(t, 2, s.Cardinality())
}

func TestSet_Test_OutOfRange(t *testing.T) {
	var s bitset.Set
	assert.False(t, s.Test(-1))
	assert.False(t, s.Test(bitset.MaxVertices))
}

func TestSet_UnionIntersectDifference(t *testing.T) {
	a := bitset.FromSlice([]int{1, 2, 3})
	b := bitset.FromSlice([]int{2, 3, 4})

	assert.Equal(t, []int{1, 2, 3, 4}, a.Union(b).Slice())
	assert.Equal(t, []int{2, 3}, a.Intersect(b).Slice())
	assert.Equal(t, []int{1}, a.Difference(b).Slice())
}

func TestSet_Complement(t *testing.T) {
	a := bitset.FromSlice([]int{0, 2, 4})
	got := a.Complement(5)
	assert.Equal(t, []int{1, 3}, got.Slice())
}

func TestSet_IsSubsetOf(t *testing.T) {
	sub := bitset.FromSlice([]int{1, 2})
	sup := bitset.FromSlice([]int{1, 2, 3})
	assert.True(t, sub.IsSubsetOf(sup))
	assert.False(t, sup.IsSubsetOf(sub))
}

func TestSet_NextSet_ForEach(t *testing.T) {
	s := bitset.FromSlice([]int{5, 10, 200})
	require.Equal(t, []int{5, 10, 200}, s.Slice())

	var visited []int
	s.ForEach(func(i int) bool {
		visited = append(visited, i)
		return i != 10 // stop after visiting 10
	})
	assert.Equal(t, []int{5, 10}, visited)
}

func TestSet_ValueEquality(t *testing.T) {
	a := bitset.FromSlice([]int{1, 2, 3})
	b := bitset.FromSlice([]int{3, 2, 1})
	assert.Equal(t, a, b) // comparable array: insertion order must not matter
}
