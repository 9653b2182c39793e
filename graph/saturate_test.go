package graph_test

import (
	"testing"

	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSaturate_Idempotent checks property 3: saturate(saturate(S)) ==
// saturate(S) and N(saturate(S)) ⊆ N(S), over the path, cycle, and
// disjoint-triangles fixtures used across the engine's test suite.
func TestSaturate_Idempotent(t *testing.T) {
	cases := []struct {
		name  string
		n     int
		edges [][2]int
		seed  []int
	}{
		{"path4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}}, []int{0}},
		{"cycle4", 4, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}, []int{0}},
		{"two-triangles", 6, [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}, []int{0}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graph.New(tc.n, tc.edges)
			require.NoError(t, err)

			s := bitset.FromSlice(tc.seed)
			s1 := g.Saturate(s)
			s2 := g.Saturate(s1)

			assert.Equal(t, s1, s2, "saturate must be idempotent")
			assert.True(t, g.ExteriorBorder(s1).IsSubsetOf(g.ExteriorBorder(s)),
				"N(saturate(S)) must be a subset of N(S)")
			assert.True(t, s.IsSubsetOf(s1), "saturate must only grow S")
		})
	}
}

func TestSaturate_PathAbsorbsBeyondBorder(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	got := g.Saturate(bitset.FromSlice([]int{0}))
	want := bitset.FromSlice([]int{0, 2, 3})
	assert.Equal(t, want, got)
}

func TestAbsorbable_NegativeOneWhenSaturated(t *testing.T) {
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)

	s := g.Saturate(bitset.FromSlice([]int{0}))
	assert.Equal(t, -1, g.Absorbable(s))
}

func TestAbsorbable_FindsSmallestVertex(t *testing.T) {
	g, err := graph.New(6, [][2]int{{0, 1}, {2, 3}, {4, 5}})
	require.NoError(t, err)

	// S = {} has an empty border, so every component of V is absorbable;
	// the smallest vertex id is 0.
	assert.Equal(t, 0, g.Absorbable(bitset.Set{}))
}
