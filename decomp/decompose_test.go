package decomp_test

import (
	"testing"

	"github.com/arbortw/treedecomp/decomp"
	"github.com/arbortw/treedecomp/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validateDecomposition checks that every vertex appears somewhere, every
// edge is covered by some bag, and every bag respects the reported width.
// It does not check that the bags holding a vertex form a connected subtree.
func validateDecomposition(t *testing.T, edges [][2]int, labels []string, d *decomp.Decomposition) {
	t.Helper()

	covered := make(map[string]bool)
	for _, bag := range d.Bags {
		assert.LessOrEqual(t, len(bag.Vertices), d.Width+1, "bag %d exceeds width+1", bag.ID)
		for _, v := range bag.Vertices {
			covered[v] = true
		}
	}
	for _, label := range labels {
		assert.True(t, covered[label], "vertex %q missing from every bag", label)
	}

	for _, e := range edges {
		u, v := labels[e[0]], labels[e[1]]
		found := false
		for _, bag := range d.Bags {
			has := map[string]bool{}
			for _, x := range bag.Vertices {
				has[x] = true
			}
			if has[u] && has[v] {
				found = true
				break
			}
		}
		assert.True(t, found, "edge (%s,%s) not covered by any bag", u, v)
	}
}

func decompose(t *testing.T, n int, edges [][2]int, labels []string) *decomp.Decomposition {
	t.Helper()
	g, err := graph.New(n, edges)
	require.NoError(t, err)
	res := decomp.Decompose(g, labels, decomp.Options{})
	require.Equal(t, decomp.Success, res.Outcome, "expected success, got err=%v", res.Err)
	require.NotNil(t, res.Decomposition)
	return res.Decomposition
}

// TestDecompose_EmptyGraph is scenario S1: width 0, a single empty bag.
func TestDecompose_EmptyGraph(t *testing.T) {
	d := decompose(t, 0, nil, []string{})
	assert.Equal(t, 0, d.Width)
	require.Len(t, d.Bags, 1)
	assert.Empty(t, d.Bags[0].Vertices)
}

// TestDecompose_PathP4 is scenario S2: a path has width 1.
func TestDecompose_PathP4(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	d := decompose(t, 4, edges, labels)
	assert.Equal(t, 1, d.Width)
	validateDecomposition(t, edges, labels, d)
}

// TestDecompose_CycleC4 is scenario S3: a 4-cycle has width 2.
func TestDecompose_CycleC4(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}}
	d := decompose(t, 4, edges, labels)
	assert.Equal(t, 2, d.Width)
	validateDecomposition(t, edges, labels, d)
}

// TestDecompose_K4 is scenario S4: a 4-clique has width 3, a single bag.
func TestDecompose_K4(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	d := decompose(t, 4, edges, labels)
	assert.Equal(t, 3, d.Width)
	validateDecomposition(t, edges, labels, d)
}

// TestDecompose_TwoDisjointTriangles is scenario S5: a disconnected input
// whose decomposition requires glueing at the synthetic root.
func TestDecompose_TwoDisjointTriangles(t *testing.T) {
	labels := []string{"a", "b", "c", "d", "e", "f"}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {3, 4}, {4, 5}, {5, 3}}
	d := decompose(t, 6, edges, labels)
	assert.Equal(t, 2, d.Width)
	validateDecomposition(t, edges, labels, d)
}

// TestDecompose_Petersen is scenario S6: the Petersen graph has width 4.
func TestDecompose_Petersen(t *testing.T) {
	labels := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	edges := [][2]int{
		// outer 5-cycle
		{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0},
		// inner pentagram
		{5, 7}, {7, 9}, {9, 6}, {6, 8}, {8, 5},
		// spokes
		{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
	}
	d := decompose(t, 10, edges, labels)
	assert.Equal(t, 4, d.Width)
	validateDecomposition(t, edges, labels, d)
}

func TestDecompose_InvalidInput(t *testing.T) {
	res := decomp.Decompose(nil, nil, decomp.Options{})
	assert.Equal(t, decomp.InvalidInput, res.Outcome)
	assert.ErrorIs(t, res.Err, decomp.ErrInvalidInput)

	g, err := graph.New(2, [][2]int{{0, 1}})
	require.NoError(t, err)
	res = decomp.Decompose(g, []string{"a"}, decomp.Options{})
	assert.Equal(t, decomp.InvalidInput, res.Outcome)
}

func TestDecompose_UpperBoundExhausted(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)

	// K4 has width 3; an upper bound of 2 can never be reached.
	res := decomp.Decompose(g, labels, decomp.Options{UpperBound: 2})
	assert.Equal(t, decomp.NoDecomposition, res.Outcome)
	assert.ErrorIs(t, res.Err, decomp.ErrNoDecomposition)
}

func TestDecompose_LowerBoundHintSkipsSmallWidths(t *testing.T) {
	labels := []string{"a", "b", "c", "d"}
	edges := [][2]int{{0, 1}, {1, 2}, {2, 3}}
	g, err := graph.New(4, edges)
	require.NoError(t, err)

	// The path has width 1, but the search starts at k = 2 and reports it.
	res := decomp.Decompose(g, labels, decomp.Options{LowerBound: 2})
	require.Equal(t, decomp.Success, res.Outcome)
	assert.Equal(t, 2, res.Decomposition.Width)
}
