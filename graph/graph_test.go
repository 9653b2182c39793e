package graph_test

import (
	"testing"

	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/graph"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func path4(t *testing.T) *graph.Graph {
	t.Helper()
	g, err := graph.New(4, [][2]int{{0, 1}, {1, 2}, {2, 3}})
	require.NoError(t, err)
	return g
}

func TestNew_RejectsOutOfRangeAndLoops(t *testing.T) {
	_, err := graph.New(3, [][2]int{{0, 3}})
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)

	_, err = graph.New(3, [][2]int{{1, 1}})
	assert.ErrorIs(t, err, graph.ErrInvalidEdge)

	_, err = graph.New(bitset.MaxVertices+1, nil)
	assert.ErrorIs(t, err, graph.ErrTooManyVertices)
}

func TestNeighbourhood(t *testing.T) {
	g := path4(t)
	assert.True(t, g.Neighbourhood(1).Test(0))
	assert.True(t, g.Neighbourhood(1).Test(2))
	assert.False(t, g.Neighbourhood(1).Test(1))
	assert.False(t, g.Neighbourhood(1).Test(3))
}

func TestExteriorBorder(t *testing.T) {
	g := path4(t)
	s := bitset.FromSlice([]int{0})
	border := g.ExteriorBorder(s)
	assert.Equal(t, bitset.FromSlice([]int{1}), border)
}
