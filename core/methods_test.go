package core_test

import (
	"testing"

	"github.com/arbortw/treedecomp/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGraph_AddVertex_Lifecycle verifies AddVertex/HasVertex, rejection of an
// empty ID, and that re-adding an existing vertex is a no-op.
func TestGraph_AddVertex_Lifecycle(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)

	require.NoError(t, g.AddVertex("a"))
	assert.True(t, g.HasVertex("a"))
	assert.False(t, g.HasVertex("b"))

	// idempotent
	require.NoError(t, g.AddVertex("a"))
	assert.Equal(t, []string{"a"}, g.Vertices())
}

func TestGraph_AddEdge_CreatesEndpointsAndIsSimple(t *testing.T) {
	g := core.NewGraph()
	id, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.ElementsMatch(t, []string{"a", "b"}, g.Vertices())

	// self-loop rejected
	_, err = g.AddEdge("a", "a")
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	// empty endpoint rejected
	_, err = g.AddEdge("", "b")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)
}

func TestGraph_AddEdge_Idempotent(t *testing.T) {
	g := core.NewGraph()
	id1, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	id2, err := g.AddEdge("a", "b")
	require.NoError(t, err)
	assert.Equal(t, id1, id2)
	assert.Len(t, g.Edges(), 1)
}

func TestGraph_Neighbors(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("a", "b")
	_, _ = g.AddEdge("a", "c")

	nbrs, err := g.Neighbors("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, nbrs)

	_, err = g.Neighbors("missing")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
}
