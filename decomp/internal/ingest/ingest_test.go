package ingest_test

import (
	"strings"
	"testing"

	"github.com/arbortw/treedecomp/core"
	"github.com/arbortw/treedecomp/decomp/internal/ingest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromCore(t *testing.T) {
	cg := core.NewGraph()
	_, err := cg.AddEdge("b", "a")
	require.NoError(t, err)
	_, err = cg.AddEdge("a", "c")
	require.NoError(t, err)

	g, labels, err := ingest.FromCore(cg)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
	assert.Equal(t, 3, g.N())

	nbrs := g.Neighbourhood(0) // "a"
	assert.True(t, nbrs.Test(1)) // "b"
	assert.True(t, nbrs.Test(2)) // "c"
}

func TestReadAdjacencyList(t *testing.T) {
	input := `# a simple path
a b
b c
c
`
	g, labels, err := ingest.ReadAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, labels)
	assert.Equal(t, 3, g.N())
	assert.True(t, g.Neighbourhood(0).Test(1))
	assert.True(t, g.Neighbourhood(1).Test(2))
}

func TestReadAdjacencyList_IgnoresBlankAndComments(t *testing.T) {
	input := "\n# comment\na b\n\n"
	g, labels, err := ingest.ReadAdjacencyList(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
	assert.Equal(t, 2, g.N())
}
