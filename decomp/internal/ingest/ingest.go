// Package ingest is the ambient adapter between string-labelled graphs and
// the internal bitset-indexed graph.Graph the decomposer searches over. It
// is deliberately minimal: not a text-format parser (out of scope, per
// spec.md §1), just the glue examples and tests need to hand decomp a
// graph.Graph plus its external labels.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/arbortw/treedecomp/core"
	"github.com/arbortw/treedecomp/graph"
)

// FromCore converts a core.Graph into a graph.Graph plus the external label
// of every internal vertex id, assigning ids in the ascending order of
// core.Graph.Vertices() (already sorted, so the mapping is deterministic
// across calls on an unchanged graph).
func FromCore(g *core.Graph) (*graph.Graph, []string, error) {
	labels := g.Vertices()
	index := make(map[string]int, len(labels))
	for i, id := range labels {
		index[id] = i
	}

	var edges [][2]int
	seen := make(map[[2]int]struct{})
	for _, e := range g.Edges() {
		u, v := index[e.From], index[e.To]
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		edges = append(edges, key)
	}

	gg, err := graph.New(len(labels), edges)
	if err != nil {
		return nil, nil, err
	}
	return gg, labels, nil
}

// ReadAdjacencyList parses a line-oriented adjacency list: one vertex label
// per line, followed by its space-separated neighbour labels
// ("a b c" means a-b and a-c). Blank lines and lines starting with '#' are
// skipped. Each edge is read from whichever endpoint lists it first;
// duplicates (the edge read again from the other endpoint, or repeated in
// the input) are silently ignored.
func ReadAdjacencyList(r io.Reader) (*graph.Graph, []string, error) {
	cg := core.NewGraph()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		from := fields[0]
		if err := cg.AddVertex(from); err != nil {
			return nil, nil, fmt.Errorf("ingest: %w", err)
		}
		for _, to := range fields[1:] {
			if to == from {
				continue
			}
			if _, err := cg.AddEdge(from, to); err != nil {
				return nil, nil, fmt.Errorf("ingest: %w", err)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("ingest: reading adjacency list: %w", err)
	}

	return FromCore(cg)
}
