package core

import (
	"fmt"
	"sort"
	"sync/atomic"
)

const edgeIDPrefix = "e"

// AddVertex inserts a vertex with the given id. A no-op if it already
// exists. Complexity: O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	g.muVert.Lock()
	defer g.muVert.Unlock()
	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = &Vertex{ID: id}

	g.muEdgeAdj.Lock()
	if g.adjacencyList[id] == nil {
		g.adjacencyList[id] = make(map[string]map[string]struct{})
	}
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether id exists. Complexity: O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, exists := g.vertices[id]
	return exists
}

// AddEdge inserts an undirected edge between u and v, adding either vertex
// that is not yet present. Self-loops are rejected with ErrLoopNotAllowed,
// and adding an edge that already exists creates no parallel edge: it
// returns the existing edge's ID. The engine's "undirected simple graph"
// premise (spec.md §1) requires a simple graph, so core.Graph enforces it at
// the collaborator boundary rather than leaving it to the decomposer.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v string) (string, error) {
	if u == "" || v == "" {
		return "", ErrEmptyVertexID
	}
	if u == v {
		return "", ErrLoopNotAllowed
	}
	if err := g.AddVertex(u); err != nil {
		return "", err
	}
	if err := g.AddVertex(v); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if g.hasAdjacency(u, v) {
		// Already connected: idempotent, return the existing edge's ID.
		for eid := range g.adjacencyList[u][v] {
			return eid, nil
		}
	}

	id := fmt.Sprintf("%s%d", edgeIDPrefix, atomic.AddUint64(&g.nextEdgeID, 1))
	g.edges[id] = &Edge{ID: id, From: u, To: v}
	g.linkAdjacency(u, v, id)
	g.linkAdjacency(v, u, id)

	return id, nil
}

// hasAdjacency reports (without locking) whether u and v are already linked.
func (g *Graph) hasAdjacency(u, v string) bool {
	m, ok := g.adjacencyList[u]
	if !ok {
		return false
	}
	_, ok = m[v]
	return ok
}

func (g *Graph) linkAdjacency(from, to, edgeID string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
	g.adjacencyList[from][to][edgeID] = struct{}{}
}

// Vertices returns all vertex IDs, sorted ascending for deterministic
// iteration (the teacher's core.Graph makes the same determinism promise on
// its own Vertices/Edges/Neighbors listings).
// Complexity: O(V log V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// Edges returns all edges, sorted by ID ascending.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Neighbors lists the IDs of vertices adjacent to id, sorted ascending.
// Complexity: O(deg(id) log deg(id)).
func (g *Graph) Neighbors(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	_, ok := g.vertices[id]
	g.muVert.RUnlock()
	if !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]string, 0, len(g.adjacencyList[id]))
	for nbr := range g.adjacencyList[id] {
		out = append(out, nbr)
	}
	sort.Strings(out)
	return out, nil
}
