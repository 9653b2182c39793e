package graph

import (
	"fmt"

	"github.com/arbortw/treedecomp/bitset"
)

// Graph is an immutable adjacency structure over the internal vertex
// universe [0, N). adj[v] holds the open neighbourhood of v (v itself is
// never set). Complexity: every query below is O(N/w) in bitset word
// operations per vertex touched.
type Graph struct {
	n   int
	adj []bitset.Set
}

// New builds a Graph on n vertices from an undirected edge list. Each edge
// (u,v) must satisfy 0 <= u,v < n and u != v; duplicate edges are harmless
// (idempotent on the bit-set). Complexity: O(n + len(edges)).
func New(n int, edges [][2]int) (*Graph, error) {
	if n < 0 || n > bitset.MaxVertices {
		return nil, fmt.Errorf("graph.New: n=%d: %w", n, ErrTooManyVertices)
	}
	g := &Graph{n: n, adj: make([]bitset.Set, n)}
	for _, e := range edges {
		u, v := e[0], e[1]
		if u < 0 || u >= n || v < 0 || v >= n || u == v {
			return nil, fmt.Errorf("graph.New: edge (%d,%d): %w", u, v, ErrInvalidEdge)
		}
		g.adj[u] = g.adj[u].Add(v)
		g.adj[v] = g.adj[v].Add(u)
	}
	return g, nil
}

// N returns the size of the vertex universe.
func (g *Graph) N() int {
	return g.n
}

// Neighbourhood returns the open neighbourhood of v, N(v), excluding v
// itself. Complexity: O(1) (a stored bit-set copy).
func (g *Graph) Neighbourhood(v int) bitset.Set {
	return g.adj[v]
}

// ExteriorBorder returns N(S): the vertices in V\S adjacent to some vertex
// in S. Complexity: O(|S| * N/w).
func (g *Graph) ExteriorBorder(s bitset.Set) bitset.Set {
	return g.neighbourhoodOfSet(s).Difference(s)
}

// neighbourhoodOfSet returns the union of Neighbourhood(v) over v in c,
// including vertices of c itself if they happen to be adjacent to another
// member (callers that need the exterior border subtract c afterwards).
func (g *Graph) neighbourhoodOfSet(c bitset.Set) bitset.Set {
	var out bitset.Set
	c.ForEach(func(v int) bool {
		out = out.Union(g.adj[v])
		return true
	})
	return out
}

// Saturate returns the saturation of S: the unique maximal S' ⊇ S with
// N(S') ⊆ N(S), obtained by repeatedly absorbing every connected component
// of G[V \ (S ∪ N(S))] whose exterior neighbourhood does not exceed N(S).
// Saturate is idempotent: Saturate(Saturate(S)) == Saturate(S).
// Complexity: O(n + m) per absorption round; in practice a single round
// suffices because absorbing one component never changes N(S) for the
// others (see graph/saturate_test.go).
func (g *Graph) Saturate(s bitset.Set) bitset.Set {
	for {
		border := g.ExteriorBorder(s)
		rest := s.Union(border).Complement(g.n)
		if rest.IsEmpty() {
			return s
		}

		absorbedAny := false
		visited := bitset.Set{}
		rest.ForEach(func(v int) bool {
			if visited.Test(v) {
				return true
			}
			comp := g.componentOf(v, rest)
			visited = visited.Union(comp)
			if g.neighbourhoodOfSet(comp).Difference(comp).IsSubsetOf(border) {
				s = s.Union(comp)
				absorbedAny = true
			}
			return true
		})
		if !absorbedAny {
			return s
		}
	}
}

// Absorbable returns -1 if t is already saturated with respect to its
// border (V \ (t ∪ N(t)) is empty), otherwise the smallest vertex id v such
// that absorbing C_v — the connected component of v in G[V \ (t ∪ N(t))] —
// would not enlarge N(t).
func (g *Graph) Absorbable(t bitset.Set) int {
	border := g.ExteriorBorder(t)
	rest := t.Union(border).Complement(g.n)
	if rest.IsEmpty() {
		return -1
	}

	visited := bitset.Set{}
	result := -1
	rest.ForEach(func(v int) bool {
		if visited.Test(v) {
			return true
		}
		comp := g.componentOf(v, rest)
		visited = visited.Union(comp)
		if g.neighbourhoodOfSet(comp).Difference(comp).IsSubsetOf(border) {
			result = v
			return false // stop: ascending iteration found the smallest v
		}
		return true
	})
	return result
}

// componentOf returns the connected component of v within G restricted to
// mask, via a depth-first search (a LIFO work list) over adj intersected
// with mask.
func (g *Graph) componentOf(v int, mask bitset.Set) bitset.Set {
	comp := bitset.Set{}.Add(v)
	queue := []int{v}
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		frontier := g.adj[cur].Intersect(mask).Difference(comp)
		frontier.ForEach(func(w int) bool {
			comp = comp.Add(w)
			queue = append(queue, w)
			return true
		})
	}
	return comp
}
