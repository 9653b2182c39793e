package decomp

import (
	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/graph"
)

// Bag is one node of a Decomposition: its external-label vertex set.
type Bag struct {
	ID       int
	Vertices []string
}

// Decomposition is the output of a successful Decompose call: a tree over
// Bags (Edges holds index pairs into Bags) of the reported Width.
type Decomposition struct {
	Width int
	Bags  []Bag
	Edges [][2]int
}

// reconstruct walks the glue map (C6) from root — the synthetic or literal
// full-universe configuration installed by offer's P5 branch — down through
// its parents, emitting one Bag per configuration visited and a tree edge to
// each of its parents' bags.
func reconstruct(st *store, g *graph.Graph, labels []string, root bitset.Set, width int) *Decomposition {
	d := &Decomposition{Width: width}

	var build func(s bitset.Set) int
	build = func(s bitset.Set) int {
		parents, _ := st.parentsOf(s)

		var union bitset.Set
		for _, p := range parents {
			union = union.Union(p)
		}
		delta := s.Difference(union)
		bagSet := delta.Union(g.ExteriorBorder(s))

		vertices := make([]string, 0, bagSet.Cardinality())
		bagSet.ForEach(func(v int) bool {
			vertices = append(vertices, labels[v])
			return true
		})

		idx := len(d.Bags)
		d.Bags = append(d.Bags, Bag{ID: idx, Vertices: vertices})

		for _, p := range parents {
			childIdx := build(p)
			d.Edges = append(d.Edges, [2]int{idx, childIdx})
		}
		return idx
	}

	build(root)
	return d
}
