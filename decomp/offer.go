package decomp

import (
	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/graph"
	"github.com/arbortw/treedecomp/trie"
)

// trial bundles the per-k search state (C2 trie index, C3 store, C4
// frontier) so offer and the main loop can share it without a god-struct.
type trial struct {
	g      *graph.Graph
	k      int
	n      int
	tries  []*trie.Trie
	memory *trie.Trie
	store  *store
	front  *frontier
}

func newTrial(g *graph.Graph, k int) *trial {
	n := g.N()
	tr := &trial{
		g:      g,
		k:      k,
		n:      n,
		tries:  make([]*trie.Trie, n),
		memory: trie.New(n),
		store:  newStore(),
		front:  newFrontier(),
	}
	for v := 0; v < n; v++ {
		tr.tries[v] = trie.New(n)
	}
	return tr
}

// offer implements the five-rule pruning discipline of spec §4.4, applied in
// order. It returns done=true once a configuration reaches the termination
// witness (P5); witness is the glue-map key reconstruction should start from
// (either s itself, when s already is the full universe, or the synthetic
// full-universe key installed alongside it).
func (tr *trial) offer(s bitset.Set, parents []bitset.Set) (done bool, witness bitset.Set) {
	// P1
	if tr.memory.Contains(s) {
		return false, bitset.Set{}
	}

	var union bitset.Set
	for _, p := range parents {
		union = union.Union(p)
	}
	deltaOut := s.Difference(union)
	border := tr.g.ExteriorBorder(s)

	// P2
	if border.Cardinality()+deltaOut.Cardinality() > tr.k+1 {
		return false, bitset.Set{}
	}

	// P3
	sPlusBorder := s.Union(border)
	hasSuperset := false
	tr.memory.SupersetsOf(sPlusBorder, func(bitset.Set) bool {
		hasSuperset = true
		return false
	})
	if hasSuperset {
		tr.memory.Insert(s)
		return false, bitset.Set{}
	}

	// P4
	dominated := false
	tr.memory.SupersetsOf(s, func(cand bitset.Set) bool {
		if tr.g.ExteriorBorder(cand).IsSubsetOf(border) {
			dominated = true
			return false
		}
		return true
	})
	if dominated {
		tr.memory.Insert(s)
		return false, bitset.Set{}
	}

	tr.store.recordOnce(s, parents)

	// P5
	if s.Cardinality() >= tr.n-tr.k-1 {
		if s.Cardinality() < tr.n {
			full := universe(tr.n)
			tr.store.recordOnce(full, []bitset.Set{s})
			return true, full
		}
		return true, s
	}

	tr.front.push(s)
	tr.memory.Insert(s)
	return false, bitset.Set{}
}

// universe returns the bitset.Set containing every vertex in [0, n).
func universe(n int) bitset.Set {
	var s bitset.Set
	for v := 0; v < n; v++ {
		s = s.Add(v)
	}
	return s
}
