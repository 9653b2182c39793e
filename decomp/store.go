package decomp

import "github.com/arbortw/treedecomp/bitset"

// store is the configuration store (C3): it maps a configuration S to the
// predecessor configurations it was glued from. Entries are written by offer
// for configurations that survive P1-P4 (no parents for the initial
// singletons, one for a fly move, two for a glue), by offer's P5 branch for
// the synthetic full-universe root, and by the glue loop for a raw union U.
// A fresh store is built for every trial width k.
type store struct {
	parents map[bitset.Set][]bitset.Set
}

func newStore() *store {
	return &store{parents: make(map[bitset.Set][]bitset.Set)}
}

// recordOnce writes glue(s) = parents. Writing glue(s) twice is a glue-DAG
// acyclicity violation in the search itself, not a condition a caller can
// trigger through valid input, so it panics rather than returning an error.
func (st *store) recordOnce(s bitset.Set, parents []bitset.Set) {
	if _, exists := st.parents[s]; exists {
		panic("decomp: glue record already exists for this configuration")
	}
	st.parents[s] = parents
}

// recorded reports whether glue(s) has already been written.
func (st *store) recorded(s bitset.Set) bool {
	_, ok := st.parents[s]
	return ok
}

// parentsOf returns glue(s) and whether it was recorded.
func (st *store) parentsOf(s bitset.Set) ([]bitset.Set, bool) {
	p, ok := st.parents[s]
	return p, ok
}
