package trie

import (
	"sort"

	"github.com/arbortw/treedecomp/bitset"
)

// node is a single trie node. children is keyed by the next set-bit index;
// terminal marks that the path from the root to this node spells out a
// stored bit-set.
type node struct {
	children map[int]*node
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[int]*node)}
}

// Trie is an ordered trie over ascending set-bit sequences. The zero value
// is not usable; construct one with New.
type Trie struct {
	universe int
	root     *node
}

// New returns an empty Trie over a universe of the given size (the largest
// vertex id any stored bitset.Set may carry is universe-1).
func New(universe int) *Trie {
	return &Trie{universe: universe, root: newNode()}
}

// Insert adds s to the trie. Complexity: O(|s|).
func (t *Trie) Insert(s bitset.Set) {
	n := t.root
	s.ForEach(func(v int) bool {
		child, ok := n.children[v]
		if !ok {
			child = newNode()
			n.children[v] = child
		}
		n = child
		return true
	})
	n.terminal = true
}

// Contains reports whether s was previously inserted. Complexity: O(|s|).
func (t *Trie) Contains(s bitset.Set) bool {
	n := t.root
	found := true
	s.ForEach(func(v int) bool {
		child, ok := n.children[v]
		if !ok {
			found = false
			return false
		}
		n = child
		return true
	})
	return found && n.terminal
}

// Clear discards every stored bit-set, resetting the trie to empty.
// Complexity: O(1) (the old tree becomes garbage).
func (t *Trie) Clear() {
	t.root = newNode()
}

// SubsetsOf calls yield once for every stored S with S ⊆ mask, in no
// particular order guarantee beyond determinism for a fixed trie and mask,
// stopping early if yield returns false. Descent only follows edges whose
// label is set in mask, since any stored set with a bit outside mask cannot
// be a subset.
func (t *Trie) SubsetsOf(mask bitset.Set, yield func(bitset.Set) bool) {
	var walk func(n *node, acc bitset.Set) bool
	walk = func(n *node, acc bitset.Set) bool {
		if n.terminal && !yield(acc) {
			return false
		}
		for _, v := range sortedKeys(n.children) {
			if !mask.Test(v) {
				continue
			}
			if !walk(n.children[v], acc.Add(v)) {
				return false
			}
		}
		return true
	}
	walk(t.root, bitset.Set{})
}

// SupersetsOf calls yield once for every stored S with S ⊇ mask, stopping
// early if yield returns false. Since stored sequences are strictly
// ascending, a required bit mask[i] can only ever be matched at the trie
// depth where it is encountered; the walk tracks how many of mask's bits
// have been matched so far along the current path and abandons a branch as
// soon as an edge overshoots the next required bit.
func (t *Trie) SupersetsOf(mask bitset.Set, yield func(bitset.Set) bool) {
	required := mask.Slice()

	var walk func(n *node, acc bitset.Set, matched int) bool
	walk = func(n *node, acc bitset.Set, matched int) bool {
		if matched == len(required) && n.terminal && !yield(acc) {
			return false
		}
		for _, v := range sortedKeys(n.children) {
			next := matched
			if matched < len(required) {
				switch {
				case v > required[matched]:
					// Every later edge is also > required[matched]: this
					// required bit can never be matched going forward.
					return true
				case v == required[matched]:
					next = matched + 1
				}
			}
			if !walk(n.children[v], acc.Add(v), next) {
				return false
			}
		}
		return true
	}
	walk(t.root, bitset.Set{}, 0)
}

// sortedKeys returns m's keys in ascending order, giving SubsetsOf and
// SupersetsOf a deterministic, reproducible traversal order.
func sortedKeys(m map[int]*node) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
