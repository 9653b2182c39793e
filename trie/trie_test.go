package trie_test

import (
	"sort"
	"testing"

	"github.com/arbortw/treedecomp/bitset"
	"github.com/arbortw/treedecomp/trie"
	"github.com/stretchr/testify/assert"
)

func collect(t *trie.Trie, mask bitset.Set, supersets bool) []bitset.Set {
	var out []bitset.Set
	yield := func(s bitset.Set) bool {
		out = append(out, s)
		return true
	}
	if supersets {
		t.SupersetsOf(mask, yield)
	} else {
		t.SubsetsOf(mask, yield)
	}
	return out
}

func sortSets(sets []bitset.Set) {
	sort.Slice(sets, func(i, j int) bool {
		return sets[i].Cardinality() < sets[j].Cardinality() ||
			(sets[i].Cardinality() == sets[j].Cardinality() && sets[i][0] < sets[j][0])
	})
}

func TestTrie_InsertContainsClear(t *testing.T) {
	tr := trie.New(16)
	s := bitset.FromSlice([]int{1, 3, 5})

	assert.False(t, tr.Contains(s))
	tr.Insert(s)
	assert.True(t, tr.Contains(s))
	assert.False(t, tr.Contains(bitset.FromSlice([]int{1, 3})))

	tr.Clear()
	assert.False(t, tr.Contains(s))
}

func TestTrie_SubsetsAndSupersets_AgainstBruteForce(t *testing.T) {
	universe := 8
	stored := []bitset.Set{
		bitset.FromSlice([]int{0}),
		bitset.FromSlice([]int{1}),
		bitset.FromSlice([]int{0, 1}),
		bitset.FromSlice([]int{0, 2}),
		bitset.FromSlice([]int{1, 2, 3}),
		bitset.FromSlice([]int{0, 1, 2, 3}),
		bitset.FromSlice([]int{4, 5}),
	}

	tr := trie.New(universe)
	for _, s := range stored {
		tr.Insert(s)
	}

	masks := []bitset.Set{
		bitset.FromSlice([]int{0, 1, 2, 3}),
		bitset.FromSlice([]int{0}),
		bitset.FromSlice([]int{1, 2}),
		bitset.FromSlice([]int{}),
		bitset.FromSlice([]int{4, 5, 6}),
	}

	for _, mask := range masks {
		var wantSubsets, wantSupersets []bitset.Set
		for _, s := range stored {
			if s.IsSubsetOf(mask) {
				wantSubsets = append(wantSubsets, s)
			}
			if mask.IsSubsetOf(s) {
				wantSupersets = append(wantSupersets, s)
			}
		}

		gotSubsets := collect(tr, mask, false)
		gotSupersets := collect(tr, mask, true)

		sortSets(wantSubsets)
		sortSets(gotSubsets)
		sortSets(wantSupersets)
		sortSets(gotSupersets)

		assert.Equal(t, wantSubsets, gotSubsets, "SubsetsOf(%v)", mask.Slice())
		assert.Equal(t, wantSupersets, gotSupersets, "SupersetsOf(%v)", mask.Slice())
	}
}

func TestTrie_YieldStopsEarly(t *testing.T) {
	tr := trie.New(8)
	tr.Insert(bitset.FromSlice([]int{0}))
	tr.Insert(bitset.FromSlice([]int{1}))
	tr.Insert(bitset.FromSlice([]int{2}))

	count := 0
	tr.SubsetsOf(bitset.FromSlice([]int{0, 1, 2}), func(s bitset.Set) bool {
		count++
		return false
	})
	assert.Equal(t, 1, count)
}
