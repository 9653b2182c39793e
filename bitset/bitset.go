// Package bitset provides a fixed-universe bit-set over vertex ids.
//
// The tree-decomposition engine represents every configuration, border, and
// neighbourhood as a dense bit-set keyed by vertex id. Sets are compared by
// value, hashed as map keys, and combined with union/intersection/difference
// far more often than they are mutated one bit at a time, so Set is a small
// fixed-size array rather than a growable slice: it is comparable (usable
// directly as a map key, the way decomp's configuration store and trie index
// need it) and free of the aliasing hazards a shared backing slice would
// introduce across the decomposer's many saturate/clone steps.
//
// Complexity: the set-algebra operations below (Union, Intersect,
// Difference, IsEmpty, IsSubsetOf, Cardinality, NextSet) are O(Words), i.e.
// O(n/64) for the platform-defined vertex limit n ≤ MaxVertices. Complement
// is O(universe), and ForEach/Slice are O(Words + |s|).
package bitset

import "math/bits"

const (
	// wordBits is the number of bits in one storage word.
	wordBits = 64

	// Words is the number of uint64 words backing a Set.
	Words = 4

	// MaxVertices is the platform-defined limit on graph size: the largest
	// vertex id representable is MaxVertices-1.
	MaxVertices = Words * wordBits
)

// Set is a subset of [0, MaxVertices). The zero value is the empty set.
type Set [Words]uint64

// wordIdx and bitIdx split a vertex id into its word and in-word bit.
func wordIdx(i int) int { return i >> 6 }
func bitIdx(i int) uint { return uint(i) & 63 }

// Test reports whether i is a member of s. i outside [0, MaxVertices)
// reports false rather than panicking, so callers can probe freely.
func (s Set) Test(i int) bool {
	if i < 0 || i >= MaxVertices {
		return false
	}
	return s[wordIdx(i)]&(1<<bitIdx(i)) != 0
}

// Add returns s with i inserted. i must be in [0, MaxVertices).
func (s Set) Add(i int) Set {
	s[wordIdx(i)] |= 1 << bitIdx(i)
	return s
}

// Remove returns s with i deleted.
func (s Set) Remove(i int) Set {
	s[wordIdx(i)] &^= 1 << bitIdx(i)
	return s
}

// Union returns s ∪ other.
func (s Set) Union(other Set) Set {
	var out Set
	for w := 0; w < Words; w++ {
		out[w] = s[w] | other[w]
	}
	return out
}

// Intersect returns s ∩ other.
func (s Set) Intersect(other Set) Set {
	var out Set
	for w := 0; w < Words; w++ {
		out[w] = s[w] & other[w]
	}
	return out
}

// Difference returns s \ other.
func (s Set) Difference(other Set) Set {
	var out Set
	for w := 0; w < Words; w++ {
		out[w] = s[w] &^ other[w]
	}
	return out
}

// Complement returns the set of vertices in [0, universe) not in s.
func (s Set) Complement(universe int) Set {
	var out Set
	for i := 0; i < universe; i++ {
		if !s.Test(i) {
			out = out.Add(i)
		}
	}
	return out
}

// IsEmpty reports whether s has no members.
func (s Set) IsEmpty() bool {
	for w := 0; w < Words; w++ {
		if s[w] != 0 {
			return false
		}
	}
	return true
}

// IsSubsetOf reports whether every member of s is also a member of other.
func (s Set) IsSubsetOf(other Set) bool {
	for w := 0; w < Words; w++ {
		if s[w]&^other[w] != 0 {
			return false
		}
	}
	return true
}

// Cardinality returns |s|.
func (s Set) Cardinality() int {
	n := 0
	for w := 0; w < Words; w++ {
		n += bits.OnesCount64(s[w])
	}
	return n
}

// NextSet returns the smallest member of s that is >= from, and ok=false if
// no such member exists. Used to drive ascending iteration deterministically
// (spec requires reproducible traversal order; see decomp package).
func (s Set) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	w := wordIdx(from)
	if w >= Words {
		return 0, false
	}
	// Mask off bits below `from` in the first word.
	word := s[w] &^ (1<<bitIdx(from) - 1)
	for {
		if word != 0 {
			return w*wordBits + bits.TrailingZeros64(word), true
		}
		w++
		if w >= Words {
			return 0, false
		}
		word = s[w]
	}
}

// ForEach calls fn for every member of s in ascending order, stopping early
// if fn returns false.
func (s Set) ForEach(fn func(i int) bool) {
	for i, ok := s.NextSet(0); ok; i, ok = s.NextSet(i + 1) {
		if !fn(i) {
			return
		}
	}
}

// Slice returns the ascending list of members of s.
func (s Set) Slice() []int {
	out := make([]int, 0, s.Cardinality())
	s.ForEach(func(i int) bool {
		out = append(out, i)
		return true
	})
	return out
}

// FromSlice builds a Set containing exactly the ids in vs.
func FromSlice(vs []int) Set {
	var s Set
	for _, v := range vs {
		s = s.Add(v)
	}
	return s
}
