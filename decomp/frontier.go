package decomp

import (
	"container/heap"

	"github.com/arbortw/treedecomp/bitset"
)

// frontierItem is one entry of the frontier: a configuration plus the
// monotonic insertion sequence used to break cardinality ties
// deterministically (spec §5's reproducibility requirement).
type frontierItem struct {
	s   bitset.Set
	seq int
}

// frontier is the maximum-cardinality-first priority queue (C4): a
// hand-rolled type implementing container/heap.Interface, the same shape as
// the teacher's prim_kruskal edgePQ, rather than a generic third-party queue
// (see DESIGN.md).
type frontier struct {
	items []frontierItem
	seq   int
}

func newFrontier() *frontier {
	return &frontier{}
}

func (f *frontier) Len() int { return len(f.items) }

func (f *frontier) Less(i, j int) bool {
	ci, cj := f.items[i].s.Cardinality(), f.items[j].s.Cardinality()
	if ci != cj {
		return ci > cj
	}
	return f.items[i].seq < f.items[j].seq
}

func (f *frontier) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *frontier) Push(x interface{}) {
	f.items = append(f.items, x.(frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := f.items
	n := len(old)
	item := old[n-1]
	f.items = old[:n-1]
	return item
}

// push enqueues s with the next insertion sequence number.
func (f *frontier) push(s bitset.Set) {
	f.seq++
	heap.Push(f, frontierItem{s: s, seq: f.seq})
}

// pop removes and returns the largest-cardinality configuration, ok=false if
// the frontier is empty.
func (f *frontier) pop() (bitset.Set, bool) {
	if f.Len() == 0 {
		return bitset.Set{}, false
	}
	item := heap.Pop(f).(frontierItem)
	return item.s, true
}
