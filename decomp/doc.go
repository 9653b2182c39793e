// Package decomp is the decomposer: the configuration store and frontier
// (C3/C4), the clean-and-glue search loop (C5), and reconstruction (C6) of
// the tree-decomposition engine. Decompose is the module's single public
// entry point.
//
// The search is driven entirely by graph.Graph (C1) and trie.Trie (C2);
// decomp owns no bit-set or adjacency logic of its own beyond the glue
// bookkeeping described in spec §4.3-§4.6. Every data structure here
// (store, frontier, the per-vertex trie index) is rebuilt from scratch at
// the start of each trial width k and is never touched by more than one
// goroutine, matching the single-cooperative-thread model in §5.
package decomp
