// Package trie implements the bit-set trie (component C2): an ordered trie
// keyed by the ascending sequence of set-bit indices of a bitset.Set,
// supporting insert, contains, clear, and lazy subset/superset queries.
//
// The decomposer keeps one Trie per vertex (tries[v], every stored
// configuration whose border contains v) plus one Trie of every offered
// configuration (memory). Both are rebuilt at the start of every trial
// width; Trie itself has no notion of trial width or vertex ownership.
//
// Trie is safe for concurrent reads but not for concurrent mutation of the
// same instance — matching the decomposer's single-cooperative-thread
// model (see the decomp package), where SubsetsOf/SupersetsOf iterators
// always run to completion before any further Insert on the same trie.
package trie
