// Package graph is the immutable, internal-id, bit-set-backed graph the
// decomposer searches over (component C1 of the tree-decomposition engine).
//
// It has no notion of a string vertex: vertices are integers in [0, N), and
// every query that would otherwise return a set of vertices returns a
// bitset.Set instead. Callers translate from a named graph (core.Graph) via
// ingest.FromCore (package decomp/internal/ingest), which also keeps the
// external-label bijection.
//
// Graph is read-only once built: New validates and freezes adjacency, then
// every exported method is a pure function of that adjacency. This matches
// the single-cooperative-thread, no-concurrent-mutation discipline the
// decomposer loop depends on (see the decomp package).
package graph
