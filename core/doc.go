// Package core is the external-collaborator graph type the tree-decomposition
// engine is handed its input through.
//
// The engine itself (see the graph, trie, and decomp packages) works entirely
// in terms of internal [0,n) vertex ids and dense bit-sets — it has no idea
// what a "string vertex ID" or "adjacency list" is. Something still has to
// hold the graph the way a caller naturally builds it (by name, incrementally,
// from whatever format they parsed) and hand it to ingest.FromCore
// (package decomp/internal/ingest) for
// translation into a graph.Graph plus an external-label slice. core.Graph is
// that something: a small, thread-safe, string-keyed adjacency-list graph,
// undirected-only (the engine's Non-goals exclude directed graphs) and
// unweighted-only (Non-goals exclude weighted graphs too).
//
// This package intentionally does not parse any text format — ingestion from
// files is explicitly out of the engine's scope — it only gives callers (and
// this module's own tests, builder-generated fixtures, and the treedecomp
// demo CLI) a convenient, safe place to assemble a graph by vertex name
// before decomposing it.
package core
