// Package builder assembles deterministic core.Graph fixtures for tests, the
// demo CLI, and anyone exploring the decomposer without hand-writing an
// adjacency list.
//
// BuildGraph composes a sequence of Constructor closures (Cycle, Path, Star,
// Wheel, Complete, Grid, RandomSparse, RandomRegular, PlatonicSolid) against a
// fresh core.Graph. Constructors never panic; they validate parameters and
// return sentinel errors wrapped with fmt.Errorf's %w, matching the engine-wide
// convention of checking errors with errors.Is rather than string matching.
//
// Determinism: every constructor emits vertices and edges in a fixed,
// documented order. Stochastic constructors (RandomSparse, RandomRegular)
// require an explicit *rand.Rand via WithSeed or WithRand — there is no
// hidden global RNG.
package builder
