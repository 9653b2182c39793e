// SPDX-License-Identifier: MIT
// api.go — public entry points for the builder package.
//
// Design contract:
//   - One orchestrator, BuildGraph(bopts, cons...): creates a fresh
//     core.Graph, resolves cfg, runs cons in order.
//   - All public factories are declared here; implemented in impl_*.go.
//   - Determinism: same inputs/options/seed and constructor order => the
//     identical graph.
//   - Safety: constructors never panic; they return sentinel errors.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Constructor applies one deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters early and return sentinel
// errors; they never panic.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves a builderConfig from bopts,
// and applies every constructor in cons in order. The first constructor
// error is wrapped with "BuildGraph: %w" and returned immediately.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// =============================================================================
// Topology factories (declarations) — implemented in impl_*.go
// =============================================================================

// Cycle builds an n-vertex simple cycle C_n (n >= 3).
//func Cycle(n int) Constructor

// Path builds a simple path P_n (n >= 2).
//func Path(n int) Constructor

// Star builds a star with center "Center" and n-1 leaves (n >= 2).
//func Star(n int) Constructor

// Wheel builds a wheel W_n = C_{n-1} + center "Center" (n >= 4).
//func Wheel(n int) Constructor

// Complete builds the complete simple graph K_n (n >= 1).
//func Complete(n int) Constructor

// Grid builds a rows x cols 4-neighborhood grid with IDs "r,c" (row-major).
//func Grid(rows, cols int) Constructor

// RandomSparse builds an Erdos-Renyi-like graph: each unordered pair {i,j}
// is included independently with probability p. Requires a non-nil RNG
// unless p is exactly 0 or 1.
//func RandomSparse(n int, p float64) Constructor

// RandomRegular builds a d-regular simple graph via stub matching with a
// bounded number of retries.
//func RandomRegular(n, d int) Constructor

// PlatonicSolid builds one of the five Platonic solid shells, optionally
// stellated with a central hub connected to every shell vertex.
//func PlatonicSolid(name PlatonicName, withCenter bool) Constructor

// CompleteBipartite builds the complete bipartite graph K_{n1,n2}
// (n1 >= 1, n2 >= 1).
//func CompleteBipartite(n1, n2 int) Constructor
