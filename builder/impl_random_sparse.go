// SPDX-License-Identifier: MIT
// impl_random_sparse.go — implementation of RandomSparse(n, p).
//
// Canonical model: an Erdos-Renyi-like generator. Every unordered pair
// {i,j}, i<j, is realized as an edge independently with probability p.
//
// Contract:
//   - n >= 1, else ErrTooFewVertices.
//   - 0 <= p <= 1, else ErrInvalidProbability.
//   - cfg.rng must be non-nil unless p is exactly 0 or 1 (the deterministic
//     corner cases), else ErrNeedRandSource.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// RandomSparse returns a Constructor sampling an Erdos-Renyi-like graph over
// n vertices with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomSparse, n, minRandomSparseVertices); err != nil {
			return err
		}
		if err := validateProbability(methodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodRandomSparse, err)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				include := false
				switch {
				case cfg.rng == nil:
					include = p == 1.0
				default:
					include = cfg.rng.Float64() <= p
				}
				if !include {
					continue
				}
				v := cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}
		return nil
	}
}
