// SPDX-License-Identifier: MIT
// impl_cycle.go — implementation of Cycle(n).
//
// Contract:
//   - n >= 3, else ErrTooFewVertices.
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits edges i -> (i+1)%n for i = 0..n-1, in that order.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Cycle returns a Constructor that builds an n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCycle, n, minCycleNodes); err != nil {
			return err
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodCycle, err)
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			v := cfg.idFn((i + 1) % n)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, u, v, err)
			}
		}
		return nil
	}
}
