// SPDX-License-Identifier: MIT
// impl_path.go — implementation of Path(n).
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits edges (i-1) -> i for i = 1..n-1, in that order.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodPath, n, minPathNodes); err != nil {
			return err
		}

		if err := addVerticesWithIDFn(g, n, cfg.idFn); err != nil {
			return fmt.Errorf("%s: %w", methodPath, err)
		}

		for i := 1; i < n; i++ {
			u := cfg.idFn(i - 1)
			v := cfg.idFn(i)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPath, u, v, err)
			}
		}
		return nil
	}
}
