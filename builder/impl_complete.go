// SPDX-License-Identifier: MIT
// impl_complete.go — implementation of Complete(n), the complete graph K_n.
//
// Contract:
//   - n >= 1, else ErrTooFewVertices.
//   - Adds vertices via cfg.idFn in ascending index order.
//   - Emits each unordered pair {i,j}, i<j, in lexicographic order.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodComplete, n, 1); err != nil {
			return err
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
			}
		}

		if err := addCompleteEdges(g, ids); err != nil {
			return fmt.Errorf("%s: %w", methodComplete, err)
		}
		return nil
	}
}
