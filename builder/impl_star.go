// SPDX-License-Identifier: MIT
// impl_star.go — implementation of Star(n).
//
// Contract:
//   - n >= 2, else ErrTooFewVertices.
//   - Hub vertex has the fixed ID "Center".
//   - Leaves added via cfg.idFn for i = 1..n-1, each spoked to the hub in
//     ascending leaf-index order.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodStar, n, minStarNodes); err != nil {
			return err
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, centerVertexID, err)
		}

		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := g.AddVertex(leaf); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodStar, leaf, err)
			}
			if _, err := g.AddEdge(centerVertexID, leaf); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodStar, centerVertexID, leaf, err)
			}
		}
		return nil
	}
}
