// SPDX-License-Identifier: MIT
// impl_grid.go — implementation of Grid(rows, cols).
//
// Canonical model: a 2D orthogonal grid with 4-neighborhood (right and
// bottom neighbors per cell). Vertex IDs use the fixed "r,c" scheme
// (row-major) rather than cfg.idFn, to keep coordinates explicit.
//
// Contract:
//   - rows >= 1 and cols >= 1, else ErrTooFewVertices.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodGrid, rows, minGridDim); err != nil {
			return err
		}
		if err := validateMin(methodGrid, cols, minGridDim); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridVertexID(r, c)
				if err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridVertexID(r, c)
				if c+1 < cols {
					v := gridVertexID(r, c+1)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := gridVertexID(r+1, c)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
			}
		}
		return nil
	}
}
