// SPDX-License-Identifier: MIT
// impl_wheel.go — implementation of Wheel(n).
//
// Canonical definition: W_n = C_{n-1} + "Center", a cycle of size n-1 plus a
// hub connected to every ring vertex.
//
// Contract:
//   - n >= 4, else ErrTooFewVertices (the outer ring needs n-1 >= 3).
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// Wheel returns a Constructor that builds a wheel W_n = C_{n-1} + "Center".
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodWheel, n, minWheelNodes); err != nil {
			return err
		}

		if err := Cycle(n - 1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		if err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}

		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			if _, err := g.AddEdge(centerVertexID, rim); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodWheel, centerVertexID, rim, err)
			}
		}
		return nil
	}
}
