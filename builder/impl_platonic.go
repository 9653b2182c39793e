// SPDX-License-Identifier: MIT
// impl_platonic.go — implementation of PlatonicSolid(name, withCenter).
//
// Contract:
//   - name must be one of the five enumerated solids, else ErrOptionViolation.
//   - Adds shell vertices via cfg.idFn in ascending index order, then emits
//     the canonical shell edges in their listed order.
//   - If withCenter, adds hub "Center" with spokes to every shell vertex in
//     ascending index order.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// PlatonicSolid returns a Constructor building the chosen Platonic shell,
// optionally stellated with a central hub.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		n, ok := platonicVertexCounts[name]
		if !ok {
			return fmt.Errorf("%s: unknown solid %q: %w", methodPlatonicSolid, name, ErrOptionViolation)
		}

		for i := 0; i < n; i++ {
			id := cfg.idFn(i)
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, id, err)
			}
		}

		edges := platonicEdgeSets[name]
		for _, ch := range edges {
			u, v := cfg.idFn(ch.U), cfg.idFn(ch.V)
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPlatonicSolid, u, v, err)
			}
		}

		if withCenter {
			if err := g.AddVertex(centerVertexID); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodPlatonicSolid, centerVertexID, err)
			}
			for i := 0; i < n; i++ {
				v := cfg.idFn(i)
				if _, err := g.AddEdge(centerVertexID, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodPlatonicSolid, centerVertexID, v, err)
				}
			}
		}
		return nil
	}
}
