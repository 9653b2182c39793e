// SPDX-License-Identifier: MIT
// impl_bipartite.go — implementation of CompleteBipartite(n1,n2).
//
// Contract:
//   - n1 >= 1 and n2 >= 1, else ErrTooFewVertices.
//   - Left partition gets cfg.idFn(0..n1-1); right partition gets
//     cfg.idFn(n1..n1+n2-1), continuing the same index space (no separate
//     prefix scheme).
//   - Emits every cross pair L_i -> R_j, i ascending then j ascending.
//
// CompleteBipartite(n1,n2) has treewidth min(n1,n2): a canonical family for
// exercising decomposer fixtures at a chosen width.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// CompleteBipartite returns a Constructor that builds the complete bipartite
// graph K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodCompleteBipartite, n1, minPartitionSize); err != nil {
			return err
		}
		if err := validateMin(methodCompleteBipartite, n2, minPartitionSize); err != nil {
			return err
		}

		left := make([]string, n1)
		for i := 0; i < n1; i++ {
			id := cfg.idFn(i)
			left[i] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		right := make([]string, n2)
		for j := 0; j < n2; j++ {
			id := cfg.idFn(n1 + j)
			right[j] = id
			if err := g.AddVertex(id); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodCompleteBipartite, id, err)
			}
		}

		for i := 0; i < n1; i++ {
			for j := 0; j < n2; j++ {
				if _, err := g.AddEdge(left[i], right[j]); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCompleteBipartite, left[i], right[j], err)
				}
			}
		}
		return nil
	}
}
