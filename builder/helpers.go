// helpers.go — small shared helpers used by topology constructors.
package builder

import (
	"fmt"
	"strconv"

	"github.com/arbortw/treedecomp/core"
)

// addVerticesWithIDFn adds vertices idFn(0..n-1) to g in ascending order.
func addVerticesWithIDFn(g *core.Graph, n int, idFn IDFn) error {
	for i := 0; i < n; i++ {
		id := idFn(i)
		if err := g.AddVertex(id); err != nil {
			return fmt.Errorf("addVerticesWithIDFn: AddVertex(%s): %w", id, err)
		}
	}
	return nil
}

// addCompleteEdges connects every unordered pair in ids exactly once.
func addCompleteEdges(g *core.Graph, ids []string) error {
	for i := 0; i < len(ids); i++ {
		u := ids[i]
		for j := i + 1; j < len(ids); j++ {
			v := ids[j]
			if _, err := g.AddEdge(u, v); err != nil {
				return fmt.Errorf("addCompleteEdges: AddEdge(%s-%s): %w", u, v, err)
			}
		}
	}
	return nil
}

// gridVertexID formats a 2D grid coordinate as "r,c".
func gridVertexID(r, c int) string {
	return strconv.Itoa(r) + "," + strconv.Itoa(c)
}
