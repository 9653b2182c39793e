// SPDX-License-Identifier: MIT
// impl_random_regular.go — implementation of RandomRegular(n, d).
//
// Canonical model: the configuration model. Build n*d "stubs" (d copies of
// each vertex index), shuffle them, and pair consecutive stubs into edges.
// A shuffle that would produce a self-loop or a repeated edge is discarded
// and re-tried, up to maxStubMatchingAttempts times.
//
// Contract:
//   - n >= 1 and d >= 0, else ErrTooFewVertices.
//   - n*d must be even (else no regular simple graph exists) and d < n
//     (else a loop-free simple graph cannot realize degree d), else
//     ErrConstructFailed.
//   - cfg.rng must be non-nil, else ErrNeedRandSource.
//   - If every attempt yields a loop or a repeated edge, returns
//     ErrConstructFailed.
package builder

import (
	"fmt"

	"github.com/arbortw/treedecomp/core"
)

// RandomRegular returns a Constructor building a d-regular simple graph on n
// vertices via bounded-retry stub matching.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(methodRandomRegular, n, minRandomRegularNodes); err != nil {
			return err
		}
		if err := validateMin(methodRandomRegular, d, 0); err != nil {
			return err
		}
		if d >= n {
			return fmt.Errorf("%s: d=%d must satisfy 0 <= d < n=%d: %w", methodRandomRegular, d, n, ErrConstructFailed)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d=%d must be even: %w", methodRandomRegular, n*d, ErrConstructFailed)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required: %w", methodRandomRegular, ErrNeedRandSource)
		}

		ids := make([]string, n)
		for i := 0; i < n; i++ {
			ids[i] = cfg.idFn(i)
			if err := g.AddVertex(ids[i]); err != nil {
				return fmt.Errorf("%s: AddVertex(%s): %w", methodRandomRegular, ids[i], err)
			}
		}
		if d == 0 {
			return nil
		}

		for attempt := 0; attempt < maxStubMatchingAttempts; attempt++ {
			stubs := make([]int, 0, n*d)
			for i := 0; i < n; i++ {
				for k := 0; k < d; k++ {
					stubs = append(stubs, i)
				}
			}
			cfg.rng.Shuffle(len(stubs), func(a, b int) { stubs[a], stubs[b] = stubs[b], stubs[a] })

			seen := make(map[[2]int]bool, len(stubs)/2)
			ok := true
			for k := 0; k+1 < len(stubs) && ok; k += 2 {
				a, b := stubs[k], stubs[k+1]
				if a == b {
					ok = false
					break
				}
				key := [2]int{a, b}
				if a > b {
					key = [2]int{b, a}
				}
				if seen[key] {
					ok = false
					break
				}
				seen[key] = true
			}
			if !ok {
				continue
			}

			for k := 0; k+1 < len(stubs); k += 2 {
				u, v := ids[stubs[k]], ids[stubs[k+1]]
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomRegular, u, v, err)
				}
			}
			return nil
		}

		return fmt.Errorf("%s: no valid %d-regular matching found after %d attempts: %w",
			methodRandomRegular, d, maxStubMatchingAttempts, ErrConstructFailed)
	}
}
