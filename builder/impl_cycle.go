// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_cycle.go - Cycle(n): a ring C_n.
//
// Contract:
//   - n >= MinCycleNodes (else ErrTooFewVertices).
//   - Path edges first, then the closing edge (n, 1). With constant weights
//     the closing edge is the one Kruskal rejects last.
//
// Complexity: O(n).

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Cycle returns a Constructor that builds the ring C_n.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodCycle, "n", n, MinCycleNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, base+i, base+i+1)
		}
		addEdge(g, cfg, base+n, base+1)

		return nil
	}
}
