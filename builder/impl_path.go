// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_path.go - Path(n): nodes 1..n in a line.
//
// Contract:
//   - n >= MinPathNodes (else ErrTooFewVertices).
//   - Edges (i, i+1) for i = 1..n-1 in increasing order.
//
// Complexity: O(n).

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Path returns a Constructor that builds a simple path P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodPath, "n", n, MinPathNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		for i := 1; i < n; i++ {
			addEdge(g, cfg, base+i, base+i+1)
		}

		return nil
	}
}
