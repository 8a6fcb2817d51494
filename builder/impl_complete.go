// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_complete.go - Complete(n): every unordered pair once.
//
// Contract:
//   - n >= MinCompleteNodes.
//   - Pairs (i, j), i < j, in lexicographic order; n(n-1)/2 edges.
//
// Complexity: O(n^2). Dense inputs are the worst case for the DFS engine.

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Complete returns a Constructor that builds K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodComplete, "n", n, MinCompleteNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				addEdge(g, cfg, base+i, base+j)
			}
		}

		return nil
	}
}
