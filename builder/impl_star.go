// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_star.go - Star(n): hub plus n-1 leaves.

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Star returns a Constructor that builds a star with n nodes: the first node
// of the block is the hub, edges (hub, leaf) in leaf order.
// A star is a tree, so every edge is accepted.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodStar, "n", n, MinStarNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		hub := base + 1
		for leaf := 2; leaf <= n; leaf++ {
			addEdge(g, cfg, hub, base+leaf)
		}

		return nil
	}
}
