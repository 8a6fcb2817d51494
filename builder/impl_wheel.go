// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_wheel.go - Wheel(n): hub joined to every node of a rim cycle.
//
// Contract:
//   - n >= MinWheelNodes (hub + rim of at least 3).
//   - Rim edges first (cycle over base+2..base+n), then spokes.
//
// Complexity: O(n).

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		base := addBlock(g, n)
		hub := base + 1
		for i := 2; i < n; i++ {
			addEdge(g, cfg, base+i, base+i+1)
		}
		addEdge(g, cfg, base+n, base+2)
		for i := 2; i <= n; i++ {
			addEdge(g, cfg, hub, base+i)
		}

		return nil
	}
}
