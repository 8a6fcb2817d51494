// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_grid.go - Grid(rows, cols): 4-neighbour lattice.
//
// Contract:
//   - rows, cols >= MinGridDim.
//   - Cell (r, c) is node base + r*cols + c + 1 (row-major, 0-based r, c).
//   - Per cell in row-major order: right edge, then down edge.
//   - A 1x1 grid is a single isolated node with no edges.
//
// Complexity: O(rows*cols).

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// Grid returns a Constructor that builds a rows x cols lattice.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}

		base := addBlock(g, rows*cols)
		cell := func(r, c int) int { return base + r*cols + c + 1 }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					addEdge(g, cfg, cell(r, c), cell(r, c+1))
				}
				if r+1 < rows {
					addEdge(g, cfg, cell(r, c), cell(r+1, c))
				}
			}
		}

		return nil
	}
}
