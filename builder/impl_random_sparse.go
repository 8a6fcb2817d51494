// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_random_sparse.go - RandomSparse(n, p): Erdos-Renyi G(n, p).
//
// Contract:
//   - n >= MinRandomNodes, p in [0,1], cfg.rng non-nil (ErrNeedRandSource).
//   - Pairs (i, j), i < j, visited in lexicographic order; each kept with
//     probability p. The weight is drawn only for kept pairs, so the same
//     seed gives the same graph.
//   - The result may be disconnected; Kruskal then yields a forest.
//
// Complexity: O(n^2) trials.

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// RandomSparse returns a Constructor that builds a G(n, p) random graph.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomSparse, "n", n, MinRandomNodes); err != nil {
			return err
		}
		if !(p >= MinProbability && p <= MaxProbability) {
			return builderErrorf(MethodRandomSparse, ErrInvalidProbability, "p=%g", p)
		}
		if cfg.rng == nil {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "n=%d", n)
		}

		base := addBlock(g, n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				if cfg.rng.Float64() < p {
					addEdge(g, cfg, base+i, base+j)
				}
			}
		}

		return nil
	}
}
