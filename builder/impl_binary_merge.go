// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// impl_binary_merge.go - BinaryMerge(rounds): the deepest union-by-rank tree.
//
// Union by rank keeps trees shallow; the only way to reach depth k is to
// merge two trees of equal rank k-1, round after round. BinaryMerge lays out
// exactly that schedule so detailed DSU traces show long find walks:
//
//   - 2^rounds nodes.
//   - Round r (1..rounds) joins block starts s and s+2^(r-1) for every block
//     of size 2^r. Weight r, so rounds are processed in order whatever the
//     ids sort like.
//   - One probe edge (2^rounds, 2^(rounds-1)) with weight rounds+1. Both ends
//     already share a root, so it is rejected after two deep finds.
//
// Weights are fixed by the schedule; cfg.weightFn is not consulted.
// Without compression find(2^rounds) walks `rounds` hops.
//
// Complexity: O(2^rounds).

package builder

import (
	"github.com/katalvlaran/mstrace/core"
)

// BinaryMerge returns a Constructor that builds the binomial merge schedule
// described above.
func BinaryMerge(rounds int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodBinaryMerge, "rounds", rounds, MinMergeRounds); err != nil {
			return err
		}
		if rounds > MaxMergeRounds {
			return builderErrorf(MethodBinaryMerge, ErrConstructFailed, "rounds=%d > max=%d", rounds, MaxMergeRounds)
		}

		n := 1 << rounds
		base := addBlock(g, n)
		for r := 1; r <= rounds; r++ {
			size, half := 1<<r, 1<<(r-1)
			for s := 1; s <= n; s += size {
				addWeightedEdge(g, base+s, base+s+half, float64(r))
			}
		}
		addWeightedEdge(g, base+n, base+n/2, float64(rounds+1))

		return nil
	}
}
