package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/dsu"
)

// Kruskal computes the minimum spanning forest of g without tracing.
// It is the reference the traced builders are checked against.
//
// Steps:
//  1. Validate g against the input contract.
//  2. Sort edges by (weight, id) so ties break exactly as in the traces.
//  3. Union-find with path compression and union by rank: accept an edge
//     when its endpoints have different roots.
//  4. Stop early once N-1 edges are accepted.
//
// A disconnected graph yields a forest with fewer than N-1 edges; this is not
// an error.
//
// Complexity: O(E log E + E·α(V)). Memory: O(V + E).
func Kruskal(g core.Graph) ([]core.Edge, float64, error) {
	// 1. Validate.
	if err := g.Validate(); err != nil {
		return nil, 0, fmt.Errorf("kruskal: %w", err)
	}

	// 2. Deterministic order.
	sorted := core.SortEdges(g.Edges)

	// 3. Union-find over nodes 1..N.
	set := dsu.New(g.N)
	var (
		forest = make([]core.Edge, 0, max(g.N-1, 0))
		total  float64
	)
	for _, e := range sorted {
		ru, rv := set.Compress(e.U), set.Compress(e.V)
		if ru == rv {
			continue
		}
		set.Union(ru, rv)
		forest = append(forest, e)
		total += e.Weight

		// 4. A spanning tree is complete.
		if len(forest) == g.N-1 {
			break
		}
	}

	return forest, total, nil
}

// FinalWeight returns the forest weight recorded by the last step of a
// trace, or 0 for an empty sequence.
func FinalWeight(steps []core.Step) float64 {
	if len(steps) == 0 {
		return 0
	}

	return steps[len(steps)-1].MSTWeight
}
