// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// helpers.go - node block allocation and edge emission shared by constructors.

package builder

import (
	"strconv"

	"github.com/katalvlaran/mstrace/core"
)

// edgeIDPrefix matches the ids the text parser assigns.
const edgeIDPrefix = "e"

// addBlock appends n fresh nodes to g and returns the base offset: the new
// nodes are base+1 .. base+n.
func addBlock(g *core.Graph, n int) int {
	base := g.N
	g.N += n

	return base
}

// addEdge appends an undirected edge u-v with the next sequential id and a
// weight drawn from cfg.
func addEdge(g *core.Graph, cfg builderConfig, u, v int) {
	addWeightedEdge(g, u, v, cfg.weight())
}

// addWeightedEdge appends an edge with an explicit weight.
func addWeightedEdge(g *core.Graph, u, v int, w float64) {
	g.Edges = append(g.Edges, core.Edge{
		ID:     edgeIDPrefix + strconv.Itoa(len(g.Edges)),
		U:      u,
		V:      v,
		Weight: w,
	})
}

// validateMin reports v < minimum as ErrTooFewVertices.
func validateMin(method, name string, v, minimum int) error {
	if v < minimum {
		return builderErrorf(method, ErrTooFewVertices, "%s=%d < min=%d", name, v, minimum)
	}

	return nil
}
