package core

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for input validation.
var (
	// ErrNegativeOrder indicates a Graph with a negative node count.
	ErrNegativeOrder = errors.New("core: node count is negative")

	// ErrEmptyEdgeID indicates an Edge without an identifier.
	ErrEmptyEdgeID = errors.New("core: edge ID is empty")

	// ErrDuplicateEdgeID indicates two edges sharing the same identifier.
	ErrDuplicateEdgeID = errors.New("core: duplicate edge ID")

	// ErrEndpointOutOfRange indicates an edge endpoint outside [1, N].
	ErrEndpointOutOfRange = errors.New("core: edge endpoint out of range")

	// ErrNonFiniteWeight indicates a NaN or infinite edge weight.
	ErrNonFiniteWeight = errors.New("core: edge weight is not finite")
)

// Edge is an undirected, weighted connection between nodes U and V.
// Edges are values; once built upstream they are never modified.
type Edge struct {
	// ID uniquely identifies the edge within its Graph.
	ID string `json:"id" yaml:"id"`

	// U is the first endpoint (1-based).
	U int `json:"u" yaml:"u"`

	// V is the second endpoint (1-based).
	V int `json:"v" yaml:"v"`

	// Weight is the edge cost. Only its ordering matters to Kruskal.
	Weight float64 `json:"w" yaml:"w"`
}

// String renders the edge as "id(u-v, w)".
func (e Edge) String() string {
	return fmt.Sprintf("%s(%d-%d, %g)", e.ID, e.U, e.V, e.Weight)
}

// Graph is the tracer input: N nodes numbered 1..N and an ordered edge list.
type Graph struct {
	// N is the node count.
	N int `json:"n" yaml:"n"`

	// Edges keeps the upstream order; engines sort a copy.
	Edges []Edge `json:"edges" yaml:"edges"`
}

// Validate checks the input contract the engines rely on.
// It returns the first violation found, wrapped with the offending edge.
// Complexity: O(E).
func (g Graph) Validate() error {
	if g.N < 0 {
		return fmt.Errorf("n=%d: %w", g.N, ErrNegativeOrder)
	}

	seen := make(map[string]struct{}, len(g.Edges))
	for i, e := range g.Edges {
		if e.ID == "" {
			return fmt.Errorf("edge #%d: %w", i, ErrEmptyEdgeID)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("edge %q: %w", e.ID, ErrDuplicateEdgeID)
		}
		seen[e.ID] = struct{}{}

		if e.U < 1 || e.U > g.N || e.V < 1 || e.V > g.N {
			return fmt.Errorf("edge %q (%d-%d) with n=%d: %w", e.ID, e.U, e.V, g.N, ErrEndpointOutOfRange)
		}
		if math.IsNaN(e.Weight) || math.IsInf(e.Weight, 0) {
			return fmt.Errorf("edge %q: %w", e.ID, ErrNonFiniteWeight)
		}
	}

	return nil
}

// Clone returns a Graph with its own edge slice.
func (g Graph) Clone() Graph {
	edges := make([]Edge, len(g.Edges))
	copy(edges, g.Edges)

	return Graph{N: g.N, Edges: edges}
}

// EdgeStatus is the lifecycle state of an edge during a trace.
type EdgeStatus string

const (
	// StatusNormal marks an edge not yet considered.
	StatusNormal EdgeStatus = "normal"
	// StatusCurrent marks the edge under consideration (at most one per step).
	StatusCurrent EdgeStatus = "current"
	// StatusChosen marks an edge accepted into the spanning forest.
	StatusChosen EdgeStatus = "chosen"
	// StatusRejected marks an edge that would have closed a cycle.
	StatusRejected EdgeStatus = "rejected"
)

// NodeMark colors a node in the union-find panel.
type NodeMark string

const (
	// MarkStart is the node a find call started from.
	MarkStart NodeMark = "start"
	// MarkWalk is the node the find walk currently stands on.
	MarkWalk NodeMark = "walk"
	// MarkRoot is the representative the walk arrived at.
	MarkRoot NodeMark = "root"
	// MarkSettled pairs the start node with its root once the find is over.
	MarkSettled NodeMark = "settled"
)

// EdgeMark colors an MST edge in the reachability panel.
type EdgeMark string

const (
	// MarkCandidate is an edge towards a not-yet-visited neighbor.
	MarkCandidate EdgeMark = "candidate"
	// MarkActive is the edge the search descended through.
	MarkActive EdgeMark = "active"
	// MarkDead is an edge whose branch failed; it stays dead for the whole search.
	MarkDead EdgeMark = "dead"
)
