// Package core defines the value types shared by every mstrace engine:
// the input Graph and Edge, the per-edge EdgeStatus, the node and edge
// overlays used by the visual panels, and the immutable Step record that a
// trace is made of.
//
// Graph model:
//
//   - Nodes are the integers 1..N; there is no separate vertex table.
//   - Edges are undirected and carry a unique string ID and a float64 weight.
//   - Graph.Validate enforces the input contract (unique non-empty IDs,
//     endpoints inside [1, N], finite weights). Engines assume a valid graph.
//
// Edge ordering:
//
//	SortEdges(edges) returns a new slice ordered by (Weight, ID). Both the
//	union-find and the reachability engines consume exactly this order, so
//	they accept the same edges and report the same forest weight.
//
// Steps:
//
//	A Step is a self-contained snapshot: every slice and map it holds is owned
//	by that Step alone. Step.Clone (and DSUView.Clone / DFSView.Clone) produce
//	deep copies; the trace sequencer always stores clones, never live engine
//	state. Map keys are strings or ints, so encoding/json output is stable and
//	two identical traces encode to identical bytes.
//
// Errors:
//
//	ErrNegativeOrder      - Graph.N < 0.
//	ErrEmptyEdgeID        - an edge has an empty ID.
//	ErrDuplicateEdgeID    - two edges share an ID.
//	ErrEndpointOutOfRange - an endpoint lies outside [1, N].
//	ErrNonFiniteWeight    - a weight is NaN or ±Inf.
package core
