// Package parser reads and writes the graph formats accepted by mstrace.
//
// Text format (the classic judge format):
//
//	N M
//	u1 v1 w1
//	...
//	uM vM wM
//
// Blank lines are ignored, extra tokens and trailing lines are ignored, and
// edges get IDs e0..e{M-1} in input order. N must be positive, M non-negative.
//
// Document format is YAML or JSON:
//
//	n: 3
//	edges:
//	  - {id: a, u: 1, v: 2, w: 1.5}
//	  - {u: 2, v: 3, w: 2}        # id defaults to e1
//
// Every parsed graph is checked with core.Graph.Validate before it is
// returned, so callers can hand it to the tracer without further checks.
package parser
