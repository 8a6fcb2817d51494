// Package kruskal builds replayable step-by-step traces of Kruskal's minimum
// spanning forest construction, with two interchangeable cycle checks.
//
// What & Why
//
//   - A trace is an ordered, immutable sequence of core.Step snapshots that a
//     renderer can step through forwards and backwards. Each step carries the
//     edge statuses, the forest so far, its weight, a narration and the lines
//     of the paired pseudo-code listing to highlight.
//
//   - Two engines answer "would this edge close a cycle?":
//
//   - EngineDSU (BuildDSUTrace): union-find with union by rank and optional
//     path compression. Detailed mode narrates every find: start, each
//     parent hop, the root, the compression rewrite and the final pairing.
//
//   - EngineDFS (BuildDFSTrace): depth-first reachability over the edges
//     accepted so far. Detailed mode narrates each entered node, explored
//     neighbor list, descent and backtrack.
//
//   - Both engines process edges in the same (weight, id) order, so they
//     always agree on the forest and its weight.
//
// Top-level loop
//
//  1. start step (label "1") after sorting.
//  2. per edge k (label major k+1): consider, engine check, then exactly one
//     accept or reject.
//  3. end step reporting the total weight.
//
// Zero edges produce exactly start and end. A disconnected graph yields a
// spanning forest; that is not an error.
//
// Labels
//
//	coarse:       M (consider), M.1 (accept/reject)
//	detailed DSU: M, M.1 and M.1.h (find u), M.2 and M.2.h (find v), M.3
//	detailed DFS: M, M.1.h (search events), M.2
//
// Truncation
//
// MaxFindHops and MaxDFSSteps bound the narration of a single find or search.
// Past the budget the engine confirms the answer untraced and emits one
// summary step with the true final state. Truncation is never an error.
//
// Options
//
//	WithDetailed(bool)     – micro-steps on/off (default off).
//	WithCompression(bool)  – path compression for EngineDSU (default on).
//	WithMaxFindHops(int)   – per-find budget (default 16, >= 1).
//	WithMaxDFSSteps(int)   – per-search budget (default 200, >= 1).
//	WithOptions(Options)   – apply a resolved Options value.
//
// Errors
//
//   - ErrInvalidMaxFindHops, ErrInvalidMaxDFSSteps for bad budgets.
//   - ErrUnknownEngine from Trace and ParseEngine.
//   - core validation errors (wrapped) for graphs outside the input contract.
//
// Kruskal(g) is the untraced reference used to cross-check traces.
package kruskal
