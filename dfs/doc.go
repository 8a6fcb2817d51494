// Package dfs implements the reachability engine behind the depth-first
// Kruskal trace: given the forest accepted so far, is there already a path
// between the endpoints of a candidate edge?
//
// What:
//
//   - Adjacency: per-node ordered arc lists built only from accepted edges.
//     Neighbor order is insertion order, so the first accepted edge is
//     explored first.
//   - Reach(adj, source, target, opts...): depth-first search from source
//     towards target. A node is marked visited on entry; reaching target at
//     any depth (including source == target) ends the search successfully.
//
// Narration:
//
// With WithObserver the search reports, per frame, Entered, then repeatedly
// Explored (every unvisited neighbor is a candidate), Descended (the chosen
// arc turns active) and, when that branch fails, Backtracked (the arc turns
// dead and stays dead for the rest of the call).
//
// Budget:
//
// At most MaxSteps observer calls are made per Reach. When the budget runs
// out the narrated walk stops, an untraced re-run computes the true answer
// and final visited/stack/overlay state, and a single Truncated call reports
// it. The result is always identical to an unbounded search.
//
// The walk keeps an explicit frame stack instead of recursing, so depth is
// bounded by memory rather than by the goroutine stack.
//
// Complexity:
//
//   - Time:   O(V + E) over the accepted forest, per call.
//   - Memory: O(V) for the frame stack and visited flags.
//
// Errors:
//
//   - ErrNodeOutOfRange     if an endpoint is outside 1..n.
//   - ErrInvalidMaxSteps    if an observer is set and MaxSteps < 1.
package dfs
