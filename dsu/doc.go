// Package dsu implements the disjoint-set (union-find) engine behind the
// union-find Kruskal trace.
//
// The structure keeps two arrays indexed 0..n (index 0 unused):
//
//	parent[i] – parent pointer; parent[r] == r for every root r.
//	rank[i]   – upper bound on the height of the subtree rooted at i,
//	            used only to pick which root survives a merge.
//
// Three flavors of root lookup are provided:
//
//   - Find is pure parent chasing with no mutation. It is the ground truth
//     used to confirm truncated walks.
//   - Compress is the classic two-pass find with path compression.
//   - TraceFind walks the chain hop by hop and reports every phase to a
//     FindObserver (start, hop, root, compress, settle). The walk is capped at
//     FindOptions.MaxHops; past the cap the observer receives one Truncated
//     call carrying the true root, so a bounded narration never yields a wrong
//     answer.
//
// Union merges two roots by rank and returns a UnionResult describing which
// root survived, whether the operands were swapped and whether the rank grew.
// That information only feeds narration; it never changes connectivity.
//
// Everything here is iterative, so chain length is bounded by memory only.
//
// Complexity:
//
//	Find, Compress, TraceFind: O(length of the parent chain).
//	Union:                     O(1) on roots.
//	View, Parent, Rank:        O(n) copies.
package dsu
