// Package mstrace turns Kruskal's minimum spanning tree algorithm into a
// replayable sequence of snapshots for teaching and visualization.
//
// What is mstrace?
//
//	A small library plus a CLI and an HTTP service that bring together:
//		• core     – Graph, Edge, Step and the (weight, id) edge order
//		• dsu      – union-find with union by rank, traced iterative find
//		• dfs      – explicit-stack reachability search with an observer
//		• trace    – hierarchical step labels and the snapshot sequencer
//		• kruskal  – BuildDSUTrace, BuildDFSTrace, pseudo-code, reference Kruskal
//		• parser   – "N M" text, YAML and JSON graph input
//		• builder  – deterministic fixture graphs (path, grid, random, merge, ...)
//
// Guarantees
//
//   - Deterministic: identical input and options give byte-identical traces.
//   - Both engines agree on the forest and its weight.
//   - Every step owns its data; replaying never aliases engine state.
//   - Bounded narration: long finds and searches collapse into one summary
//     step carrying the true final state.
//
// Under the hood:
//
//	cmd/mstrace         — trace, verify, generate, serve, version
//	internal/cli        — cobra command tree
//	internal/server     — chi routes, Prometheus metrics, bigcache memo
//	internal/config     — viper + validator configuration
//	internal/logging    — slog handlers, lumberjack rotation
//	internal/presentation — termenv listings and Mermaid export
//
// Quick start:
//
//	g, _ := parser.ParseText(strings.NewReader("3 3\n1 2 1\n2 3 2\n1 3 3\n"))
//	steps, _ := kruskal.BuildDSUTrace(g, kruskal.WithDetailed(true))
//	for _, s := range steps {
//		fmt.Println(s.Label, s.Kind, s.Explanation)
//	}
package mstrace
