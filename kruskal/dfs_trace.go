package kruskal

import (
	"fmt"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/dfs"
	"github.com/katalvlaran/mstrace/trace"
)

// BuildDFSTrace runs Kruskal with reachability-based cycle detection and
// returns the full step sequence.
//
// The top-level loop is identical to BuildDSUTrace; the check for each edge
// (u, v) asks whether v is already reachable from u over accepted edges.
// In Detailed mode every search event becomes a step labelled M.1.h, capped
// by MaxDFSSteps plus one summary step.
//
// Complexity: O(E·(V+E)) work in the worst case; the narration per edge is
// bounded by MaxDFSSteps+1 steps.
func BuildDFSTrace(g core.Graph, opts ...Option) ([]core.Step, error) {
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	sorted := core.SortEdges(g.Edges)
	b := &dfsBuilder{
		opts: o,
		adj:  dfs.NewAdjacency(g.N),
		seq:  trace.NewSequencer(sorted),
	}

	at := trace.Start()
	b.seq.Emit(at, trace.Draft{
		Kind:        core.KindStart,
		Explanation: fmt.Sprintf("Start Kruskal with depth-first search: %d edges sorted by (weight, id), the forest adjacency is empty.", len(sorted)),
		Lines:       dfsLinesStart,
	})

	for _, e := range sorted {
		at = at.NextMajor()
		if err = b.edge(at, e); err != nil {
			return nil, err
		}
	}

	b.seq.Release()
	b.seq.Emit(at.NextMajor(), trace.Draft{
		Kind:        core.KindEnd,
		Explanation: fmt.Sprintf("Kruskal finished: %d edges in the forest, total weight %g.", len(b.seq.MST()), b.seq.Weight()),
		Lines:       dfsLinesEnd,
	})

	return b.seq.Steps(), nil
}

// dfsBuilder holds the private state of one reachability trace.
type dfsBuilder struct {
	opts Options
	adj  *dfs.Adjacency
	seq  *trace.Sequencer
}

func (b *dfsBuilder) edge(at trace.Cursor, e core.Edge) error {
	b.seq.Consider(e)
	b.seq.Emit(at, trace.Draft{
		Kind:        core.KindConsider,
		Explanation: fmt.Sprintf("Consider edge %s (%d-%d) with weight %g: is %d already reachable from %d?", e.ID, e.U, e.V, e.Weight, e.V, e.U),
		Lines:       dfsLinesConsider,
		DFS:         &core.DFSView{Source: e.U, Target: e.V, Visited: []int{}},
	})

	terminal := at.NextMinor()
	searchOpts := []dfs.Option{dfs.WithMaxSteps(b.opts.MaxDFSSteps)}
	if b.opts.Detailed {
		searchOpts = append(searchOpts, dfs.WithObserver(&searchNarrator{b: b, at: at.NextMinor()}))
		terminal = terminal.NextMinor()
	}
	res, err := dfs.Reach(b.adj, e.U, e.V, searchOpts...)
	if err != nil {
		return fmt.Errorf("kruskal: reach %s: %w", e.ID, err)
	}
	view := &core.DFSView{Source: e.U, Target: e.V, Visited: res.Visited}

	if res.Exists {
		b.seq.Reject(e)
		b.seq.Emit(terminal, trace.Draft{
			Kind:        core.KindReject,
			Explanation: fmt.Sprintf("A path from %d to %d already exists in the forest, so %s would close a cycle. Rejected.", e.U, e.V, e.ID),
			Lines:       dfsLinesReject,
			DFS:         view,
		})

		return nil
	}

	if err = b.adj.Connect(e.U, e.V, e.ID); err != nil {
		return fmt.Errorf("kruskal: connect %s: %w", e.ID, err)
	}
	b.seq.Accept(e)
	b.seq.Emit(terminal, trace.Draft{
		Kind: core.KindAccept,
		Explanation: fmt.Sprintf("No path from %d to %d, so %s closes no cycle and joins the forest. Forest weight is now %g.",
			e.U, e.V, e.ID, b.seq.Weight()),
		Lines: dfsLinesAccept,
		DFS:   view,
	})

	return nil
}

// searchNarrator turns dfs.Observer calls into steps; at starts on the
// phase label and every event takes the next hop.
type searchNarrator struct {
	b  *dfsBuilder
	at trace.Cursor
}

func (n *searchNarrator) emit(kind core.StepKind, lines []int, s dfs.State, text string) {
	n.at = n.at.NextHop()
	n.b.seq.Emit(n.at, trace.Draft{
		Kind:        kind,
		Explanation: text,
		Lines:       lines,
		DFS:         s.View(),
	})
}

func (n *searchNarrator) Entered(s dfs.State) {
	n.emit(core.KindDFSEnter, dfsLinesEnter, s, fmt.Sprintf("Enter node %d and mark it visited.", s.Current))
}

func (n *searchNarrator) Explored(s dfs.State, _ []dfs.Arc) {
	n.emit(core.KindDFSExplore, dfsLinesExplore, s,
		fmt.Sprintf("Explore unvisited neighbors of %d: {%s}.", s.Current, joinNodes(s.Neighbors)))
}

func (n *searchNarrator) Descended(s dfs.State, arc dfs.Arc) {
	n.emit(core.KindDFSDescend, dfsLinesDescend, s,
		fmt.Sprintf("Descend from %d to %d along %s.", s.Current, arc.To, arc.EdgeID))
}

func (n *searchNarrator) Backtracked(s dfs.State, arc dfs.Arc) {
	n.emit(core.KindDFSBacktrack, dfsLinesBacktrack, s,
		fmt.Sprintf("Backtrack: branch %d -> %d does not lead to %d, %s is dead.", s.Current, arc.To, s.Target, arc.EdgeID))
}

func (n *searchNarrator) Truncated(s dfs.State, exists bool) {
	lines, verdict := dfsLinesMissingSum, "no path"
	if exists {
		lines, verdict = dfsLinesFoundSum, "a path"
	}
	n.emit(core.KindDFSSummary, lines, s,
		fmt.Sprintf("... the search continues the same way and finds %s from %d to %d (narration stopped after %d steps, this is the final state).",
			verdict, s.Source, s.Target, n.b.opts.MaxDFSSteps))
}
