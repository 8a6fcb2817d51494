package kruskal

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/dsu"
	"github.com/katalvlaran/mstrace/trace"
)

// BuildDSUTrace runs Kruskal with union-find cycle detection and returns the
// full step sequence.
//
// Steps:
//  1. Resolve options and validate g.
//  2. Emit the start step over the (weight, id) order.
//  3. Per edge: consider, find both endpoints (narrated when Detailed), then
//     exactly one accept (union) or reject.
//  4. Emit the end step with the forest weight.
//
// Errors are returned only for invalid options or a graph that breaks the
// input contract. A disconnected graph yields a spanning forest.
//
// Complexity: O(E log E + E·α(V)) work; O(steps·(V+E)) snapshot memory.
func BuildDSUTrace(g core.Graph, opts ...Option) ([]core.Step, error) {
	// 1. Options and input.
	o, err := prepare(g, opts)
	if err != nil {
		return nil, err
	}

	b := &dsuBuilder{
		opts: o,
		set:  dsu.New(g.N),
	}
	sorted := core.SortEdges(g.Edges)
	b.seq = trace.NewSequencer(sorted)

	// 2. Start.
	at := trace.Start()
	b.seq.Emit(at, trace.Draft{
		Kind:        core.KindStart,
		Explanation: fmt.Sprintf("Start Kruskal with union-find: %d edges sorted by (weight, id), every node is its own set.", len(sorted)),
		Lines:       dsuLinesStart,
		DSU:         b.set.View(nil, nil),
	})

	// 3. Edge loop.
	for _, e := range sorted {
		at = at.NextMajor()
		if err = b.edge(at, e); err != nil {
			return nil, err
		}
	}

	// 4. End.
	b.seq.Release()
	b.seq.Emit(at.NextMajor(), trace.Draft{
		Kind:        core.KindEnd,
		Explanation: fmt.Sprintf("Kruskal finished: %d edges in the forest, total weight %g.", len(b.seq.MST()), b.seq.Weight()),
		Lines:       dsuLinesEnd,
		DSU:         b.set.View(nil, nil),
	})

	return b.seq.Steps(), nil
}

// dsuBuilder holds the private state of one union-find trace.
type dsuBuilder struct {
	opts Options
	set  *dsu.DSU
	seq  *trace.Sequencer
}

// edge processes e under top-level position at.
func (b *dsuBuilder) edge(at trace.Cursor, e core.Edge) error {
	b.seq.Consider(e)
	b.seq.Emit(at, trace.Draft{
		Kind:        core.KindConsider,
		Explanation: fmt.Sprintf("Consider edge %s (%d-%d) with weight %g.", e.ID, e.U, e.V, e.Weight),
		Lines:       dsuLinesConsider,
		DSU:         b.set.View([]int{e.U, e.V}, nil),
	})

	var ru, rv int
	terminal := at.NextMinor()
	if b.opts.Detailed {
		var err error
		if ru, err = b.tracedFind(at.NextMinor(), e.U); err != nil {
			return err
		}
		if rv, err = b.tracedFind(at.NextMinor().NextMinor(), e.V); err != nil {
			return err
		}
		terminal = at.NextMinor().NextMinor().NextMinor()
	} else {
		ru, rv = b.find(e.U), b.find(e.V)
	}

	if ru == rv {
		b.seq.Reject(e)
		b.seq.Emit(terminal, trace.Draft{
			Kind: core.KindReject,
			Explanation: fmt.Sprintf("find(%d) = find(%d) = %d: both ends are already in one set, so %s would close a cycle. Rejected.",
				e.U, e.V, ru, e.ID),
			Lines: dsuLinesReject,
			DSU:   b.set.View([]int{e.U, e.V}, nil),
		})

		return nil
	}

	res := b.set.Union(ru, rv)
	b.seq.Accept(e)
	b.seq.Emit(terminal, trace.Draft{
		Kind:        core.KindAccept,
		Explanation: acceptNarration(e, ru, rv, res, b.seq.Weight()),
		Lines:       dsuLinesAccept,
		DSU:         b.set.View([]int{res.Child, res.Root}, nil),
	})

	return nil
}

// find is the coarse-mode lookup.
func (b *dsuBuilder) find(u int) int {
	if b.opts.Compression {
		return b.set.Compress(u)
	}

	return b.set.Find(u)
}

// tracedFind narrates find(u) under phase position at.
func (b *dsuBuilder) tracedFind(at trace.Cursor, u int) (int, error) {
	n := &findNarrator{b: b, at: at}
	res, err := b.set.TraceFind(u, dsu.FindOptions{
		MaxHops:     b.opts.MaxFindHops,
		Compression: b.opts.Compression,
	}, n)
	if err != nil {
		return 0, fmt.Errorf("kruskal: find(%d): %w", u, err)
	}

	return res.Root, nil
}

func acceptNarration(e core.Edge, ru, rv int, res dsu.UnionResult, weight float64) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "find(%d) = %d and find(%d) = %d differ, so %s joins the forest. ", e.U, ru, e.V, rv, e.ID)
	if res.Swapped {
		fmt.Fprintf(&sb, "Root %d has the lower rank and goes under %d. ", res.Child, res.Root)
	} else {
		fmt.Fprintf(&sb, "Root %d is attached under %d. ", res.Child, res.Root)
	}
	if res.RankIncreased {
		fmt.Fprintf(&sb, "Ranks were equal, rank[%d] grows by one. ", res.Root)
	}
	fmt.Fprintf(&sb, "Forest weight is now %g.", weight)

	return sb.String()
}

// findNarrator turns dsu.FindObserver calls into steps. The first call lands
// on the phase label, every later one on the next hop label.
type findNarrator struct {
	b       *dsuBuilder
	at      trace.Cursor
	started bool
}

func (n *findNarrator) emit(kind core.StepKind, lines []int, focus []int, overlay map[int]core.NodeMark, text string) {
	if n.started {
		n.at = n.at.NextHop()
	}
	n.started = true
	n.b.seq.Emit(n.at, trace.Draft{
		Kind:        kind,
		Explanation: text,
		Lines:       lines,
		DSU:         n.b.set.View(focus, overlay),
	})
}

func (n *findNarrator) FindStarted(start int) {
	n.emit(core.KindFindStart, dsuLinesFindStart, []int{start},
		map[int]core.NodeMark{start: core.MarkStart},
		fmt.Sprintf("find(%d): start the walk at node %d.", start, start))
}

func (n *findNarrator) Hopped(start, from, to, hop int) {
	n.emit(core.KindFindHop, dsuLinesHop, []int{start, to},
		map[int]core.NodeMark{start: core.MarkStart, to: core.MarkWalk},
		fmt.Sprintf("find(%d): parent[%d] = %d, move up to %d (hop %d).", start, from, to, to, hop))
}

func (n *findNarrator) RootFound(start, root, hops int) {
	overlay := map[int]core.NodeMark{start: core.MarkStart, root: core.MarkRoot}
	n.emit(core.KindFindRoot, dsuLinesRoot, []int{start, root}, overlay,
		fmt.Sprintf("find(%d): parent[%d] = %d, so %d is the root (%d hops).", start, root, root, root, hops))
}

func (n *findNarrator) Compressed(start, root int, rewired []int) {
	overlay := map[int]core.NodeMark{start: core.MarkStart, root: core.MarkRoot}
	n.emit(core.KindFindCompress, dsuLinesCompress, append(append([]int{}, rewired...), root), overlay,
		fmt.Sprintf("find(%d): path compression points %s directly at root %d.", start, joinNodes(rewired), root))
}

func (n *findNarrator) Settled(start, root int) {
	n.emit(core.KindFindSettle, dsuLinesSettle, []int{start, root}, settledOverlay(start, root),
		fmt.Sprintf("find(%d) = %d.", start, root))
}

func (n *findNarrator) Truncated(start, root, hops int, rewired []int) {
	text := fmt.Sprintf("find(%d): ... the walk continues the same way; the root is %d (narration stopped after %d hops, this is the final state).",
		start, root, hops)
	if len(rewired) > 0 {
		text += fmt.Sprintf(" Path compression points %s at %d.", joinNodes(rewired), root)
	}
	n.emit(core.KindFindSummary, dsuLinesSummary, []int{start, root}, settledOverlay(start, root), text)
}

// settledOverlay pairs start with its root. Nodes skipped by a truncated
// walk are left unmarked.
func settledOverlay(start, root int) map[int]core.NodeMark {
	overlay := map[int]core.NodeMark{root: core.MarkRoot}
	overlay[start] = core.MarkSettled

	return overlay
}

func joinNodes(nodes []int) string {
	parts := make([]string, len(nodes))
	for i, u := range nodes {
		parts[i] = fmt.Sprint(u)
	}

	return strings.Join(parts, ", ")
}
