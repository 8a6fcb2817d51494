package dfs

import (
	"fmt"

	"github.com/katalvlaran/mstrace/core"
)

// Adjacency is the accepted forest as ordered arc lists for nodes 1..n.
// It only grows; rejected or unseen edges are never added.
type Adjacency struct {
	arcs [][]Arc
}

// NewAdjacency returns an empty adjacency over nodes 1..n.
func NewAdjacency(n int) *Adjacency {
	if n < 0 {
		n = 0
	}

	return &Adjacency{arcs: make([][]Arc, n+1)}
}

// Order returns n.
func (a *Adjacency) Order() int { return len(a.arcs) - 1 }

// Connect appends arc u->v and v->u labelled id.
func (a *Adjacency) Connect(u, v int, id string) error {
	if !a.has(u) || !a.has(v) {
		return fmt.Errorf("connect %d-%d: %w", u, v, ErrNodeOutOfRange)
	}
	a.arcs[u] = append(a.arcs[u], Arc{To: v, EdgeID: id})
	a.arcs[v] = append(a.arcs[v], Arc{To: u, EdgeID: id})

	return nil
}

// Neighbors returns a copy of u's arcs in insertion order.
func (a *Adjacency) Neighbors(u int) []Arc {
	if !a.has(u) {
		return nil
	}

	return append([]Arc(nil), a.arcs[u]...)
}

func (a *Adjacency) has(u int) bool { return u >= 1 && u < len(a.arcs) }

// frame is one level of the explicit search stack.
type frame struct {
	node int
	via  Arc // arc that led here; zero for the source frame
}

// walker holds the state of one Reach call.
type walker struct {
	adj     *Adjacency
	source  int
	target  int
	obs     Observer // nil when untraced
	budget  int
	emitted int
	cut     bool

	visited []bool
	order   []int
	stack   []int
	overlay map[string]core.EdgeMark
}

// Reach reports whether target is reachable from source in adj.
//
// Steps:
//  1. Resolve options; validate endpoints and, when narrated, the budget.
//  2. Run the narrated (or silent) frame-stack search.
//  3. If narration ran out of budget, re-run silently and emit one summary.
func Reach(adj *Adjacency, source, target int, opts ...Option) (Result, error) {
	// 1. Options and validation.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if !adj.has(source) || !adj.has(target) {
		return Result{}, fmt.Errorf("reach %d->%d: %w", source, target, ErrNodeOutOfRange)
	}
	if o.Observer != nil && o.MaxSteps < 1 {
		return Result{}, fmt.Errorf("max steps %d: %w", o.MaxSteps, ErrInvalidMaxSteps)
	}

	// 2. Narrated or silent search.
	w := newWalker(adj, source, target, o.Observer, o.MaxSteps)
	exists := w.run()
	if !w.cut {
		return w.result(exists), nil
	}

	// 3. Budget exhausted: recover the true end state silently.
	full := newWalker(adj, source, target, nil, 0)
	exists = full.run()
	current := source
	if len(full.stack) > 0 {
		current = full.stack[len(full.stack)-1]
	}
	o.Observer.Truncated(full.state(current, nil), exists)

	res := full.result(exists)
	res.Truncated = true
	res.Emitted = w.emitted + 1

	return res, nil
}

func newWalker(adj *Adjacency, source, target int, obs Observer, budget int) *walker {
	return &walker{
		adj:     adj,
		source:  source,
		target:  target,
		obs:     obs,
		budget:  budget,
		visited: make([]bool, len(adj.arcs)),
		overlay: make(map[string]core.EdgeMark),
	}
}

// run performs the search. In narrated mode it stops early, with w.cut set,
// as soon as an event would exceed the budget.
func (w *walker) run() bool {
	if w.source == w.target {
		return true
	}
	if !w.enter(w.source) {
		return false
	}
	frames := []frame{{node: w.source}}

	for len(frames) > 0 {
		top := frames[len(frames)-1]
		cands := w.candidates(top.node)

		// Dead end: pop, and let the parent frame mark the arc dead.
		if len(cands) == 0 {
			frames = frames[:len(frames)-1]
			w.stack = w.stack[:len(w.stack)-1]
			if len(frames) == 0 {
				break
			}
			w.overlay[top.via.EdgeID] = core.MarkDead
			parent := frames[len(frames)-1].node
			if !w.emit(func() { w.obs.Backtracked(w.state(parent, nil), top.via) }) {
				return false
			}
			continue
		}

		if !w.emit(func() { w.obs.Explored(w.state(top.node, cands), cands) }) {
			return false
		}

		arc := cands[0]
		w.overlay[arc.EdgeID] = core.MarkActive
		if !w.emit(func() { w.obs.Descended(w.state(top.node, nil), arc) }) {
			return false
		}
		if arc.To == w.target {
			return true
		}
		if !w.enter(arc.To) {
			return false
		}
		frames = append(frames, frame{node: arc.To, via: arc})
	}

	return false
}

// enter marks u visited, pushes it and narrates the entry.
func (w *walker) enter(u int) bool {
	w.visited[u] = true
	w.order = append(w.order, u)
	w.stack = append(w.stack, u)

	return w.emit(func() { w.obs.Entered(w.state(u, nil)) })
}

// emit delivers one event if narration is on and budget remains.
// It returns false once the budget is exhausted.
func (w *walker) emit(call func()) bool {
	if w.obs == nil {
		return true
	}
	if w.emitted >= w.budget {
		w.cut = true

		return false
	}
	w.emitted++
	call()

	return true
}

// candidates lists u's arcs to unvisited nodes, in insertion order.
func (w *walker) candidates(u int) []Arc {
	var out []Arc
	for _, a := range w.adj.arcs[u] {
		if !w.visited[a.To] {
			out = append(out, a)
		}
	}

	return out
}

// state snapshots the walker; cands, when given, are overlaid as candidates.
func (w *walker) state(current int, cands []Arc) State {
	s := State{
		Source:  w.source,
		Target:  w.target,
		Current: current,
		Visited: append([]int{}, w.order...),
		Stack:   append([]int{}, w.stack...),
		Overlay: make(map[string]core.EdgeMark, len(w.overlay)+len(cands)),
	}
	for id, m := range w.overlay {
		s.Overlay[id] = m
	}
	if len(cands) > 0 {
		s.Neighbors = make([]int, len(cands))
		for i, a := range cands {
			s.Neighbors[i] = a.To
			s.Overlay[a.EdgeID] = core.MarkCandidate
		}
	}

	return s
}

func (w *walker) result(exists bool) Result {
	overlay := make(map[string]core.EdgeMark, len(w.overlay))
	for id, m := range w.overlay {
		overlay[id] = m
	}

	return Result{
		Exists:  exists,
		Visited: append([]int{}, w.order...),
		Stack:   append([]int{}, w.stack...),
		Overlay: overlay,
		Emitted: w.emitted,
	}
}
