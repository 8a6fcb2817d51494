package trace

import "github.com/katalvlaran/mstrace/core"

// Draft carries the per-step fields a builder supplies to Emit.
type Draft struct {
	Kind        core.StepKind
	Explanation string
	Lines       []int
	DSU         *core.DSUView
	DFS         *core.DFSView
}

// Sequencer accumulates the steps of one trace. It is not safe for
// concurrent use and must not be reused across traces.
type Sequencer struct {
	sortedIDs []string
	status    map[string]core.EdgeStatus
	mst       []string
	weight    float64
	current   *core.Edge
	steps     []core.Step
}

// NewSequencer starts a trace over edges already in processing order.
// Every edge begins as StatusNormal.
func NewSequencer(sorted []core.Edge) *Sequencer {
	s := &Sequencer{
		sortedIDs: core.EdgeIDs(sorted),
		status:    make(map[string]core.EdgeStatus, len(sorted)),
		mst:       []string{},
	}
	for _, e := range sorted {
		s.status[e.ID] = core.StatusNormal
	}

	return s
}

// Consider makes e the current edge. Any edge still marked current falls
// back to normal, so at most one edge is current per step.
func (s *Sequencer) Consider(e core.Edge) {
	for id, st := range s.status {
		if st == core.StatusCurrent {
			s.status[id] = core.StatusNormal
		}
	}
	s.status[e.ID] = core.StatusCurrent
	s.current = &e
}

// Accept marks e chosen and adds its weight to the forest.
func (s *Sequencer) Accept(e core.Edge) {
	s.status[e.ID] = core.StatusChosen
	s.mst = append(s.mst, e.ID)
	s.weight += e.Weight
}

// Reject marks e as closing a cycle.
func (s *Sequencer) Reject(e core.Edge) {
	s.status[e.ID] = core.StatusRejected
}

// Release clears the current edge, as on the closing step.
func (s *Sequencer) Release() { s.current = nil }

// Emit appends a snapshot at position c and returns a copy of it.
func (s *Sequencer) Emit(c Cursor, d Draft) core.Step {
	live := core.Step{
		SequenceID:       len(s.steps) + 1,
		Label:            c.String(),
		Kind:             d.Kind,
		CurrentEdge:      s.current,
		EdgeStatus:       s.status,
		SortedEdgeIDs:    s.sortedIDs,
		MSTEdgeIDs:       s.mst,
		MSTWeight:        s.weight,
		Explanation:      d.Explanation,
		HighlightedLines: d.Lines,
		DSU:              d.DSU,
		DFS:              d.DFS,
	}
	step := live.Clone()
	s.steps = append(s.steps, step)

	return step.Clone()
}

// Steps hands over the emitted sequence.
func (s *Sequencer) Steps() []core.Step { return s.steps }

// Len is the number of steps emitted so far.
func (s *Sequencer) Len() int { return len(s.steps) }

// Weight is the running forest weight.
func (s *Sequencer) Weight() float64 { return s.weight }

// MST returns a copy of the accepted edge IDs in acceptance order.
func (s *Sequencer) MST() []string { return append([]string{}, s.mst...) }
