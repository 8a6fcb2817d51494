package core

// StepKind tags a Step with the decision point it captures.
type StepKind string

// Top-level kinds, shared by both engines.
const (
	KindStart    StepKind = "start"
	KindConsider StepKind = "consider"
	KindAccept   StepKind = "accept"
	KindReject   StepKind = "reject"
	KindEnd      StepKind = "end"
)

// Union-find micro-step kinds.
const (
	KindFindStart    StepKind = "find-start"
	KindFindHop      StepKind = "find-hop"
	KindFindRoot     StepKind = "find-root"
	KindFindCompress StepKind = "find-compress"
	KindFindSettle   StepKind = "find-settle"
	KindFindSummary  StepKind = "find-summary"
)

// Reachability micro-step kinds.
const (
	KindDFSEnter     StepKind = "dfs-enter"
	KindDFSExplore   StepKind = "dfs-explore"
	KindDFSDescend   StepKind = "dfs-descend"
	KindDFSBacktrack StepKind = "dfs-backtrack"
	KindDFSSummary   StepKind = "dfs-summary"
)

// Micro reports whether k is an engine micro-step (detailed mode only).
func (k StepKind) Micro() bool {
	switch k {
	case KindStart, KindConsider, KindAccept, KindReject, KindEnd:
		return false
	default:
		return true
	}
}

// Summary reports whether k is a truncation summary.
func (k StepKind) Summary() bool {
	return k == KindFindSummary || k == KindDFSSummary
}

// Step is one immutable snapshot of a Kruskal run.
//
// Every slice and map is owned by the Step; nothing is shared with other
// steps or with the engine that produced it.
type Step struct {
	// SequenceID is 1-based and strictly increasing within a trace.
	SequenceID int `json:"sequenceId" yaml:"sequenceId"`

	// Label is the hierarchical position, e.g. "3", "3.1" or "3.1.2".
	Label string `json:"label" yaml:"label"`

	// Kind names the decision point.
	Kind StepKind `json:"kind" yaml:"kind"`

	// CurrentEdge is the edge being processed, nil on start/end steps.
	CurrentEdge *Edge `json:"currentEdge" yaml:"currentEdge"`

	// EdgeStatus maps every edge ID to its status at this step.
	EdgeStatus map[string]EdgeStatus `json:"edgeStatus" yaml:"edgeStatus"`

	// SortedEdgeIDs is the (weight, id) processing order.
	SortedEdgeIDs []string `json:"sortedEdgeIds" yaml:"sortedEdgeIds"`

	// MSTEdgeIDs lists accepted edges in acceptance order.
	MSTEdgeIDs []string `json:"mstEdgeIds" yaml:"mstEdgeIds"`

	// MSTWeight is the running forest weight.
	MSTWeight float64 `json:"mstWeight" yaml:"mstWeight"`

	// Explanation is the narration shown next to the graph.
	Explanation string `json:"explanation" yaml:"explanation"`

	// HighlightedLines are 1-based lines of the paired pseudo-code listing.
	HighlightedLines []int `json:"highlightedLines" yaml:"highlightedLines"`

	// DSU is set on union-find traces.
	DSU *DSUView `json:"dsu,omitempty" yaml:"dsu,omitempty"`

	// DFS is set on reachability traces.
	DFS *DFSView `json:"dfs,omitempty" yaml:"dfs,omitempty"`
}

// DSUView is the union-find panel state.
type DSUView struct {
	// Parent and Rank are indexed 0..N; index 0 is unused.
	Parent []int `json:"parent" yaml:"parent"`
	Rank   []int `json:"rank" yaml:"rank"`

	// FocusNodes are the rows the panel scrolls to, in focus order.
	FocusNodes []int `json:"focusNodes" yaml:"focusNodes"`

	// NodeOverlay colors nodes touched by the current find.
	NodeOverlay map[int]NodeMark `json:"nodeOverlay,omitempty" yaml:"nodeOverlay,omitempty"`
}

// DFSView is the reachability panel state.
type DFSView struct {
	Source  int `json:"source" yaml:"source"`
	Target  int `json:"target" yaml:"target"`
	Current int `json:"current,omitempty" yaml:"current,omitempty"`

	// Neighbors are the candidates listed by an explore step.
	Neighbors []int `json:"neighbors,omitempty" yaml:"neighbors,omitempty"`

	// Visited is in visiting order.
	Visited []int `json:"visited" yaml:"visited"`

	// Stack is the current search path, bottom first.
	Stack []int `json:"stack,omitempty" yaml:"stack,omitempty"`

	// EdgeOverlay colors MST edges by ID.
	EdgeOverlay map[string]EdgeMark `json:"edgeOverlay,omitempty" yaml:"edgeOverlay,omitempty"`
}

// Clone returns a deep copy of s.
func (s Step) Clone() Step {
	out := s
	if s.CurrentEdge != nil {
		e := *s.CurrentEdge
		out.CurrentEdge = &e
	}
	out.EdgeStatus = cloneMap(s.EdgeStatus)
	out.SortedEdgeIDs = cloneSlice(s.SortedEdgeIDs)
	out.MSTEdgeIDs = cloneSlice(s.MSTEdgeIDs)
	out.HighlightedLines = cloneSlice(s.HighlightedLines)
	if s.DSU != nil {
		out.DSU = s.DSU.Clone()
	}
	if s.DFS != nil {
		out.DFS = s.DFS.Clone()
	}

	return out
}

// Clone returns a deep copy of v.
func (v *DSUView) Clone() *DSUView {
	if v == nil {
		return nil
	}

	return &DSUView{
		Parent:      cloneSlice(v.Parent),
		Rank:        cloneSlice(v.Rank),
		FocusNodes:  cloneSlice(v.FocusNodes),
		NodeOverlay: cloneMap(v.NodeOverlay),
	}
}

// Clone returns a deep copy of v.
func (v *DFSView) Clone() *DFSView {
	if v == nil {
		return nil
	}

	return &DFSView{
		Source:      v.Source,
		Target:      v.Target,
		Current:     v.Current,
		Neighbors:   cloneSlice(v.Neighbors),
		Visited:     cloneSlice(v.Visited),
		Stack:       cloneSlice(v.Stack),
		EdgeOverlay: cloneMap(v.EdgeOverlay),
	}
}

// cloneSlice copies s; nil stays nil so JSON keeps "null" vs "[]" stable.
func cloneSlice[T any](s []T) []T {
	if s == nil {
		return nil
	}
	out := make([]T, len(s))
	copy(out, s)

	return out
}

func cloneMap[K comparable, V any](m map[K]V) map[K]V {
	if m == nil {
		return nil
	}
	out := make(map[K]V, len(m))
	for k, v := range m {
		out[k] = v
	}

	return out
}
