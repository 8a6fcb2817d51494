package dfs

import (
	"errors"

	"github.com/katalvlaran/mstrace/core"
)

var (
	// ErrNodeOutOfRange indicates a node outside 1..n of the Adjacency.
	ErrNodeOutOfRange = errors.New("dfs: node out of range")

	// ErrInvalidMaxSteps indicates a narrated search with MaxSteps < 1.
	ErrInvalidMaxSteps = errors.New("dfs: max steps must be at least 1")
)

// DefaultMaxSteps bounds narration per Reach call unless overridden.
const DefaultMaxSteps = 200

// Arc is one directed half of an accepted undirected edge.
type Arc struct {
	To     int
	EdgeID string
}

// State is a self-contained snapshot handed to an Observer.
// Every slice and map is a fresh copy the observer may keep.
type State struct {
	Source int
	Target int

	// Current is the node whose frame produced the call.
	Current int

	// Neighbors is set on Explored only.
	Neighbors []int

	// Visited is in visiting order.
	Visited []int

	// Stack is the live search path, bottom first.
	Stack []int

	// Overlay holds active/dead marks, plus candidate marks on Explored.
	Overlay map[string]core.EdgeMark
}

// View converts s into the step-level panel snapshot.
func (s State) View() *core.DFSView {
	return &core.DFSView{
		Source:      s.Source,
		Target:      s.Target,
		Current:     s.Current,
		Neighbors:   s.Neighbors,
		Visited:     s.Visited,
		Stack:       s.Stack,
		EdgeOverlay: s.Overlay,
	}
}

// Observer receives narrated search events. Implementations must not retain
// the Adjacency; State values are already copies.
type Observer interface {
	// Entered fires when a node is marked visited and pushed.
	Entered(s State)

	// Explored lists the current unvisited neighbors of s.Current.
	Explored(s State, candidates []Arc)

	// Descended fires once arc is chosen and marked active.
	Descended(s State, arc Arc)

	// Backtracked fires after the branch through arc failed; arc is dead.
	Backtracked(s State, arc Arc)

	// Truncated is the single summary delivered once the budget ran out.
	// s is the final state of an unbounded search and exists its answer.
	Truncated(s State, exists bool)
}

// Options configures Reach.
type Options struct {
	// MaxSteps bounds observer calls per Reach (Truncated excluded).
	MaxSteps int

	// Observer, when nil, turns narration off; the budget is then ignored.
	Observer Observer
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns silent search with DefaultMaxSteps.
func DefaultOptions() Options {
	return Options{MaxSteps: DefaultMaxSteps}
}

// WithObserver installs obs as the narration sink.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// WithMaxSteps sets the narration budget.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// Result is the outcome of Reach.
type Result struct {
	// Exists reports whether target is reachable from source.
	Exists bool

	// Visited lists visited nodes in visiting order. The target itself is
	// never recorded, matching the success test on entry.
	Visited []int

	// Stack is the search path when the search ended (empty on failure).
	Stack []int

	// Overlay holds the final active/dead marks.
	Overlay map[string]core.EdgeMark

	// Truncated reports that narration was cut by the budget.
	Truncated bool

	// Emitted counts observer calls, Truncated included.
	Emitted int
}
