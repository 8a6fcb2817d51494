package dsu

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mstrace/core"
)

// ErrInvalidMaxHops indicates a TraceFind call with MaxHops < 1.
var ErrInvalidMaxHops = errors.New("dsu: max hops must be at least 1")

// DSU is a disjoint-set forest over nodes 0..n.
// It is not safe for concurrent use; one trace owns one DSU.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU where every node 0..n is its own root with rank 0.
// A negative n is treated as 0.
func New(n int) *DSU {
	if n < 0 {
		n = 0
	}
	d := &DSU{
		parent: make([]int, n+1),
		rank:   make([]int, n+1),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Len returns the number of tracked nodes, index 0 included.
func (d *DSU) Len() int { return len(d.parent) }

// Find returns the root of u without touching the structure.
func (d *DSU) Find(u int) int {
	for d.parent[u] != u {
		u = d.parent[u]
	}

	return u
}

// Compress returns the root of u and points every node on the walked
// chain directly at it.
func (d *DSU) Compress(u int) int {
	root := d.Find(u)
	for d.parent[u] != root {
		next := d.parent[u]
		d.parent[u] = root
		u = next
	}

	return root
}

// ParentOf returns the current parent pointer of u.
func (d *DSU) ParentOf(u int) int { return d.parent[u] }

// RankOf returns the current rank of u.
func (d *DSU) RankOf(u int) int { return d.rank[u] }

// Parent returns a copy of the parent array.
func (d *DSU) Parent() []int {
	out := make([]int, len(d.parent))
	copy(out, d.parent)

	return out
}

// Rank returns a copy of the rank array.
func (d *DSU) Rank() []int {
	out := make([]int, len(d.rank))
	copy(out, d.rank)

	return out
}

// View snapshots the structure together with the panel focus and overlay.
// The returned view shares nothing with d or with the arguments.
func (d *DSU) View(focus []int, overlay map[int]core.NodeMark) *core.DSUView {
	v := &core.DSUView{
		Parent:     d.Parent(),
		Rank:       d.Rank(),
		FocusNodes: append([]int{}, focus...),
	}
	if len(overlay) > 0 {
		v.NodeOverlay = make(map[int]core.NodeMark, len(overlay))
		for k, m := range overlay {
			v.NodeOverlay[k] = m
		}
	}

	return v
}

// UnionResult narrates a Union call.
type UnionResult struct {
	// Merged is false when both operands were already the same root.
	Merged bool

	// Root survives the merge; Child is attached under it.
	Root  int
	Child int

	// Swapped reports that the second operand had the higher rank and
	// therefore became the surviving root.
	Swapped bool

	// RankIncreased reports a tie that bumped Root's rank.
	RankIncreased bool
}

// Union merges the sets rooted at a and b. Both arguments must be roots.
//
// The lower-rank root is attached under the higher-rank one. On a tie b goes
// under a and a's rank grows by one.
func (d *DSU) Union(a, b int) UnionResult {
	if a == b {
		return UnionResult{Root: a, Child: b}
	}

	res := UnionResult{Merged: true, Root: a, Child: b}
	if d.rank[a] < d.rank[b] {
		res.Root, res.Child, res.Swapped = b, a, true
	}
	d.parent[res.Child] = res.Root
	if d.rank[res.Root] == d.rank[res.Child] {
		d.rank[res.Root]++
		res.RankIncreased = true
	}

	return res
}

// String renders the parent array, handy in test failure output.
func (d *DSU) String() string {
	return fmt.Sprintf("dsu{parent:%v rank:%v}", d.parent[1:], d.rank[1:])
}
