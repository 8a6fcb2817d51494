package dsu

import "fmt"

// FindOptions bounds and configures a traced find.
type FindOptions struct {
	// MaxHops caps the number of Hopped notifications per call (>= 1).
	MaxHops int

	// Compression rewires every node on the walked chain to the root.
	Compression bool
}

// FindObserver receives the phases of a traced find in order:
//
//	FindStarted, Hopped*, then either
//	RootFound, [Compressed], Settled   – walk reached the root within MaxHops
//	Truncated                          – walk hit MaxHops first
//
// Observers are called after the structure has been updated for that phase,
// so a snapshot taken inside a callback shows the state the phase describes.
type FindObserver interface {
	// FindStarted fires before the first hop; start is the queried node.
	FindStarted(start int)

	// Hopped fires once per parent hop; hop is 1-based.
	Hopped(start, from, to, hop int)

	// RootFound fires when the walk stands on a root.
	RootFound(start, root, hops int)

	// Compressed fires once, only if some walked node was rewired.
	Compressed(start, root int, rewired []int)

	// Settled closes the start -> root pairing.
	Settled(start, root int)

	// Truncated replaces RootFound/Compressed/Settled when the walk was cut
	// short. root is the true root and rewired lists every node compressed
	// over the full chain (nil without compression).
	Truncated(start, root, hops int, rewired []int)
}

// FindResult describes a traced find.
type FindResult struct {
	// Root is always the true representative of the queried node.
	Root int

	// Path holds the nodes actually walked, start first. When Truncated the
	// last element is where the walk stopped, not the root.
	Path []int

	// Hops equals the number of Hopped notifications delivered.
	Hops int

	// Truncated reports that MaxHops was reached before the root.
	Truncated bool

	// Rewired lists nodes whose parent was changed by compression.
	Rewired []int
}

// TraceFind resolves the root of start while narrating each phase to obs.
// A nil obs is allowed and silences the narration without changing the result.
//
// Steps:
//  1. Walk parent pointers, one Hopped per hop, stopping at a root or when
//     MaxHops hops have been emitted while still off-root.
//  2. Reached root: RootFound, compress the walked chain if enabled, Settled.
//  3. Cut short: confirm with Find, compress the full real chain if enabled,
//     then a single Truncated.
//
// Complexity: O(chain length); notifications are O(MaxHops).
func (d *DSU) TraceFind(start int, opts FindOptions, obs FindObserver) (FindResult, error) {
	if opts.MaxHops < 1 {
		return FindResult{}, fmt.Errorf("max hops %d: %w", opts.MaxHops, ErrInvalidMaxHops)
	}
	if obs == nil {
		obs = nopObserver{}
	}

	// 1. Walk.
	obs.FindStarted(start)
	path := []int{start}
	cur, hops := start, 0
	for d.parent[cur] != cur {
		if hops == opts.MaxHops {
			return d.finishTruncated(start, cur, path, opts, obs), nil
		}
		next := d.parent[cur]
		hops++
		path = append(path, next)
		obs.Hopped(start, cur, next, hops)
		cur = next
	}

	// 2. Root reached within budget.
	root := cur
	obs.RootFound(start, root, hops)
	var rewired []int
	if opts.Compression {
		rewired = d.rewire(path, root)
		if len(rewired) > 0 {
			obs.Compressed(start, root, rewired)
		}
	}
	obs.Settled(start, root)

	return FindResult{Root: root, Path: path, Hops: hops, Rewired: rewired}, nil
}

// finishTruncated completes a walk that stopped at node stop.
func (d *DSU) finishTruncated(start, stop int, path []int, opts FindOptions, obs FindObserver) FindResult {
	root := d.Find(stop)

	var rewired []int
	if opts.Compression {
		full := append([]int{}, path...)
		for u := d.parent[stop]; u != root; u = d.parent[u] {
			full = append(full, u)
		}
		rewired = d.rewire(full, root)
	}
	hops := len(path) - 1
	obs.Truncated(start, root, hops, rewired)

	return FindResult{Root: root, Path: path, Hops: hops, Truncated: true, Rewired: rewired}
}

// rewire points every non-root node of chain at root and returns the nodes
// whose parent actually changed, in chain order.
func (d *DSU) rewire(chain []int, root int) []int {
	var changed []int
	for _, u := range chain {
		if u == root || d.parent[u] == root {
			continue
		}
		d.parent[u] = root
		changed = append(changed, u)
	}

	return changed
}

type nopObserver struct{}

func (nopObserver) FindStarted(int) {}
func (nopObserver) Hopped(int, int, int, int) {}
func (nopObserver) RootFound(int, int, int) {}
func (nopObserver) Compressed(int, int, []int) {}
func (nopObserver) Settled(int, int) {}
func (nopObserver) Truncated(int, int, int, []int) {}
