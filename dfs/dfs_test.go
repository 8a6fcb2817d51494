package dfs_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/dfs"
)

// recorder keeps a compact log of observer events and the last summary.
type recorder struct {
	events  []string
	summary *dfs.State
	exists  bool
}

func (r *recorder) Entered(s dfs.State) {
	r.events = append(r.events, fmt.Sprintf("enter %d", s.Current))
}
func (r *recorder) Explored(s dfs.State, _ []dfs.Arc) {
	r.events = append(r.events, fmt.Sprintf("explore %d %v", s.Current, s.Neighbors))
}
func (r *recorder) Descended(s dfs.State, a dfs.Arc) {
	r.events = append(r.events, fmt.Sprintf("descend %s", a.EdgeID))
}
func (r *recorder) Backtracked(s dfs.State, a dfs.Arc) {
	r.events = append(r.events, fmt.Sprintf("backtrack %d %s", s.Current, a.EdgeID))
}
func (r *recorder) Truncated(s dfs.State, exists bool) {
	r.summary, r.exists = &s, exists
}

// buildChain connects 1-2-...-n with edges e1..e{n-1}.
func buildChain(t *testing.T, n int) *dfs.Adjacency {
	t.Helper()
	adj := dfs.NewAdjacency(n)
	for i := 1; i < n; i++ {
		require.NoError(t, adj.Connect(i, i+1, fmt.Sprintf("e%d", i)))
	}

	return adj
}

// buildFork is 2-1-3 plus an isolated node 4.
func buildFork(t *testing.T) *dfs.Adjacency {
	t.Helper()
	adj := dfs.NewAdjacency(4)
	require.NoError(t, adj.Connect(1, 2, "a"))
	require.NoError(t, adj.Connect(1, 3, "b"))

	return adj
}

func TestReach_SameNode(t *testing.T) {
	rec := &recorder{}
	res, err := dfs.Reach(dfs.NewAdjacency(2), 2, 2, dfs.WithObserver(rec))
	require.NoError(t, err)

	assert.True(t, res.Exists)
	assert.Empty(t, rec.events)
	assert.Empty(t, res.Visited)
}

func TestReach_PathFound(t *testing.T) {
	rec := &recorder{}
	res, err := dfs.Reach(buildChain(t, 3), 1, 3, dfs.WithObserver(rec))
	require.NoError(t, err)

	assert.True(t, res.Exists)
	assert.Equal(t, []string{
		"enter 1", "explore 1 [2]", "descend e1",
		"enter 2", "explore 2 [3]", "descend e2",
	}, rec.events)
	assert.Equal(t, []int{1, 2}, res.Visited)
	assert.Equal(t, []int{1, 2}, res.Stack)
	assert.Equal(t, map[string]core.EdgeMark{"e1": core.MarkActive, "e2": core.MarkActive}, res.Overlay)
	assert.Equal(t, 6, res.Emitted)
	assert.False(t, res.Truncated)
}

func TestReach_BacktrackMarksDead(t *testing.T) {
	rec := &recorder{}
	res, err := dfs.Reach(buildFork(t), 2, 4, dfs.WithObserver(rec))
	require.NoError(t, err)

	assert.False(t, res.Exists)
	assert.Equal(t, []string{
		"enter 2", "explore 2 [1]", "descend a",
		"enter 1", "explore 1 [3]", "descend b",
		"enter 3",
		"backtrack 1 b",
		"backtrack 2 a",
	}, rec.events)
	assert.Equal(t, []int{2, 1, 3}, res.Visited)
	assert.Empty(t, res.Stack)
	assert.Equal(t, map[string]core.EdgeMark{"a": core.MarkDead, "b": core.MarkDead}, res.Overlay)
}

func TestReach_ExploreOverlaysCandidates(t *testing.T) {
	adj := dfs.NewAdjacency(3)
	require.NoError(t, adj.Connect(1, 2, "x"))
	require.NoError(t, adj.Connect(1, 3, "y"))

	var seen dfs.State
	obs := &captureExplore{first: &seen}
	_, err := dfs.Reach(adj, 1, 3, dfs.WithObserver(obs))
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3}, seen.Neighbors)
	assert.Equal(t, core.MarkCandidate, seen.Overlay["x"])
	assert.Equal(t, core.MarkCandidate, seen.Overlay["y"])
}

type captureExplore struct {
	recorder
	first *dfs.State
	done  bool
}

func (c *captureExplore) Explored(s dfs.State, _ []dfs.Arc) {
	if !c.done {
		*c.first, c.done = s, true
	}
}

func TestReach_TruncatedMatchesUnbounded(t *testing.T) {
	adj := buildChain(t, 10)

	rec := &recorder{}
	res, err := dfs.Reach(adj, 1, 10, dfs.WithObserver(rec), dfs.WithMaxSteps(4))
	require.NoError(t, err)

	assert.True(t, res.Truncated)
	assert.Len(t, rec.events, 4)
	assert.Equal(t, 5, res.Emitted)
	require.NotNil(t, rec.summary)
	assert.True(t, rec.exists)
	assert.Equal(t, 9, rec.summary.Current)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, rec.summary.Stack)

	silent, err := dfs.Reach(adj, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, silent.Exists, res.Exists)
	assert.Equal(t, silent.Visited, res.Visited)
	assert.Equal(t, silent.Stack, res.Stack)
	assert.Equal(t, silent.Overlay, res.Overlay)
}

func TestReach_AnyBudgetSameAnswer(t *testing.T) {
	cases := []struct {
		name           string
		adj            *dfs.Adjacency
		source, target int
	}{
		{"chain found", buildChain(t, 8), 8, 1},
		{"fork missing", buildFork(t), 2, 4},
		{"fork found", buildFork(t), 2, 3},
	}
	for _, tc := range cases {
		silent, err := dfs.Reach(tc.adj, tc.source, tc.target)
		require.NoError(t, err)
		for budget := 1; budget <= 30; budget++ {
			t.Run(fmt.Sprintf("%s/budget=%d", tc.name, budget), func(t *testing.T) {
				rec := &recorder{}
				res, err := dfs.Reach(tc.adj, tc.source, tc.target, dfs.WithObserver(rec), dfs.WithMaxSteps(budget))
				require.NoError(t, err)

				assert.Equal(t, silent.Exists, res.Exists)
				assert.Equal(t, silent.Visited, res.Visited)
				assert.Equal(t, silent.Overlay, res.Overlay)
				assert.LessOrEqual(t, len(rec.events), budget)
				assert.Equal(t, res.Truncated, rec.summary != nil)
			})
		}
	}
}

func TestReach_Errors(t *testing.T) {
	adj := dfs.NewAdjacency(2)

	_, err := dfs.Reach(adj, 0, 1)
	assert.ErrorIs(t, err, dfs.ErrNodeOutOfRange)

	_, err = dfs.Reach(adj, 1, 3)
	assert.ErrorIs(t, err, dfs.ErrNodeOutOfRange)

	_, err = dfs.Reach(adj, 1, 2, dfs.WithObserver(&recorder{}), dfs.WithMaxSteps(0))
	assert.ErrorIs(t, err, dfs.ErrInvalidMaxSteps)

	// budget is irrelevant without an observer
	_, err = dfs.Reach(adj, 1, 2, dfs.WithMaxSteps(0))
	assert.NoError(t, err)

	assert.ErrorIs(t, adj.Connect(1, 5, "z"), dfs.ErrNodeOutOfRange)
}

func TestAdjacency_NeighborsCopy(t *testing.T) {
	adj := buildFork(t)
	nb := adj.Neighbors(1)
	require.Len(t, nb, 2)
	nb[0].To = 99

	assert.Equal(t, []dfs.Arc{{To: 2, EdgeID: "a"}, {To: 3, EdgeID: "b"}}, adj.Neighbors(1))
	assert.Nil(t, adj.Neighbors(9))
	assert.Equal(t, 4, adj.Order())
}

func TestStateView(t *testing.T) {
	s := dfs.State{Source: 1, Target: 3, Current: 2, Visited: []int{1, 2}}
	v := s.View()
	assert.Equal(t, 1, v.Source)
	assert.Equal(t, 3, v.Target)
	assert.Equal(t, 2, v.Current)
	assert.Equal(t, []int{1, 2}, v.Visited)
}
