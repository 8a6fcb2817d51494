package kruskal_test

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/kruskal"
)

// graphOf builds a graph with ids e0, e1, ... from (u, v, w) triples.
func graphOf(n int, triples ...[3]float64) core.Graph {
	g := core.Graph{N: n}
	for i, t := range triples {
		g.Edges = append(g.Edges, core.Edge{
			ID:     fmt.Sprintf("e%d", i),
			U:      int(t[0]),
			V:      int(t[1]),
			Weight: t[2],
		})
	}

	return g
}

// buildFiveNode is the classic 5-node example with MST weight 7.
func buildFiveNode() core.Graph {
	return graphOf(5,
		[3]float64{1, 2, 1}, [3]float64{1, 3, 4}, [3]float64{1, 5, 1}, [3]float64{2, 4, 2},
		[3]float64{2, 5, 1}, [3]float64{3, 4, 3}, [3]float64{3, 5, 3}, [3]float64{4, 5, 2},
	)
}

// buildMediumGraph creates a connected random graph with n nodes and m edges,
// seeded for reproducibility. Weights are small integers to force ties.
func buildMediumGraph(n, m int, seed int64) core.Graph {
	r := rand.New(rand.NewSource(seed))
	g := core.Graph{N: n}
	add := func(u, v int) {
		g.Edges = append(g.Edges, core.Edge{
			ID:     fmt.Sprintf("e%d", len(g.Edges)),
			U:      u,
			V:      v,
			Weight: float64(r.Intn(10)),
		})
	}
	for i := 2; i <= n; i++ {
		add(1+r.Intn(i-1), i)
	}
	for len(g.Edges) < m {
		add(1+r.Intn(n), 1+r.Intn(n))
	}

	return g
}

// combos enumerates every engine/option combination.
type combo struct {
	name   string
	engine kruskal.Engine
	opts   []kruskal.Option
}

func combos(extra ...kruskal.Option) []combo {
	var out []combo
	for _, engine := range []kruskal.Engine{kruskal.EngineDSU, kruskal.EngineDFS} {
		for _, detailed := range []bool{false, true} {
			for _, compression := range []bool{false, true} {
				opts := append([]kruskal.Option{
					kruskal.WithDetailed(detailed),
					kruskal.WithCompression(compression),
				}, extra...)
				out = append(out, combo{
					name:   fmt.Sprintf("%s/detailed=%v/compression=%v", engine, detailed, compression),
					engine: engine,
					opts:   opts,
				})
			}
		}
	}

	return out
}

func mustTrace(t *testing.T, g core.Graph, engine kruskal.Engine, opts ...kruskal.Option) []core.Step {
	t.Helper()
	steps, err := kruskal.Trace(g, engine, opts...)
	require.NoError(t, err)
	require.NotEmpty(t, steps)

	return steps
}

func terminalKinds(steps []core.Step) []string {
	var out []string
	for _, s := range steps {
		if s.Kind == core.KindAccept || s.Kind == core.KindReject {
			out = append(out, fmt.Sprintf("%s:%s", s.CurrentEdge.ID, s.Kind))
		}
	}

	return out
}

func TestScenario_FiveNodes(t *testing.T) {
	g := buildFiveNode()
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			last := steps[len(steps)-1]
			assert.Equal(t, core.KindEnd, last.Kind)
			assert.Equal(t, 7.0, last.MSTWeight)
			assert.Len(t, last.MSTEdgeIDs, 4)
		})
	}
}

func TestScenario_WeightTies(t *testing.T) {
	g := graphOf(3, [3]float64{1, 2, 5}, [3]float64{2, 3, 5}, [3]float64{1, 3, 5})
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			last := steps[len(steps)-1]
			assert.Equal(t, 10.0, last.MSTWeight)
			assert.Equal(t, []string{"e0", "e1"}, last.MSTEdgeIDs)
			assert.Equal(t, []string{"e0:accept", "e1:accept", "e2:reject"}, terminalKinds(steps))
		})
	}
}

func TestScenario_Disconnected(t *testing.T) {
	g := graphOf(4, [3]float64{1, 2, 1}, [3]float64{3, 4, 1})
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			assert.Equal(t, 2.0, kruskal.FinalWeight(steps))
			assert.Equal(t, []string{"e0", "e1"}, steps[len(steps)-1].MSTEdgeIDs)
		})
	}
}

func TestScenario_SingleNodeNoEdges(t *testing.T) {
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, core.Graph{N: 1}, c.engine, c.opts...)
			require.Len(t, steps, 2)
			assert.Equal(t, core.KindStart, steps[0].Kind)
			assert.Equal(t, core.KindEnd, steps[1].Kind)
			assert.Equal(t, "1", steps[0].Label)
			assert.Equal(t, "2", steps[1].Label)
			assert.Zero(t, steps[1].MSTWeight)
			assert.Empty(t, steps[1].MSTEdgeIDs)
		})
	}
}

func TestEmptyGraph(t *testing.T) {
	steps := mustTrace(t, core.Graph{}, kruskal.EngineDSU, kruskal.WithDetailed(true))
	assert.Len(t, steps, 2)
}

func TestEnginesAgreeWithReference(t *testing.T) {
	for seed := int64(1); seed <= 12; seed++ {
		g := buildMediumGraph(12, 30, seed)
		_, want, err := kruskal.Kruskal(g)
		require.NoError(t, err)

		for _, c := range combos(kruskal.WithMaxFindHops(2), kruskal.WithMaxDFSSteps(5)) {
			t.Run(fmt.Sprintf("seed=%d/%s", seed, c.name), func(t *testing.T) {
				steps := mustTrace(t, g, c.engine, c.opts...)
				assert.Equal(t, want, kruskal.FinalWeight(steps))
			})
		}
	}
}

func TestDeterministicBytes(t *testing.T) {
	g := buildMediumGraph(10, 25, 7)
	for _, c := range combos(kruskal.WithMaxFindHops(1), kruskal.WithMaxDFSSteps(3)) {
		t.Run(c.name, func(t *testing.T) {
			a, err := json.Marshal(mustTrace(t, g, c.engine, c.opts...))
			require.NoError(t, err)
			b, err := json.Marshal(mustTrace(t, g.Clone(), c.engine, c.opts...))
			require.NoError(t, err)
			assert.Equal(t, string(a), string(b))
		})
	}
}

func TestInputOrderIrrelevant(t *testing.T) {
	g := buildFiveNode()
	rev := g.Clone()
	for i, j := 0, len(rev.Edges)-1; i < j; i, j = i+1, j-1 {
		rev.Edges[i], rev.Edges[j] = rev.Edges[j], rev.Edges[i]
	}
	for _, engine := range []kruskal.Engine{kruskal.EngineDSU, kruskal.EngineDFS} {
		a := mustTrace(t, g, engine, kruskal.WithDetailed(true))
		b := mustTrace(t, rev, engine, kruskal.WithDetailed(true))
		assert.Equal(t, a, b)
	}
}

func TestSequenceInvariants(t *testing.T) {
	g := buildMediumGraph(15, 40, 3)
	weights := make(map[string]float64, len(g.Edges))
	for _, e := range g.Edges {
		weights[e.ID] = e.Weight
	}

	for _, c := range combos(kruskal.WithMaxFindHops(2), kruskal.WithMaxDFSSteps(4)) {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			prev := 0.0
			for i, s := range steps {
				assert.Equal(t, i+1, s.SequenceID)

				current := 0
				for _, st := range s.EdgeStatus {
					if st == core.StatusCurrent {
						current++
					}
				}
				assert.LessOrEqual(t, current, 1, "step %s", s.Label)
				assert.Len(t, s.EdgeStatus, len(g.Edges))

				delta := s.MSTWeight - prev
				if s.Kind == core.KindAccept {
					assert.Equal(t, weights[s.CurrentEdge.ID], delta, "step %s", s.Label)
					assert.Equal(t, core.StatusChosen, s.EdgeStatus[s.CurrentEdge.ID])
				} else {
					assert.Zero(t, delta, "step %s", s.Label)
				}
				assert.GreaterOrEqual(t, s.MSTWeight, prev-1e-9)
				prev = s.MSTWeight

				if c.engine == kruskal.EngineDSU {
					require.NotNil(t, s.DSU)
					assert.Nil(t, s.DFS)
				}
				listing := kruskal.Pseudocode(c.engine)
				for _, ln := range s.HighlightedLines {
					assert.True(t, ln >= 1 && ln <= len(listing), "line %d out of listing", ln)
				}
			}
		})
	}
}

func TestNegativeWeights(t *testing.T) {
	g := graphOf(3, [3]float64{1, 2, -4}, [3]float64{2, 3, -1}, [3]float64{1, 3, -5})
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			assert.Equal(t, -9.0, kruskal.FinalWeight(steps))
			assert.Equal(t, []string{"e2", "e0"}, steps[len(steps)-1].MSTEdgeIDs)
		})
	}
}

func TestSelfLoopRejected(t *testing.T) {
	g := graphOf(2, [3]float64{1, 1, 0}, [3]float64{1, 2, 3})
	for _, c := range combos() {
		t.Run(c.name, func(t *testing.T) {
			steps := mustTrace(t, g, c.engine, c.opts...)
			assert.Equal(t, []string{"e0:reject", "e1:accept"}, terminalKinds(steps))
		})
	}
}

func TestLabels_Coarse(t *testing.T) {
	g := graphOf(2, [3]float64{1, 2, 1})
	for _, engine := range []kruskal.Engine{kruskal.EngineDSU, kruskal.EngineDFS} {
		steps := mustTrace(t, g, engine)
		assert.Equal(t, []string{"1", "2", "2.1", "3"}, labels(steps))
	}
}

func TestLabels_DetailedDSU(t *testing.T) {
	g := graphOf(2, [3]float64{1, 2, 1})
	steps := mustTrace(t, g, kruskal.EngineDSU, kruskal.WithDetailed(true))

	assert.Equal(t, []string{"1", "2", "2.1", "2.1.1", "2.1.2", "2.2", "2.2.1", "2.2.2", "2.3", "3"}, labels(steps))
	assert.Equal(t, []core.StepKind{
		core.KindStart, core.KindConsider,
		core.KindFindStart, core.KindFindRoot, core.KindFindSettle,
		core.KindFindStart, core.KindFindRoot, core.KindFindSettle,
		core.KindAccept, core.KindEnd,
	}, kinds(steps))
}

func TestLabels_DetailedDFS(t *testing.T) {
	g := graphOf(3, [3]float64{1, 2, 1}, [3]float64{2, 3, 1}, [3]float64{1, 3, 2})
	steps := mustTrace(t, g, kruskal.EngineDFS, kruskal.WithDetailed(true))

	assert.Equal(t, []string{
		"1",
		"2", "2.1.1", "2.2", // e0: enter 1, dead end
		"3", "3.1.1", "3.1.2", "3.1.3", "3.1.4", "3.1.5", "3.2", // e1: 2 -> 1 and back
		"4", "4.1.1", "4.1.2", "4.1.3", "4.1.4", "4.1.5", "4.1.6", "4.2", // e2: 1 -> 2 -> 3
		"5",
	}, labels(steps))
	assert.Equal(t, core.KindReject, steps[len(steps)-2].Kind)
}

func TestDSU_FindHopsAndCompression(t *testing.T) {
	// e0 1-2, e1 3-4, e2 2-4 builds parent 2->1, 4->3, 3->1; e3 4-1 then walks 4->3->1.
	g := graphOf(4, [3]float64{1, 2, 1}, [3]float64{3, 4, 2}, [3]float64{2, 4, 3}, [3]float64{4, 1, 4})

	steps := mustTrace(t, g, kruskal.EngineDSU, kruskal.WithDetailed(true), kruskal.WithCompression(true))
	var last []core.Step
	for _, s := range steps {
		if strings.HasPrefix(s.Label, "5.1") {
			last = append(last, s)
		}
	}
	assert.Equal(t, []core.StepKind{
		core.KindFindStart, core.KindFindHop, core.KindFindHop,
		core.KindFindRoot, core.KindFindCompress, core.KindFindSettle,
	}, kinds(last))

	hop := last[1]
	assert.Equal(t, core.MarkStart, hop.DSU.NodeOverlay[4])
	assert.Equal(t, core.MarkWalk, hop.DSU.NodeOverlay[3])

	compress := last[4]
	assert.Equal(t, 1, compress.DSU.Parent[4])
	assert.Equal(t, 3, last[3].DSU.Parent[4], "root step precedes the rewrite")

	settle := last[5]
	assert.Equal(t, core.MarkSettled, settle.DSU.NodeOverlay[4])
	assert.Equal(t, core.MarkRoot, settle.DSU.NodeOverlay[1])

	// without compression the chain stays
	steps = mustTrace(t, g, kruskal.EngineDSU, kruskal.WithDetailed(true), kruskal.WithCompression(false))
	for _, s := range steps {
		assert.NotEqual(t, core.KindFindCompress, s.Kind)
	}
	assert.Equal(t, 3, steps[len(steps)-1].DSU.Parent[4])
}

func TestDSU_Truncation(t *testing.T) {
	g := graphOf(4, [3]float64{1, 2, 1}, [3]float64{3, 4, 2}, [3]float64{2, 4, 3}, [3]float64{4, 1, 4})

	for _, compression := range []bool{false, true} {
		t.Run(fmt.Sprintf("compression=%v", compression), func(t *testing.T) {
			full := mustTrace(t, g, kruskal.EngineDSU, kruskal.WithDetailed(true),
				kruskal.WithCompression(compression), kruskal.WithMaxFindHops(100))
			cut := mustTrace(t, g, kruskal.EngineDSU, kruskal.WithDetailed(true),
				kruskal.WithCompression(compression), kruskal.WithMaxFindHops(1))

			var summaries []core.Step
			for _, s := range cut {
				if s.Kind == core.KindFindSummary {
					summaries = append(summaries, s)
				}
			}
			require.Len(t, summaries, 1)
			assert.Equal(t, "5.1.2", summaries[0].Label)
			assert.Equal(t, core.MarkSettled, summaries[0].DSU.NodeOverlay[4])
			assert.Equal(t, core.MarkRoot, summaries[0].DSU.NodeOverlay[1])
			assert.NotContains(t, summaries[0].DSU.NodeOverlay, 3)

			assert.Equal(t, terminalKinds(full), terminalKinds(cut))
			assert.Equal(t, kruskal.FinalWeight(full), kruskal.FinalWeight(cut))
			assert.Equal(t, full[len(full)-1].DSU.Parent, cut[len(cut)-1].DSU.Parent)
		})
	}
}

func TestDFS_Truncation(t *testing.T) {
	// a path 1-2-...-8 followed by the closing edge 1-8
	g := core.Graph{N: 8}
	for i := 1; i < 8; i++ {
		g.Edges = append(g.Edges, core.Edge{ID: fmt.Sprintf("p%d", i), U: i, V: i + 1, Weight: 1})
	}
	g.Edges = append(g.Edges, core.Edge{ID: "z", U: 1, V: 8, Weight: 9})

	full := mustTrace(t, g, kruskal.EngineDFS, kruskal.WithDetailed(true), kruskal.WithMaxDFSSteps(1000))
	cut := mustTrace(t, g, kruskal.EngineDFS, kruskal.WithDetailed(true), kruskal.WithMaxDFSSteps(3))

	var summary *core.Step
	perMajor := map[string]int{}
	for i, s := range cut {
		if s.Kind.Micro() {
			perMajor[strings.SplitN(s.Label, ".", 2)[0]]++
		}
		if s.Kind == core.KindDFSSummary {
			summary = &cut[i]
		}
	}
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.DFS.Source)
	assert.Equal(t, 8, summary.DFS.Target)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, summary.DFS.Stack)
	assert.Equal(t, []int{2, 3}, summary.HighlightedLines)
	for major, n := range perMajor {
		assert.LessOrEqual(t, n, 3+1, "major %s", major)
	}

	assert.Equal(t, terminalKinds(full), terminalKinds(cut))
	assert.Equal(t, "z:reject", terminalKinds(cut)[7])
	assert.Equal(t, full[len(full)-2].DFS.Visited, cut[len(cut)-2].DFS.Visited)
}

func TestDFS_DeadEdgesStayDead(t *testing.T) {
	// star around 1 plus an edge whose endpoints are in different components
	g := graphOf(6,
		[3]float64{1, 2, 1}, [3]float64{1, 3, 1}, [3]float64{1, 4, 1}, [3]float64{5, 6, 1},
		[3]float64{2, 5, 2},
	)
	steps := mustTrace(t, g, kruskal.EngineDFS, kruskal.WithDetailed(true))

	dead := map[string]map[string]bool{}
	sawCandidate := false
	for _, s := range steps {
		if !s.Kind.Micro() {
			continue
		}
		major := strings.SplitN(s.Label, ".", 2)[0]
		if dead[major] == nil {
			dead[major] = map[string]bool{}
		}
		for id, m := range s.DFS.EdgeOverlay {
			if m == core.MarkCandidate {
				sawCandidate = true
			}
			if dead[major][id] {
				assert.Equal(t, core.MarkDead, m, "edge %s revived at %s", id, s.Label)
			}
			if m == core.MarkDead {
				dead[major][id] = true
			}
		}
	}
	assert.True(t, sawCandidate)
	assert.NotEmpty(t, dead["6"], "edge 2-5 search backtracks")
}

func TestOptions(t *testing.T) {
	o, err := kruskal.NewOptions()
	require.NoError(t, err)
	assert.Equal(t, kruskal.DefaultOptions(), o)
	assert.False(t, o.Detailed)
	assert.True(t, o.Compression)
	assert.Equal(t, 16, o.MaxFindHops)
	assert.Equal(t, 200, o.MaxDFSSteps)
	assert.Equal(t, "coarse", o.Mode())

	_, err = kruskal.NewOptions(kruskal.WithMaxFindHops(0))
	assert.ErrorIs(t, err, kruskal.ErrInvalidMaxFindHops)

	_, err = kruskal.NewOptions(kruskal.WithMaxDFSSteps(-1))
	assert.ErrorIs(t, err, kruskal.ErrInvalidMaxDFSSteps)

	base := kruskal.Options{Detailed: true, MaxFindHops: 3, MaxDFSSteps: 4}
	o, err = kruskal.NewOptions(kruskal.WithOptions(base))
	require.NoError(t, err)
	assert.Equal(t, base, o)
	assert.Equal(t, "detailed", o.Mode())
}

func TestErrors(t *testing.T) {
	_, err := kruskal.Trace(buildFiveNode(), kruskal.Engine("bfs"))
	assert.ErrorIs(t, err, kruskal.ErrUnknownEngine)

	_, err = kruskal.ParseEngine("prim")
	assert.ErrorIs(t, err, kruskal.ErrUnknownEngine)

	e, err := kruskal.ParseEngine("dfs")
	require.NoError(t, err)
	assert.Equal(t, kruskal.EngineDFS, e)

	bad := graphOf(2, [3]float64{1, 3, 1})
	_, err = kruskal.BuildDSUTrace(bad)
	assert.ErrorIs(t, err, core.ErrEndpointOutOfRange)
	_, err = kruskal.BuildDFSTrace(bad)
	assert.ErrorIs(t, err, core.ErrEndpointOutOfRange)
	_, _, err = kruskal.Kruskal(bad)
	assert.ErrorIs(t, err, core.ErrEndpointOutOfRange)

	_, err = kruskal.BuildDSUTrace(buildFiveNode(), kruskal.WithMaxFindHops(0))
	assert.ErrorIs(t, err, kruskal.ErrInvalidMaxFindHops)
}

func TestKruskalReference(t *testing.T) {
	forest, total, err := kruskal.Kruskal(buildFiveNode())
	require.NoError(t, err)
	assert.Equal(t, 7.0, total)
	assert.Equal(t, []string{"e0", "e2", "e3", "e5"}, core.EdgeIDs(forest))

	forest, total, err = kruskal.Kruskal(core.Graph{})
	require.NoError(t, err)
	assert.Empty(t, forest)
	assert.Zero(t, total)
}

func TestStepBound(t *testing.T) {
	graphs := map[string]core.Graph{
		"five":   buildFiveNode(),
		"medium": buildMediumGraph(40, 120, 7),
		"empty":  {N: 3, Edges: []core.Edge{}},
	}
	budgets := []kruskal.Option{kruskal.WithMaxFindHops(1), kruskal.WithMaxDFSSteps(1)}
	for name, g := range graphs {
		for _, c := range append(combos(), combos(budgets...)...) {
			t.Run(name+"/"+c.name, func(t *testing.T) {
				o, err := kruskal.NewOptions(c.opts...)
				require.NoError(t, err)
				steps := mustTrace(t, g, c.engine, c.opts...)
				assert.LessOrEqual(t, len(steps), kruskal.StepBound(g.N, len(g.Edges), c.engine, o))
			})
		}
	}

	// huge budgets are clamped by the graph size
	o := kruskal.DefaultOptions()
	o.Detailed, o.MaxFindHops, o.MaxDFSSteps = true, 1<<40, 1<<40
	assert.Equal(t, 2+10*(2+2*(5+4)), kruskal.StepBound(5, 10, kruskal.EngineDSU, o))
	assert.Equal(t, 2+10*(2+20+1), kruskal.StepBound(5, 10, kruskal.EngineDFS, o))
	assert.Equal(t, 2+2*10, kruskal.StepBound(5, 10, kruskal.EngineDFS, kruskal.DefaultOptions()))
}

func TestPseudocode(t *testing.T) {
	assert.Len(t, kruskal.Pseudocode(kruskal.EngineDSU), 34)
	assert.Len(t, kruskal.Pseudocode(kruskal.EngineDFS), 22)
	assert.Nil(t, kruskal.Pseudocode("x"))

	listing := kruskal.Pseudocode(kruskal.EngineDSU)
	listing[0] = "changed"
	assert.Equal(t, "class DSU:", kruskal.DSUPseudocode[0])
}

func labels(steps []core.Step) []string {
	out := make([]string, len(steps))
	for i, s := range steps {
		out[i] = s.Label
	}

	return out
}

func kinds(steps []core.Step) []core.StepKind {
	out := make([]core.StepKind, len(steps))
	for i, s := range steps {
		out[i] = s.Kind
	}

	return out
}
