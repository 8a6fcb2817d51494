package kruskal_test

import (
	"fmt"

	"github.com/katalvlaran/mstrace/core"
	"github.com/katalvlaran/mstrace/kruskal"
)

// ExampleBuildDSUTrace prints the coarse union-find trace of a triangle.
//
//	1 ──1── 2
//	 \     /
//	  4   2
//	   \ /
//	    3
func ExampleBuildDSUTrace() {
	g := core.Graph{N: 3, Edges: []core.Edge{
		{ID: "ab", U: 1, V: 2, Weight: 1},
		{ID: "bc", U: 2, V: 3, Weight: 2},
		{ID: "ac", U: 1, V: 3, Weight: 4},
	}}

	steps, err := kruskal.BuildDSUTrace(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, s := range steps {
		fmt.Printf("%-4s %-8s weight=%g\n", s.Label, s.Kind, s.MSTWeight)
	}
	// Output:
	// 1    start    weight=0
	// 2    consider weight=0
	// 2.1  accept   weight=1
	// 3    consider weight=1
	// 3.1  accept   weight=3
	// 4    consider weight=3
	// 4.1  reject   weight=3
	// 5    end      weight=3
}

// ExampleBuildDFSTrace shows the detailed search for the closing edge of the
// same triangle.
func ExampleBuildDFSTrace() {
	g := core.Graph{N: 3, Edges: []core.Edge{
		{ID: "ab", U: 1, V: 2, Weight: 1},
		{ID: "bc", U: 2, V: 3, Weight: 2},
		{ID: "ac", U: 1, V: 3, Weight: 4},
	}}

	steps, _ := kruskal.BuildDFSTrace(g, kruskal.WithDetailed(true))
	for _, s := range steps {
		if s.Label[0] == '4' {
			fmt.Println(s.Label, s.Explanation)
		}
	}
	// Output:
	// 4 Consider edge ac (1-3) with weight 4: is 3 already reachable from 1?
	// 4.1.1 Enter node 1 and mark it visited.
	// 4.1.2 Explore unvisited neighbors of 1: {2}.
	// 4.1.3 Descend from 1 to 2 along ab.
	// 4.1.4 Enter node 2 and mark it visited.
	// 4.1.5 Explore unvisited neighbors of 2: {3}.
	// 4.1.6 Descend from 2 to 3 along bc.
	// 4.2 A path from 1 to 3 already exists in the forest, so ac would close a cycle. Rejected.
}

// ExampleKruskal computes the untraced reference forest.
func ExampleKruskal() {
	g := core.Graph{N: 4, Edges: []core.Edge{
		{ID: "e0", U: 1, V: 2, Weight: 1},
		{ID: "e1", U: 3, V: 4, Weight: 1},
	}}

	forest, total, err := kruskal.Kruskal(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(core.EdgeIDs(forest), total)
	// Output: [e0 e1] 2
}
