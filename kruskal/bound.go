package kruskal

// StepBound returns an upper bound on the number of steps a trace of a graph
// with n nodes and m edges emits under engine and o. Services use it to
// refuse work before any snapshot is allocated.
//
// Per edge a trace emits a consider and a verdict step. Detailed mode adds,
//
//	EngineDSU – two finds, each start + hops + root/compress/settle, where
//	            hops never exceed min(MaxFindHops, n);
//	EngineDFS – one search of at most four events per node, cut at
//	            MaxDFSSteps, plus an optional summary.
//
// Start and end add two more.
func StepBound(n, m int, engine Engine, o Options) int {
	perEdge := 2
	if o.Detailed {
		switch engine {
		case EngineDSU:
			perEdge += 2 * (min(o.MaxFindHops, n) + 4)
		case EngineDFS:
			perEdge += min(o.MaxDFSSteps, 4*n) + 1
		}
	}

	return 2 + m*perEdge
}
