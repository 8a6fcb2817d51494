package kruskal

// DSUPseudocode is the listing the union-find trace highlights, one entry
// per line. Step.HighlightedLines index it 1-based.
var DSUPseudocode = []string{
	"class DSU:",
	"    def __init__(self, n):",
	"        self.parent = list(range(n + 1))",
	"        self.rank = [0] * (n + 1)",
	"",
	"    def find(self, u):",
	"        root = u",
	"        while self.parent[root] != root:",
	"            root = self.parent[root]",
	"        if self.compress:",
	"            while self.parent[u] != root:",
	"                self.parent[u], u = root, self.parent[u]",
	"        return root",
	"",
	"    def union(self, u, v):",
	"        pu, pv = self.find(u), self.find(v)",
	"        if pu == pv:",
	"            return False",
	"        if self.rank[pu] < self.rank[pv]:",
	"            pu, pv = pv, pu",
	"        self.parent[pv] = pu",
	"        if self.rank[pu] == self.rank[pv]:",
	"            self.rank[pu] += 1",
	"        return True",
	"",
	"def kruskal(n, edges):",
	"    edges.sort(key=lambda e: (e.w, e.id))",
	"    dsu = DSU(n)",
	"    mst_weight, mst_edges = 0, []",
	"    for e in edges:",
	"        if dsu.union(e.u, e.v):",
	"            mst_weight += e.w",
	"            mst_edges.append(e)",
	"    return mst_weight, mst_edges",
}

// DFSPseudocode is the listing the reachability trace highlights.
var DFSPseudocode = []string{
	"def has_path(u, target, adj, visited):",
	"    if u == target:",
	"        return True",
	"    visited.add(u)",
	"    for x in adj[u]:",
	"        if x not in visited:",
	"            if has_path(x, target, adj, visited):",
	"                return True",
	"    return False",
	"",
	"def kruskal_dfs(n, edges):",
	"    edges.sort(key=lambda e: (e.w, e.id))",
	"    adj = {i: [] for i in range(1, n + 1)}",
	"    mst_weight, mst_edges = 0, []",
	"    for e in edges:",
	"        if has_path(e.u, e.v, adj, set()):",
	"            continue",
	"        adj[e.u].append(e.v)",
	"        adj[e.v].append(e.u)",
	"        mst_weight += e.w",
	"        mst_edges.append(e)",
	"    return mst_weight, mst_edges",
}

// Pseudocode returns the listing paired with engine, or nil.
func Pseudocode(engine Engine) []string {
	switch engine {
	case EngineDSU:
		return append([]string(nil), DSUPseudocode...)
	case EngineDFS:
		return append([]string(nil), DFSPseudocode...)
	default:
		return nil
	}
}

// Highlighted lines of DSUPseudocode per step kind.
var (
	dsuLinesStart     = []int{26, 27, 28, 29}
	dsuLinesConsider  = []int{30}
	dsuLinesFindStart = []int{6, 7, 16}
	dsuLinesHop       = []int{8, 9}
	dsuLinesRoot      = []int{8, 13}
	dsuLinesCompress  = []int{10, 11, 12}
	dsuLinesSettle    = []int{13}
	dsuLinesSummary   = []int{8, 9, 13}
	dsuLinesAccept    = []int{19, 20, 21, 22, 23, 24, 31, 32, 33}
	dsuLinesReject    = []int{17, 18, 31}
	dsuLinesEnd       = []int{34}
)

// Highlighted lines of DFSPseudocode per step kind.
var (
	dfsLinesStart      = []int{11, 12, 13, 14}
	dfsLinesConsider   = []int{15, 16}
	dfsLinesEnter      = []int{4}
	dfsLinesExplore    = []int{5, 6}
	dfsLinesDescend    = []int{7}
	dfsLinesBacktrack  = []int{9}
	dfsLinesFoundSum   = []int{2, 3}
	dfsLinesMissingSum = []int{9}
	dfsLinesReject     = []int{16, 17}
	dfsLinesAccept     = []int{18, 19, 20, 21}
	dfsLinesEnd        = []int{22}
)
