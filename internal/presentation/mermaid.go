package presentation

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/mstrace/core"
)

// Mermaid link styles per edge status.
var mermaidStyles = map[core.EdgeStatus]string{
	core.StatusCurrent:  "stroke:#f59e0b,stroke-width:3px",
	core.StatusChosen:   "stroke:#22c55e,stroke-width:4px",
	core.StatusRejected: "stroke:#ef4444,stroke-dasharray:4 4",
}

// Mermaid writes g as a Mermaid flowchart colored by the edge statuses of s.
// Links are emitted in g.Edges order, so linkStyle indexes match it. Nodes
// touched by the step's union-find overlay or search stack are highlighted.
func Mermaid(w io.Writer, g core.Graph, s core.Step) error {
	var sb strings.Builder
	sb.WriteString("graph LR\n")
	for u := 1; u <= g.N; u++ {
		fmt.Fprintf(&sb, "  n%d((%d))\n", u, u)
	}
	for _, e := range g.Edges {
		fmt.Fprintf(&sb, "  n%d ---|%s: %g| n%d\n", e.U, e.ID, e.Weight, e.V)
	}
	for i, e := range g.Edges {
		if style, ok := mermaidStyles[s.EdgeStatus[e.ID]]; ok {
			fmt.Fprintf(&sb, "  linkStyle %d %s\n", i, style)
		}
	}
	for _, u := range highlighted(s) {
		fmt.Fprintf(&sb, "  style n%d fill:#fde68a\n", u)
	}
	if s.Label != "" {
		fmt.Fprintf(&sb, "  %%%% step %s (%s): %s\n", s.Label, s.Kind, s.Explanation)
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

// highlighted lists nodes to fill: DSU focus rows or the DFS stack.
func highlighted(s core.Step) []int {
	switch {
	case s.DSU != nil:
		return s.DSU.FocusNodes
	case s.DFS != nil && len(s.DFS.Stack) > 0:
		return s.DFS.Stack
	case s.DFS != nil:
		return []int{s.DFS.Source, s.DFS.Target}
	default:
		return nil
	}
}
