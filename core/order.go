package core

import (
	"sort"
	"strings"
)

// SortEdges returns a new slice with edges ordered ascending by Weight,
// ties broken by lexicographic ID. The input slice is left untouched.
//
// IDs are unique, so (Weight, ID) is a total order and the result does not
// depend on the input order: identical graphs always yield identical traces.
// Complexity: O(E log E).
func SortEdges(edges []Edge) []Edge {
	sorted := make([]Edge, len(edges))
	copy(sorted, edges)

	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Weight != sorted[j].Weight {
			return sorted[i].Weight < sorted[j].Weight
		}

		return strings.Compare(sorted[i].ID, sorted[j].ID) < 0
	})

	return sorted
}

// EdgeIDs projects edges onto their IDs, preserving order.
func EdgeIDs(edges []Edge) []string {
	ids := make([]string, len(edges))
	for i, e := range edges {
		ids[i] = e.ID
	}

	return ids
}
