// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// families.go - name lookup for command-line and service callers.

package builder

import (
	"fmt"
	"sort"
	"strings"
)

// FamilyParams carries the size knobs a family may read. Unused fields are
// ignored by families that do not need them.
type FamilyParams struct {
	// N is the node count (Path, Cycle, Star, Wheel, Complete, RandomSparse)
	// or the number of rounds (BinaryMerge) or rows (Grid).
	N int
	// Cols is the Grid width; 0 means square.
	Cols int
	// P is the RandomSparse edge probability.
	P float64
}

var families = map[string]func(FamilyParams) Constructor{
	"path":     func(p FamilyParams) Constructor { return Path(p.N) },
	"cycle":    func(p FamilyParams) Constructor { return Cycle(p.N) },
	"star":     func(p FamilyParams) Constructor { return Star(p.N) },
	"wheel":    func(p FamilyParams) Constructor { return Wheel(p.N) },
	"complete": func(p FamilyParams) Constructor { return Complete(p.N) },
	"random":   func(p FamilyParams) Constructor { return RandomSparse(p.N, p.P) },
	"merge":    func(p FamilyParams) Constructor { return BinaryMerge(p.N) },
	"grid": func(p FamilyParams) Constructor {
		cols := p.Cols
		if cols == 0 {
			cols = p.N
		}
		return Grid(p.N, cols)
	},
}

// Families lists the known family names in sorted order.
func Families() []string {
	names := make([]string, 0, len(families))
	for name := range families {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// FromFamily resolves a family name (case-insensitive) to its Constructor.
func FromFamily(name string, p FamilyParams) (Constructor, error) {
	mk, ok := families[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q (known: %s): %w", name, strings.Join(Families(), ", "), ErrUnknownFamily)
	}

	return mk(p), nil
}
