// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates an empty
//     core.Graph, resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of nodes, so composing
//     constructors yields a disjoint union (a forest input for Kruskal).
//   - Edge IDs are "e0", "e1", ... in emission order across all constructors.
//   - Determinism: same options, seed and constructor order give identical
//     graphs.
//   - Constructors never panic; option constructors do on meaningless input.

package builder

import (
	"fmt"

	"github.com/katalvlaran/mstrace/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Only append: nodes above g.N and edges after g.Edges.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates an empty graph, resolves the builder configuration from
// bopts and applies all constructors in order. The result is validated
// against the core input contract before it is returned.
//
// Errors:
//   - Constructor errors wrapped as "BuildGraph: %w"; branch with errors.Is
//     against ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource.
//   - ErrConstructFailed for a nil constructor or an invalid result
//     (for example a WeightFn that produced NaN).
//
// Complexity: Σ cost of each constructor plus O(E) validation.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (core.Graph, error) {
	var g core.Graph
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return core.Graph{}, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(&g, cfg); err != nil {
			return core.Graph{}, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if g.Edges == nil {
		g.Edges = []core.Edge{}
	}
	if err := g.Validate(); err != nil {
		return core.Graph{}, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}

	return g, nil
}

// MustBuild is BuildGraph for tests and examples; it panics on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
