// Package builder generates deterministic fixture graphs for the tracers,
// their tests and the command-line generate command.
//
// The package offers:
//
//   - BuildGraph(bopts, cons...): the single orchestrator. Every constructor
//     appends a fresh block of 1-based nodes, so composing several gives a
//     disjoint union. Edge ids are "e0", "e1", ... in emission order, the
//     same scheme the text parser uses.
//   - Constructors: Path, Cycle, Star, Wheel, Complete, Grid, RandomSparse
//     and BinaryMerge (the deepest tree union by rank allows, for long find
//     walks in detailed DSU traces).
//   - Options: WithSeed, WithRand, WithWeightFn, WithConstantWeight,
//     WithUniformWeight, WithIntegerWeights.
//   - Weight distributions: DefaultWeightFn, ConstantWeightFn,
//     UniformWeightFn, IntegerWeightFn.
//   - FromFamily / Families: name lookup for callers that pick a family at
//     run time.
//
// Guarantees:
//
//   - Same options, seed and constructor order give identical graphs.
//   - Constructors return sentinel errors (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource) and never panic; option
//     constructors panic on meaningless input.
//   - BuildGraph validates the result against core.Graph.Validate.
package builder
