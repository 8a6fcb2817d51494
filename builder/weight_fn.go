// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// weight_fn.go - edge weight distributions for graph constructors.
//
// Weights may be negative; Kruskal only compares them. Generators must stay
// finite, BuildGraph rejects a graph that carries NaN or ±Inf.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the weight assigned to each edge when no custom
// WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces an edge weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is not finite.
func ConstantWeightFn(value float64) WeightFn {
	if !finite(value) {
		panic(fmt.Sprintf("builder: ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [lo, hi).
// Panics if a bound is not finite or hi < lo.
// With a nil rng it yields lo, keeping unseeded builds deterministic.
func UniformWeightFn(lo, hi float64) WeightFn {
	if !finite(lo) || !finite(hi) || hi < lo {
		panic(fmt.Sprintf("builder: UniformWeightFn: require finite lo <= hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in [lo, hi].
// Panics if hi < lo. With a nil rng it yields lo.
func IntegerWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("builder: IntegerWeightFn: require lo <= hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
