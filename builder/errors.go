// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w.
//   • Constructors never panic; validation panics are confined to option
//     constructors (WithX...).

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, rounds)
// is smaller than the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without an
// RNG. Provide WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: random source required")

// ErrUnknownFamily indicates a family name that FromFamily does not know.
var ErrUnknownFamily = errors.New("builder: unknown graph family")

// ErrConstructFailed indicates a nil constructor or a built graph that breaks
// the core input contract.
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes a sentinel with the method name and formatted
// parameter context: "<Method>: <details>: <sentinel>".
func builderErrorf(method string, sentinel error, format string, args ...any) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
