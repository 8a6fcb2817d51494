// SPDX-License-Identifier: MIT
// Package: mstrace/builder
//
// constants.go - method names and minimum sizes shared by constructors.

package builder

// Method names prefix constructor errors.
const (
	MethodPath         = "Path"
	MethodCycle        = "Cycle"
	MethodStar         = "Star"
	MethodWheel        = "Wheel"
	MethodComplete     = "Complete"
	MethodGrid         = "Grid"
	MethodRandomSparse = "RandomSparse"
	MethodBinaryMerge  = "BinaryMerge"
)

// Minimum sizes. Below these a family degenerates into a smaller one.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: fewer than 3 nodes cannot form a simple ring.
	MinCycleNodes = 3
	// MinStarNodes: hub plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: hub plus a rim cycle of at least 3.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 has no edges.
	MinCompleteNodes = 2
	// MinGridDim applies to both rows and cols.
	MinGridDim = 1
	// MinRandomNodes: RandomSparse needs at least one pair.
	MinRandomNodes = 2
	// MinMergeRounds: BinaryMerge with 1 round is a single edge.
	MinMergeRounds = 1
	// MaxMergeRounds keeps 2^rounds nodes within reason.
	MaxMergeRounds = 16
)

// Probability bounds for RandomSparse.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
