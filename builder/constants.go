// SPDX-License-Identifier: MIT
// Package builder defines shared constants used by the topology constructors.

package builder

// Constructor names, used as error prefixes.
const (
	MethodPath              = "Path"
	MethodCycle             = "Cycle"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodBinaryTree        = "BinaryTree"
	MethodGrid              = "Grid"
	MethodRandomSparse      = "RandomSparse"
)

// Minimum sizes.
const (
	// MinPathNodes: a path of fewer than 2 nodes has no edges.
	MinPathNodes = 2
	// MinCycleNodes: a ring needs 3 nodes without loops or parallel edges.
	MinCycleNodes = 3
	// MinStarNodes: one center plus at least one leaf.
	MinStarNodes = 2
	// MinWheelNodes: a 3-ring plus the hub.
	MinWheelNodes = 4
	// MinCompleteNodes: K_1 is a single vertex.
	MinCompleteNodes = 1
	// MinPartitionSize applies to each side of K_{n1,n2}.
	MinPartitionSize = 1
	// MinTreeDepth: depth 1 is a root with two children.
	MinTreeDepth = 1
	// MinGridDim: a 1×1 grid has no edges but is valid.
	MinGridDim = 1
	// MinRandomSparseNodes: sampling over a single vertex yields no edges.
	MinRandomSparseNodes = 1
)

// DefaultEdgeWeight is used when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
