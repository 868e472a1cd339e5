// SPDX-License-Identifier: MIT

// Package graphific is an in-memory library of persistent, generic graphs
// and the traversals that run on them.
//
// Every mutation returns a new graph and leaves the receiver untouched, so
// a snapshot can be shared freely between goroutines and kept as history.
//
// Subpackages:
//
//	core/         Vertex, Edge, Directed and Undirected stores, Kinship indexes,
//	              loop and cycle policies, GraphError.
//	algorithms/   BFS and DFS producing traversal trees, with comparators,
//	              hooks, cancellation, zap logging, Prometheus metrics and
//	              OpenTelemetry spans.
//	builder/      deterministic topology fixtures (paths, cycles, wheels,
//	              grids, trees, complete and random graphs).
//
// Quick example:
//
//	g, _ := core.NewDirectedFrom(
//		[]core.Vertex[int, string]{core.NewVertex[int, string](1), core.NewVertex[int, string](2)},
//		[]core.Edge[int, int]{core.NewEdge[int, int](1, 2)},
//	)
//	tree, _ := algorithms.SimpleBFS[int, string, int](g)
//	fmt.Println(tree.Edges()) // [1--0->2]
//
// See examples/ for runnable programs.
package graphific
