// SPDX-License-Identifier: MIT
//
// File: bfs.go
// Role: Breadth-first traversal entry points.

package algorithms

import "github.com/katalvlaran/graphific/core"

// BFS explores g breadth-first from start and returns the discovery tree:
// every vertex of g plus the edges that first reached a vertex.
//
// order decides the expansion order of each vertex's outgoing edges (nil means
// NaturalOrder). On failure g is returned together with the error.
//
// Complexity: O(V+E·log d), d = largest out-degree.
func BFS[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, start core.Vertex[K, V], order Comparator[K, W], opts ...Option) (G, error) {
	return traverse(algorithmBFS, g, start, order, opts)
}

// BFSFromKey is BFS starting at the vertex stored under key.
func BFSFromKey[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, key K, order Comparator[K, W], opts ...Option) (G, error) {
	return traverse(algorithmBFS, g, core.NewVertex[K, V](key), order, opts)
}

// SimpleBFS runs BFS from the smallest key with NaturalOrder.
// An empty graph is returned as is, without error.
func SimpleBFS[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, opts ...Option) (G, error) {
	vs := g.Vertices()
	if len(vs) == 0 {
		return g, nil
	}
	return traverse(algorithmBFS, g, vs[0], NaturalOrder[K, W](), opts)
}
