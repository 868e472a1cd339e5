// SPDX-License-Identifier: MIT
//
// File: dfs.go
// Role: Depth-first traversal entry points.
// Note:
//   - Iterative: a vertex is marked when pushed, not when popped, so the result
//     is the tree of first discovery under a LIFO frontier.

package algorithms

import "github.com/katalvlaran/graphific/core"

// DFS explores g depth-first from start; see BFS for the result shape.
func DFS[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, start core.Vertex[K, V], order Comparator[K, W], opts ...Option) (G, error) {
	return traverse(algorithmDFS, g, start, order, opts)
}

// DFSFromKey is DFS starting at the vertex stored under key.
func DFSFromKey[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, key K, order Comparator[K, W], opts ...Option) (G, error) {
	return traverse(algorithmDFS, g, core.NewVertex[K, V](key), order, opts)
}

// SimpleDFS runs DFS from the smallest key with NaturalOrder.
// An empty graph is returned as is, without error.
func SimpleDFS[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](g G, opts ...Option) (G, error) {
	vs := g.Vertices()
	if len(vs) == 0 {
		return g, nil
	}
	return traverse(algorithmDFS, g, vs[0], NaturalOrder[K, W](), opts)
}
