// SPDX-License-Identifier: MIT
// Package algorithms_test shares graph fixtures across traversal tests.

package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphific/algorithms"
	"github.com/katalvlaran/graphific/core"
)

type (
	dgraph = core.Directed[int, string, int]
	ugraph = core.Undirected[int, string, int]
	vertex = core.Vertex[int, string]
	edge   = core.Edge[int, int]
)

func v(k int) vertex { return core.NewVertex[int, string](k) }

func natural() algorithms.Comparator[int, int] { return algorithms.NaturalOrder[int, int]() }

// weighted builds a directed graph on 1..n from (from, to, weight) triples.
func weighted(t *testing.T, n int, triples ...[3]int) *dgraph {
	t.Helper()
	vs := make([]vertex, 0, n)
	for k := 1; k <= n; k++ {
		vs = append(vs, v(k))
	}
	es := make([]edge, 0, len(triples))
	for _, x := range triples {
		es = append(es, core.NewEdgeWithWeight(x[0], x[1], x[2]))
	}
	g, err := core.NewDirectedFrom(vs, es)
	require.NoError(t, err)
	return g
}

// directed builds a directed graph on 1..n with default weights.
func directed(t *testing.T, n int, pairs ...[2]int) *dgraph {
	t.Helper()
	triples := make([][3]int, len(pairs))
	for i, p := range pairs {
		triples[i] = [3]int{p[0], p[1], 0}
	}
	return weighted(t, n, triples...)
}

// undirected builds an undirected graph on 1..n storing each pair as given.
func undirected(t *testing.T, n int, pairs ...[2]int) *ugraph {
	t.Helper()
	vs := make([]vertex, 0, n)
	for k := 1; k <= n; k++ {
		vs = append(vs, v(k))
	}
	es := make([]edge, 0, len(pairs))
	for _, p := range pairs {
		es = append(es, core.NewEdge[int, int](p[0], p[1]))
	}
	g, err := core.NewUndirectedFrom(vs, es)
	require.NoError(t, err)
	return g
}

// canonical is 1→2, 1→3, 2→3, 3→4, 4→1.
var canonical = [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 1}}

// diamond is 1→2, 1→3, 2→4, 3→4: BFS and DFS disagree on the edge into 4.
var diamond = [][2]int{{1, 2}, {1, 3}, {2, 4}, {3, 4}}

func pairsOf(es []edge) [][2]int {
	out := make([][2]int, len(es))
	for i, x := range es {
		out[i] = [2]int{x.From(), x.To()}
	}
	return out
}
