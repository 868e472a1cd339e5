// SPDX-License-Identifier: MIT
// Package core_test shares fixtures and assertions across core tests.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphific/core"
)

type (
	dgraph = core.Directed[int, string, int]
	ugraph = core.Undirected[int, string, int]
	vertex = core.Vertex[int, string]
	edge   = core.Edge[int, int]
)

// fixtureEdges is the canonical 4-vertex graph: 1→2, 1→3, 2→3, 3→4, 4→1.
var fixtureEdges = [][2]int{{1, 2}, {1, 3}, {2, 3}, {3, 4}, {4, 1}}

func v(k int) vertex { return core.NewVertex[int, string](k) }

func e(from, to int) edge { return core.NewEdge[int, int](from, to) }

// directedFixture builds the canonical graph through repeated persistent calls.
func directedFixture(t *testing.T) *dgraph {
	t.Helper()
	g := core.NewDirected[int, string, int]()
	var err error
	for k := 1; k <= 4; k++ {
		g, err = g.AddVertexWithKey(k)
		require.NoError(t, err)
	}
	for _, p := range fixtureEdges {
		g, err = g.AddEdgeBetweenKeys(p[0], p[1])
		require.NoError(t, err)
	}
	return g
}

// undirectedFixture is directedFixture on an undirected store.
func undirectedFixture(t *testing.T) *ugraph {
	t.Helper()
	g := core.NewUndirected[int, string, int]()
	var err error
	for k := 1; k <= 4; k++ {
		g, err = g.AddVertexWithKey(k)
		require.NoError(t, err)
	}
	for _, p := range fixtureEdges {
		g, err = g.AddEdgeBetweenKeys(p[0], p[1])
		require.NoError(t, err)
	}
	return g
}

// keysOf projects vertices to their keys (order preserved).
func keysOf(vs []vertex) []int {
	out := make([]int, len(vs))
	for i, x := range vs {
		out[i] = x.Key()
	}
	return out
}

// pairsOf projects edges to (from,to) pairs (order preserved).
func pairsOf(es []edge) [][2]int {
	out := make([][2]int, len(es))
	for i, x := range es {
		out[i] = [2]int{x.From(), x.To()}
	}
	return out
}

// snapshot is the minimal read surface shared by both stores.
type snapshot interface {
	Vertices() []vertex
	Edges() []edge
	HasKey(int) bool
}

// requireEndpointInvariant checks that every edge endpoint is a stored vertex.
func requireEndpointInvariant(t *testing.T, g snapshot) {
	t.Helper()
	for _, x := range g.Edges() {
		require.Truef(t, g.HasKey(x.From()), "edge %v: missing from", x)
		require.Truef(t, g.HasKey(x.To()), "edge %v: missing to", x)
	}
}
