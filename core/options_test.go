// SPDX-License-Identifier: MIT
// Package core_test verifies loop and cycle policies.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphific/core"
)

func TestWithLoopsForbidden(t *testing.T) {
	d, err := core.NewDirected[int, string, int](core.WithLoopsForbidden()).AddVertices(v(1), v(2))
	require.NoError(t, err)

	_, err = d.AddEdgeBetweenKeys(1, 1)
	assert.ErrorIs(t, err, core.ErrLoopCreated)

	// Cycles remain allowed.
	d, err = d.AddEdges(e(1, 2), e(2, 1))
	require.NoError(t, err)
	assert.Equal(t, 2, d.EdgeCount())

	u, err := core.NewUndirected[int, string, int](core.WithLoopsForbidden()).AddVertexWithKey(1)
	require.NoError(t, err)
	_, err = u.AddEdgeBetweenKeys(1, 1)
	assert.ErrorIs(t, err, core.ErrLoopCreated)
}

func TestWithCyclesForbidden_Directed(t *testing.T) {
	g, err := core.NewDirectedFrom(
		[]vertex{v(1), v(2), v(3)},
		[]edge{e(1, 2), e(2, 3)},
		core.WithCyclesForbidden(),
	)
	require.NoError(t, err)

	same, err := g.AddEdgeBetweenKeys(3, 1)
	assert.ErrorIs(t, err, core.ErrCycleCreated)
	assert.Same(t, g, same)

	_, err = g.AddEdgeBetweenKeys(2, 1)
	assert.ErrorIs(t, err, core.ErrCycleCreated)

	_, err = g.AddEdgeBetweenKeys(2, 2)
	assert.ErrorIs(t, err, core.ErrLoopCreated)

	// A shortcut keeps the graph acyclic.
	g2, err := g.AddEdgeBetweenKeys(1, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.EdgeCount())
}

func TestWithCyclesForbidden_Undirected(t *testing.T) {
	g, err := core.NewUndirectedFrom(
		[]vertex{v(1), v(2), v(3), v(4)},
		[]edge{e(1, 2), e(2, 3)},
		core.WithCyclesForbidden(),
	)
	require.NoError(t, err)

	_, err = g.AddEdgeBetweenKeys(1, 3)
	assert.ErrorIs(t, err, core.ErrCycleCreated)

	g2, err := g.AddEdgeBetweenKeys(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3, g2.EdgeCount())
}

func TestOptions_Inherited(t *testing.T) {
	g := core.NewDirected[int, string, int](core.WithCyclesForbidden())
	g, err := g.AddVertices(v(1), v(2))
	require.NoError(t, err)
	g, err = g.AddEdgeBetweenKeys(1, 2)
	require.NoError(t, err)

	bare, _ := g.RemoveAllEdges()
	bare, err = bare.AddEdgeBetweenKeys(2, 1)
	require.NoError(t, err)
	_, err = bare.AddEdgeBetweenKeys(1, 2)
	assert.ErrorIs(t, err, core.ErrCycleCreated, "policy survives derived snapshots")

	empty, _, _ := g.RemoveAllVertices()
	empty, err = empty.AddVertexWithKey(5)
	require.NoError(t, err)
	_, err = empty.AddEdgeBetweenKeys(5, 5)
	assert.ErrorIs(t, err, core.ErrLoopCreated)

	assert.Len(t, g.Options(), 1)
	assert.Empty(t, core.NewDirected[int, string, int]().Options())
}

func TestNilOptionIgnored(t *testing.T) {
	g := core.NewUndirected[int, string, int](nil)
	g, err := g.AddVertexWithKey(1)
	require.NoError(t, err)
	_, err = g.AddEdgeBetweenKeys(1, 1)
	assert.NoError(t, err)
}

func TestWithCyclesForbidden_BatchReportsFirstOffender(t *testing.T) {
	g, err := core.NewDirectedFrom([]vertex{v(1), v(2), v(3)}, []edge{e(1, 2)}, core.WithCyclesForbidden())
	require.NoError(t, err)

	tests := []struct {
		name   string
		batch  []edge
		target error
		where  string
	}{
		{"cycle before missing endpoint", []edge{e(2, 3), e(3, 1), e(3, 9)}, core.ErrCycleCreated, "3->1"},
		{"missing endpoint before cycle", []edge{e(2, 3), e(3, 9), e(3, 1)}, core.ErrVertexDoesNotExist, "3->9"},
		{"duplicate in batch", []edge{e(2, 3), e(2, 3)}, core.ErrEdgeAlreadyExists, "2->3"},
		{"loop", []edge{e(2, 3), e(3, 3)}, core.ErrLoopCreated, "3->3"},
		{"cycle with stored edge", []edge{e(2, 1)}, core.ErrCycleCreated, "2->1"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			same, err := g.AddEdges(tc.batch...)
			require.ErrorIs(t, err, tc.target)
			assert.Contains(t, err.Error(), tc.where)
			assert.Same(t, g, same)
			assert.Equal(t, [][2]int{{1, 2}}, pairsOf(g.Edges()), "receiver untouched")
		})
	}

	dag, err := g.AddEdges(e(2, 3), e(1, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, dag.EdgeCount())
}

func TestWithCyclesForbidden_UndirectedBatch(t *testing.T) {
	_, err := core.NewUndirectedFrom(
		[]vertex{v(1), v(2), v(3)},
		[]edge{e(1, 2), e(2, 3), e(3, 1)},
		core.WithCyclesForbidden(),
	)
	require.ErrorIs(t, err, core.ErrCycleCreated)
	assert.Contains(t, err.Error(), "3->1")

	g, err := core.NewUndirectedFrom(
		[]vertex{v(1), v(2), v(3), v(4)},
		[]edge{e(1, 2), e(3, 4)},
		core.WithCyclesForbidden(),
	)
	require.NoError(t, err)

	// Stored edges seed the connectivity check.
	_, err = g.AddEdges(e(2, 3), e(4, 1))
	assert.ErrorIs(t, err, core.ErrCycleCreated)

	tree, err := g.AddEdges(e(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, tree.EdgeCount())
}

func TestWithCyclesForbidden_LargeBatch(t *testing.T) {
	const n = 20000
	vs := make([]vertex, n)
	es := make([]edge, 0, n-1)
	for i := range vs {
		vs[i] = v(i)
		if i > 0 {
			es = append(es, e((i-1)/2, i))
		}
	}

	d, err := core.NewDirectedFrom(vs, es, core.WithCyclesForbidden())
	require.NoError(t, err)
	assert.Equal(t, n-1, d.EdgeCount())

	u, err := core.NewUndirectedFrom(vs, es, core.WithCyclesForbidden())
	require.NoError(t, err)
	bare, _ := u.RemoveAllEdges()
	reloaded, err := bare.AddEdges(es...)
	require.NoError(t, err)
	assert.True(t, u.Equal(reloaded))
}
