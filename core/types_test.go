// SPDX-License-Identifier: MIT
// Package core_test verifies identity, ordering and rendering of entity values.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphific/core"
)

func TestVertex_IdentityIgnoresValue(t *testing.T) {
	a := core.NewVertexWithValue(1, "alpha")
	b := core.NewVertexWithValue(1, "beta")
	c := core.NewVertex[int, string](2)

	assert.True(t, a.Equal(b), "same key, different value")
	assert.False(t, a.Equal(c))
	assert.Equal(t, 0, a.Compare(b))
	assert.Negative(t, a.Compare(c))
	assert.Positive(t, c.Compare(a))
	assert.Equal(t, "", c.Value(), "default value is the zero value")
}

func TestVertex_WithValueCopies(t *testing.T) {
	a := core.NewVertexWithValue(7, "old")
	b := a.WithValue("new")

	assert.Equal(t, "old", a.Value())
	assert.Equal(t, "new", b.Value())
	assert.Equal(t, 7, b.Key())
	assert.Equal(t, "(7, new)", b.String())
}

func TestEdge_IdentityIgnoresWeight(t *testing.T) {
	light := core.NewEdgeWithWeight(1, 2, 1.5)
	heavy := core.NewEdgeWithWeight(1, 2, 9.0)
	rev := core.NewEdgeWithWeight(2, 1, 1.5)

	assert.True(t, light.Equal(heavy))
	assert.False(t, light.Equal(rev), "orientation matters for edge identity")
	assert.Equal(t, 0, light.Compare(heavy))
	assert.Equal(t, 0.0, core.NewEdge[int, float64](1, 2).Weight())
}

func TestEdge_NaturalOrder(t *testing.T) {
	tests := []struct {
		name string
		a, b core.Edge[int, int]
		want int
	}{
		{"from decides", core.NewEdge[int, int](1, 9), core.NewEdge[int, int](2, 0), -1},
		{"to breaks tie", core.NewEdge[int, int](3, 4), core.NewEdge[int, int](3, 2), 1},
		{"equal pair", core.NewEdgeWithWeight(5, 5, 1), core.NewEdgeWithWeight(5, 5, 2), 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, core.CompareEdges(tc.a, tc.b))
		})
	}
}

func TestEdge_LoopReverseString(t *testing.T) {
	x := core.NewEdgeWithWeight("a", "b", 3)
	assert.False(t, x.IsLoop())
	assert.True(t, core.NewEdge[string, int]("a", "a").IsLoop())

	r := x.Reversed()
	assert.Equal(t, "b", r.From())
	assert.Equal(t, "a", r.To())
	assert.Equal(t, 3, r.Weight())
	assert.Equal(t, "a--3->b", x.String())
}

func TestWeightedEdge_RoundTrip(t *testing.T) {
	w := core.WeightedEdge[string, int64]{From: "x", To: "y", Weight: 42}
	x := w.Edge()

	assert.Equal(t, "x", x.From())
	assert.Equal(t, "y", x.To())
	assert.Equal(t, int64(42), x.Weight())
	assert.Equal(t, w, x.AsWeighted())
}

func TestGraphError_KindOf(t *testing.T) {
	g := core.NewDirected[int, string, int]()
	_, err := g.AddEdgeBetweenKeys(1, 2)

	assert.ErrorIs(t, err, core.ErrVertexDoesNotExist)
	assert.Equal(t, core.ErrVertexDoesNotExist, core.KindOf(err))
	assert.Contains(t, err.Error(), "1->2")
	assert.Equal(t, core.ErrUnknown, core.KindOf(nil))
	assert.Equal(t, "core: cycle created", core.ErrCycleCreated.Error())
}
