// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// blueprint.go: vertex/edge collector filled by constructors.
//
// Semantics:
//   • Keys are recorded once, in first-emission order.
//   • An edge whose endpoints are unknown is a constructor bug (ErrConstructFailed).
//   • A repeated edge (either orientation when undirected) keeps its first weight.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphific/core"
)

// Blueprint is the construction plan shared by the constructors of one build.
type Blueprint struct {
	directed bool
	keys     []int
	seenKey  map[int]struct{}
	edges    []core.WeightedEdge[int, int64]
	seenEdge map[[2]int]struct{}
}

func newBlueprint(directed bool) *Blueprint {
	return &Blueprint{
		directed: directed,
		seenKey:  make(map[int]struct{}),
		seenEdge: make(map[[2]int]struct{}),
	}
}

// Directed reports whether the blueprint targets a directed graph.
func (b *Blueprint) Directed() bool { return b.directed }

// Keys returns the vertex keys in first-emission order.
func (b *Blueprint) Keys() []int { return append([]int(nil), b.keys...) }

// Edges returns the weighted edges in first-emission order.
func (b *Blueprint) Edges() []core.WeightedEdge[int, int64] {
	return append([]core.WeightedEdge[int, int64](nil), b.edges...)
}

// addVertex records key; repeated keys are merged.
func (b *Blueprint) addVertex(key int) {
	if _, ok := b.seenKey[key]; ok {
		return
	}
	b.seenKey[key] = struct{}{}
	b.keys = append(b.keys, key)
}

// addEdge records from→to with weight w.
func (b *Blueprint) addEdge(method string, from, to int, w int64) error {
	for _, k := range [2]int{from, to} {
		if _, ok := b.seenKey[k]; !ok {
			return errors.Wrapf(ErrConstructFailed, "%s: edge %d->%d: unknown key %d", method, from, to, k)
		}
	}
	if _, ok := b.seenEdge[[2]int{from, to}]; ok {
		return nil
	}
	if !b.directed {
		if _, ok := b.seenEdge[[2]int{to, from}]; ok {
			return nil
		}
	}
	b.seenEdge[[2]int{from, to}] = struct{}{}
	b.edges = append(b.edges, core.WeightedEdge[int, int64]{From: from, To: to, Weight: w})
	return nil
}

// addArc records from→to and, for directed blueprints, to→from with the same weight.
func (b *Blueprint) addArc(method string, from, to int, w int64) error {
	if err := b.addEdge(method, from, to, w); err != nil {
		return err
	}
	if b.directed {
		return b.addEdge(method, to, from, w)
	}
	return nil
}

// vertices converts the keys into default-valued core vertices.
func vertices[V core.Value](b *Blueprint) []core.Vertex[int, V] {
	out := make([]core.Vertex[int, V], len(b.keys))
	for i, k := range b.keys {
		out[i] = core.NewVertex[int, V](k)
	}
	return out
}

// coreEdges converts the weighted edges into core edges.
func coreEdges(b *Blueprint) []core.Edge[int, int64] {
	out := make([]core.Edge[int, int64], len(b.edges))
	for i, e := range b.edges {
		out[i] = e.Edge()
	}
	return out
}
