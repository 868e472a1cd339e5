// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Capability constraints and immutable entity values (Vertex, Edge, WeightedEdge).
// Policy:
//   - Identity is derived from keys only; payload never participates in equality or ordering.
//   - Entities are plain values; "setters" return modified copies.

package core

import (
	"cmp"
	"fmt"
)

// Key is the capability contract for vertex identifiers: copyable,
// totally ordered and usable as a map key.
type Key interface {
	cmp.Ordered
}

// Value is the payload carried by a vertex. Its zero value is the default.
type Value interface {
	any
}

// Weight is the payload carried by an edge. Its zero value is the default.
type Weight interface {
	cmp.Ordered
}

// Vertex is a node identified solely by its key.
//
// Two vertices with equal keys are interchangeable for storage purposes,
// regardless of their values.
type Vertex[K Key, V Value] struct {
	key   K
	value V
}

// NewVertex creates a vertex carrying the default (zero) value.
func NewVertex[K Key, V Value](key K) Vertex[K, V] {
	return Vertex[K, V]{key: key}
}

// NewVertexWithValue creates a vertex carrying value.
func NewVertexWithValue[K Key, V Value](key K, value V) Vertex[K, V] {
	return Vertex[K, V]{key: key, value: value}
}

// Key returns the identifier of the vertex.
func (v Vertex[K, V]) Key() K { return v.key }

// Value returns the payload of the vertex.
func (v Vertex[K, V]) Value() V { return v.value }

// WithValue returns a copy of v carrying value. The receiver is unchanged.
func (v Vertex[K, V]) WithValue(value V) Vertex[K, V] {
	v.value = value
	return v
}

// Equal reports whether both vertices share the same key.
func (v Vertex[K, V]) Equal(o Vertex[K, V]) bool { return v.key == o.key }

// Compare orders vertices by key.
func (v Vertex[K, V]) Compare(o Vertex[K, V]) int { return cmp.Compare(v.key, o.key) }

// String renders the vertex as "(key, value)".
func (v Vertex[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", v.key, v.value)
}

// edgeID is the storage identity of an edge.
type edgeID[K Key] struct {
	from, to K
}

// Edge connects two vertex keys and carries a weight.
//
// Identity and hashing derive from (From, To) only; the weight is payload.
// In an Undirected graph the same shape is interpreted symmetrically.
type Edge[K Key, W Weight] struct {
	from   K
	to     K
	weight W
}

// NewEdge creates an edge carrying the default (zero) weight.
func NewEdge[K Key, W Weight](from, to K) Edge[K, W] {
	return Edge[K, W]{from: from, to: to}
}

// NewEdgeWithWeight creates an edge carrying weight.
func NewEdgeWithWeight[K Key, W Weight](from, to K, weight W) Edge[K, W] {
	return Edge[K, W]{from: from, to: to, weight: weight}
}

// From returns the origin key.
func (e Edge[K, W]) From() K { return e.from }

// To returns the destination key.
func (e Edge[K, W]) To() K { return e.to }

// Weight returns the edge payload.
func (e Edge[K, W]) Weight() W { return e.weight }

// IsLoop reports whether the edge starts and ends at the same key.
func (e Edge[K, W]) IsLoop() bool { return e.from == e.to }

// Reversed returns the edge with swapped endpoints and the same weight.
func (e Edge[K, W]) Reversed() Edge[K, W] {
	return Edge[K, W]{from: e.to, to: e.from, weight: e.weight}
}

// Equal reports whether both edges share the same (From, To). Weights are ignored.
func (e Edge[K, W]) Equal(o Edge[K, W]) bool {
	return e.from == o.from && e.to == o.to
}

// Compare is the natural total order of edges: by From, then by To.
func (e Edge[K, W]) Compare(o Edge[K, W]) int {
	if c := cmp.Compare(e.from, o.from); c != 0 {
		return c
	}
	return cmp.Compare(e.to, o.to)
}

// AsWeighted converts the edge into its exported plain-data form.
func (e Edge[K, W]) AsWeighted() WeightedEdge[K, W] {
	return WeightedEdge[K, W]{From: e.from, To: e.to, Weight: e.weight}
}

// String renders the edge as "from--weight->to".
func (e Edge[K, W]) String() string {
	return fmt.Sprintf("%v--%v->%v", e.from, e.weight, e.to)
}

func (e Edge[K, W]) id() edgeID[K] { return edgeID[K]{from: e.from, to: e.to} }

// CompareEdges is the natural edge order as a free function, handy as a comparator.
func CompareEdges[K Key, W Weight](a, b Edge[K, W]) int { return a.Compare(b) }

// WeightedEdge is a literal-friendly edge description.
//
// It attaches a weight without taking part in identity; convert it with Edge()
// before handing it to a graph.
type WeightedEdge[K Key, W Weight] struct {
	From   K
	To     K
	Weight W
}

// Edge converts the description into a bare Edge.
func (w WeightedEdge[K, W]) Edge() Edge[K, W] {
	return Edge[K, W]{from: w.From, to: w.To, weight: w.Weight}
}
