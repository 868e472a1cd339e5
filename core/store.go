// SPDX-License-Identifier: MIT
//
// File: store.go
// Role: Set-based storage shared by Directed and Undirected.
// Determinism:
//   - Vertices() sorted by key; Edges() and kinship lists in natural edge order.
// Persistence:
//   - A store is written only while it is being built (clone → edit → publish).
//     Once returned to a caller it is read-only, so snapshots never alias writes.
// AI-HINT (file):
//   - Never call the edit helpers (put*/drop*) on a store reachable by callers; clone first.

package core

import (
	"maps"
	"slices"

	"github.com/samber/lo"
)

// store is the persistent vertex/edge catalog.
type store[K Key, V Value, W Weight] struct {
	cfg      config
	vertices map[K]Vertex[K, V]       // key → vertex
	edges    map[edgeID[K]]Edge[K, W] // (from,to) → edge
}

func newStore[K Key, V Value, W Weight](cfg config) store[K, V, W] {
	return store[K, V, W]{
		cfg:      cfg,
		vertices: make(map[K]Vertex[K, V]),
		edges:    make(map[edgeID[K]]Edge[K, W]),
	}
}

// clone copies both catalogs. Complexity: O(V+E).
func (s store[K, V, W]) clone() store[K, V, W] {
	return store[K, V, W]{
		cfg:      s.cfg,
		vertices: maps.Clone(s.vertices),
		edges:    maps.Clone(s.edges),
	}
}

// cloneVerticesOnly copies the vertex catalog and starts an empty edge catalog.
func (s store[K, V, W]) cloneVerticesOnly() store[K, V, W] {
	return store[K, V, W]{
		cfg:      s.cfg,
		vertices: maps.Clone(s.vertices),
		edges:    make(map[edgeID[K]]Edge[K, W]),
	}
}

// Vertices returns every vertex sorted by key. Complexity: O(V·log V).
func (s store[K, V, W]) Vertices() []Vertex[K, V] {
	out := lo.Values(s.vertices)
	slices.SortFunc(out, func(a, b Vertex[K, V]) int { return a.Compare(b) })
	return out
}

// Edges returns every edge in natural order. Complexity: O(E·log E).
func (s store[K, V, W]) Edges() []Edge[K, W] {
	return sortedEdges(lo.Values(s.edges))
}

// VertexCount returns |V|.
func (s store[K, V, W]) VertexCount() int { return len(s.vertices) }

// EdgeCount returns |E|.
func (s store[K, V, W]) EdgeCount() int { return len(s.edges) }

// Vertex returns the stored vertex for key.
func (s store[K, V, W]) Vertex(key K) (Vertex[K, V], bool) {
	v, ok := s.vertices[key]
	return v, ok
}

// HasKey reports whether key is stored. Complexity: O(1).
func (s store[K, V, W]) HasKey(key K) bool {
	_, ok := s.vertices[key]
	return ok
}

// HasVertex reports whether a vertex with v's key is stored. Complexity: O(1).
func (s store[K, V, W]) HasVertex(v Vertex[K, V]) bool { return s.HasKey(v.key) }

// KeyVertexMap maps every key to its stored vertex.
func (s store[K, V, W]) KeyVertexMap() map[K]Vertex[K, V] {
	return maps.Clone(s.vertices)
}

// Options reports the policy flags as options, suitable for building a
// sibling store with the same behavior.
func (s store[K, V, W]) Options() []Option {
	var opts []Option
	if s.cfg.forbidCycles {
		opts = append(opts, WithCyclesForbidden())
	} else if s.cfg.forbidLoops {
		opts = append(opts, WithLoopsForbidden())
	}
	return opts
}

// equal compares vertex keys and edge identities.
func (s store[K, V, W]) equal(o store[K, V, W]) bool {
	if len(s.vertices) != len(o.vertices) || len(s.edges) != len(o.edges) {
		return false
	}
	for k := range s.vertices {
		if _, ok := o.vertices[k]; !ok {
			return false
		}
	}
	for id := range s.edges {
		if _, ok := o.edges[id]; !ok {
			return false
		}
	}
	return true
}

// putVertex inserts v into a store under construction.
func (s store[K, V, W]) putVertex(v Vertex[K, V]) error {
	if _, ok := s.vertices[v.key]; ok {
		return vertexErr(ErrVertexAlreadyExists, "add vertex", v.key)
	}
	s.vertices[v.key] = v
	return nil
}

// checkEndpoints verifies the edge-endpoint invariant and the loop policy.
func (s store[K, V, W]) checkEndpoints(e Edge[K, W]) error {
	if !s.HasKey(e.from) {
		return edgeErr(ErrVertexDoesNotExist, "add edge", e.from, e.to)
	}
	if !s.HasKey(e.to) {
		return edgeErr(ErrVertexDoesNotExist, "add edge", e.from, e.to)
	}
	if s.cfg.forbidLoops && e.IsLoop() {
		return edgeErr(ErrLoopCreated, "add edge", e.from, e.to)
	}
	return nil
}

// dropIncident removes from a store under construction every edge matching
// pred and returns them in natural order. Complexity: O(E).
func (s *store[K, V, W]) dropIncident(pred func(e Edge[K, W]) bool) []Edge[K, W] {
	match := func(_ edgeID[K], e Edge[K, W]) bool { return pred(e) }
	removed := lo.PickBy(s.edges, match)
	s.edges = lo.OmitBy(s.edges, match)
	return sortedEdges(lo.Values(removed))
}

// sortedEdges sorts es in place in natural order and returns it.
func sortedEdges[K Key, W Weight](es []Edge[K, W]) []Edge[K, W] {
	slices.SortFunc(es, CompareEdges[K, W])
	return es
}
