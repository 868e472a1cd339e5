// SPDX-License-Identifier: MIT
//
// File: kinship.go
// Role: Successor/predecessor indexes computed from a store snapshot.
// Determinism:
//   - Every key present (empty lists included); per-key edges in natural order;
//     []Kin ordered by key.
// Complexity:
//   - O(V + E·log E) per call; nothing is cached.

package core

import (
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// successorsByKey indexes edges under from (and under to as well when
// symmetric, loops only once). Every key gets a (possibly empty) list.
func (s store[K, V, W]) successorsByKey(symmetric bool) map[K][]Edge[K, W] {
	out := make(map[K][]Edge[K, W], len(s.vertices))
	for k := range s.vertices {
		out[k] = []Edge[K, W]{}
	}
	for _, e := range s.edges {
		out[e.from] = append(out[e.from], e)
		if symmetric && e.from != e.to {
			out[e.to] = append(out[e.to], e)
		}
	}
	for k := range out {
		out[k] = sortedEdges(out[k])
	}
	return out
}

// predecessorsByKey indexes edges under their destination.
func (s store[K, V, W]) predecessorsByKey() map[K][]Edge[K, W] {
	out := make(map[K][]Edge[K, W], len(s.vertices))
	for k := range s.vertices {
		out[k] = []Edge[K, W]{}
	}
	for _, e := range s.edges {
		out[e.to] = append(out[e.to], e)
	}
	for k := range out {
		out[k] = sortedEdges(out[k])
	}
	return out
}

// kins turns a key-indexed adjacency into a key-ordered []Kin.
func (s store[K, V, W]) kins(byKey map[K][]Edge[K, W]) []Kin[K, V, W] {
	keys := lo.Keys(byKey)
	slices.SortFunc(keys, cmp.Compare[K])
	out := make([]Kin[K, V, W], 0, len(keys))
	for _, k := range keys {
		out = append(out, Kin[K, V, W]{Vertex: s.vertices[k], Edges: byKey[k]})
	}
	return out
}
