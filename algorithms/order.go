// SPDX-License-Identifier: MIT
//
// File: order.go
// Role: Edge orderings used to expand the frontier.

package algorithms

import (
	"cmp"

	"github.com/katalvlaran/graphific/core"
)

// Comparator is a total order over edges: negative if a sorts before b,
// zero if they tie, positive otherwise. Ties keep their relative order.
type Comparator[K core.Key, W core.Weight] func(a, b core.Edge[K, W]) int

// NaturalOrder sorts by from, then to.
func NaturalOrder[K core.Key, W core.Weight]() Comparator[K, W] {
	return core.CompareEdges[K, W]
}

// ByWeight sorts by ascending weight only; equal weights keep natural order
// because successor lists are already naturally ordered.
func ByWeight[K core.Key, W core.Weight]() Comparator[K, W] {
	return func(a, b core.Edge[K, W]) int { return cmp.Compare(a.Weight(), b.Weight()) }
}

// Reverse inverts c.
func Reverse[K core.Key, W core.Weight](c Comparator[K, W]) Comparator[K, W] {
	return func(a, b core.Edge[K, W]) int { return c(b, a) }
}
