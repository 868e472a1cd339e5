// SPDX-License-Identifier: MIT
// Package core_test checks store invariants over pseudo-random mutation runs.

package core_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphific/core"
)

// mutator is the mutation surface the invariant runs exercise.
type mutator[G any] interface {
	core.Graph[int, string, int, G]
	snapshot
}

// runMutations applies steps random operations to g, checking after each
// step that failures leave the receiver untouched and successes keep every
// edge endpoint stored.
func runMutations[G mutator[G]](t *testing.T, g G, seed int64, steps int) G {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	const keys = 8
	for i := 0; i < steps; i++ {
		a, b := rng.Intn(keys), rng.Intn(keys)
		beforeV, beforeE := g.VertexCount(), g.EdgeCount()

		var next G
		var err error
		switch rng.Intn(5) {
		case 0, 1:
			next, err = g.AddVertexWithKey(a)
		case 2:
			next, err = g.AddEdgeBetweenKeys(a, b)
		case 3:
			next, _, err = g.RemoveEdgeWhereKeys(a, b)
		case 4:
			next, _, _, err = g.RemoveVertexWhereKey(a)
		}

		if err != nil {
			require.NotEqual(t, core.ErrUnknown, core.KindOf(err), "step %d: %v", i, err)
			require.Equal(t, beforeV, g.VertexCount(), "step %d", i)
			require.Equal(t, beforeE, g.EdgeCount(), "step %d", i)
			continue
		}
		requireEndpointInvariant(t, next)
		g = next
	}
	return g
}

func TestInvariants_Directed(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := runMutations(t, core.NewDirected[int, string, int](), seed, 300)
		require.Len(t, g.Edges(), g.EdgeCount())
		require.Len(t, g.Vertices(), g.VertexCount())
	}
}

func TestInvariants_UndirectedNoReverseDuplicates(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := runMutations(t, core.NewUndirected[int, string, int](), seed, 300)
		seen := make(map[[2]int]bool)
		for _, p := range pairsOf(g.Edges()) {
			require.Falsef(t, seen[[2]int{p[1], p[0]}] && p[0] != p[1], "reverse duplicate %v", p)
			seen[p] = true
		}
	}
}

func TestInvariants_DirectedStaysAcyclic(t *testing.T) {
	g := runMutations(t, core.NewDirected[int, string, int](core.WithCyclesForbidden()), 42, 400)
	for _, x := range g.Edges() {
		require.False(t, x.IsLoop())
		// Adding the reverse of any stored edge must close a cycle.
		_, err := g.AddEdgeBetweenKeys(x.To(), x.From())
		require.ErrorIs(t, err, core.ErrCycleCreated)
	}
}

func TestInvariants_UndirectedStaysForest(t *testing.T) {
	g := runMutations(t, core.NewUndirected[int, string, int](core.WithCyclesForbidden()), 7, 400)
	if g.VertexCount() > 0 {
		require.LessOrEqual(t, g.EdgeCount(), g.VertexCount()-1)
	}
}
