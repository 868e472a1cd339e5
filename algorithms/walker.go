// SPDX-License-Identifier: MIT
//
// File: walker.go
// Role: Frontier-driven traversal shared by BFS and DFS.
// Contract:
//   - Start absent → ErrVertexNotInGraph, g returned unchanged.
//   - Result = g without edges + every tree edge, loaded with one AddEdges call.
//   - Start is marked visited before its edges are expanded (a loop at start is skipped).
//   - Per pop: copy of the successor list, stable-sorted with the Comparator.
// AI-HINT (file):
//   - Keep successors precomputed from the input graph; never consult the accumulator.

package algorithms

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphific/core"
)

const (
	algorithmBFS = "bfs"
	algorithmDFS = "dfs"
)

// walker holds the mutable state of one traversal.
type walker[K core.Key, V core.Value, W core.Weight] struct {
	ctx      context.Context
	order    Comparator[K, W]
	hooks    Hooks[K, V, W]
	succ     map[K][]core.Edge[K, W] // of the input graph
	vertices map[K]core.Vertex[K, V]
	visited  map[K]struct{}
	tree     []core.Edge[K, W] // discovery order
	front    frontier[K]
}

// traverse runs one BFS (lifo=false) or DFS (lifo=true) from start.
func traverse[K core.Key, V core.Value, W core.Weight, G core.Graph[K, V, W, G]](
	algorithm string,
	g G,
	start core.Vertex[K, V],
	order Comparator[K, W],
	opts []Option,
) (result G, err error) {
	cfg := newConfig(opts...)
	log := cfg.logger.With(zap.String("algorithm", algorithm), zap.Any("start", start.Key()))
	began := time.Now()
	ctx, span := startTraversalSpan(cfg.ctx, cfg.tracer, algorithm, g.VertexCount(), g.EdgeCount())

	var visited, treeEdges int
	defer func() {
		elapsed := time.Since(began)
		endTraversalSpan(span, visited, treeEdges, err)
		cfg.metrics.observe(algorithm, visited, elapsed, err)
		if err != nil {
			log.Warn("traversal aborted", zap.Error(err), zap.Duration("duration", elapsed))
			return
		}
		log.Debug("traversal finished",
			zap.Int("visited", visited),
			zap.Int("tree_edges", treeEdges),
			zap.Duration("duration", elapsed),
		)
	}()

	if !g.HasKey(start.Key()) {
		return g, errors.WithMessagef(ErrVertexNotInGraph, "%s: start %v", algorithm, start.Key())
	}
	hooks, ok := hooksFor[K, V, W](cfg)
	if !ok {
		return g, errors.WithMessagef(ErrUnknown, "%s: hooks do not match graph types", algorithm)
	}
	if order == nil {
		order = NaturalOrder[K, W]()
	}
	log.Debug("traversal started", zap.Int("vertices", g.VertexCount()), zap.Int("edges", g.EdgeCount()))

	w := &walker[K, V, W]{
		ctx:      ctx,
		order:    order,
		hooks:    hooks,
		succ:     g.SuccessorsByKey(),
		vertices: g.KeyVertexMap(),
		visited:  make(map[K]struct{}, g.VertexCount()),
		tree:     make([]core.Edge[K, W], 0, g.VertexCount()),
		front:    frontier[K]{lifo: algorithm == algorithmDFS},
	}
	err = w.run(start.Key())
	visited, treeEdges = len(w.visited), len(w.tree)
	if err != nil {
		return g, err
	}

	acc, _ := g.RemoveAllEdges()
	result, err = acc.AddEdges(w.tree...)
	if err != nil {
		// Unreachable for stores honoring their own contract.
		return g, fmt.Errorf("%w: %s: load tree edges: %w", ErrUnknown, algorithm, err)
	}
	return result, nil
}

// run drains the frontier seeded with start.
func (w *walker[K, V, W]) run(start K) error {
	w.visited[start] = struct{}{}
	w.front.push(start)

	for !w.front.empty() {
		if err := w.ctx.Err(); err != nil {
			return err
		}
		cur := w.front.pop()
		if w.hooks.OnVisit != nil {
			if err := w.hooks.OnVisit(w.vertices[cur]); err != nil {
				return errors.WithMessagef(err, "visit %v", cur)
			}
		}
		w.expand(cur)
	}
	return nil
}

// expand pushes every unvisited destination of cur, in comparator order.
func (w *walker[K, V, W]) expand(cur K) {
	edges := slices.Clone(w.succ[cur])
	slices.SortStableFunc(edges, w.order)

	for _, e := range edges {
		next := e.To()
		if _, seen := w.visited[next]; seen {
			if w.hooks.OnSkipEdge != nil {
				w.hooks.OnSkipEdge(e)
			}
			continue
		}
		w.visited[next] = struct{}{}
		w.tree = append(w.tree, e)
		if w.hooks.OnTreeEdge != nil {
			w.hooks.OnTreeEdge(e)
		}
		w.front.push(next)
	}
}
