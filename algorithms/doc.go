// SPDX-License-Identifier: MIT

// Package algorithms implements traversals over core graphs.
//
// Every traversal consumes a graph snapshot and returns a new one of the same
// concrete type: all vertices of the input, and only the edges actually used to
// discover a vertex (the search tree, or forest fragment, rooted at start).
//
// Traversals:
//
//   - BFS / BFSFromKey: FIFO frontier.
//   - DFS / DFSFromKey: LIFO frontier.
//   - SimpleBFS / SimpleDFS: start at the smallest key with NaturalOrder;
//     an empty graph is returned unchanged.
//
// Determinism:
//
//   - At every pop, the outgoing edges of the popped key are stably sorted with
//     the caller's Comparator; that order alone decides the result.
//   - The destination of an edge is always its stored To() endpoint, for
//     undirected graphs as well.
//
// Options:
//
//   - WithContext(ctx)       cancellation (checked once per pop) and span parent.
//   - WithHooks(h)           OnVisit / OnTreeEdge / OnSkipEdge callbacks.
//   - WithLogger(l)          zap logger; silent by default.
//   - WithMetrics(m)         Prometheus collectors built by NewMetrics.
//   - WithTracerProvider(tp) OpenTelemetry provider; global by default.
//
// Errors:
//
//   - ErrVertexNotInGraph if the start vertex is absent.
//   - ErrUnknown wrapping the cause if the result cannot be assembled.
//   - ctx.Err() on cancellation, or the error returned by Hooks.OnVisit.
//
// Complexity: O(V+E·log d) time with d the largest out-degree, O(V+E) memory.
package algorithms
