// SPDX-License-Identifier: MIT
//
// File: telemetry.go
// Role: Prometheus collectors and OpenTelemetry spans for traversals.
// Metrics (all optional, see WithMetrics):
//   - graphific_traversals_total{algorithm,outcome}
//   - graphific_traversal_visited_vertices{algorithm}
//   - graphific_traversal_duration_seconds{algorithm}

package algorithms

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	metricsNamespace = "graphific"
	tracerName       = "graphific/algorithms"

	outcomeSuccess = "success"
	outcomeError   = "error"
)

// Metrics holds the traversal collectors. Safe for concurrent use.
type Metrics struct {
	// TraversalsTotal counts finished traversals.
	// Labels: algorithm (bfs, dfs), outcome (success, error).
	TraversalsTotal *prometheus.CounterVec

	// VisitedVertices observes how many vertices each successful traversal reached.
	VisitedVertices *prometheus.HistogramVec

	// DurationSeconds observes wall time per traversal.
	DurationSeconds *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		TraversalsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "traversals_total",
				Help:      "Total number of graph traversals by algorithm and outcome",
			},
			[]string{"algorithm", "outcome"},
		),
		VisitedVertices: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "traversal_visited_vertices",
				Help:      "Vertices reached per traversal",
				Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
		DurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "traversal_duration_seconds",
				Help:      "Traversal wall time in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"algorithm"},
		),
	}
}

// observe records one finished traversal. Nil-safe.
func (m *Metrics) observe(algorithm string, visited int, elapsed time.Duration, err error) {
	if m == nil {
		return
	}
	outcome := outcomeSuccess
	if err != nil {
		outcome = outcomeError
	}
	m.TraversalsTotal.WithLabelValues(algorithm, outcome).Inc()
	m.DurationSeconds.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	if err == nil {
		m.VisitedVertices.WithLabelValues(algorithm).Observe(float64(visited))
	}
}

// startTraversalSpan opens the span covering one traversal.
func startTraversalSpan(ctx context.Context, tp trace.TracerProvider, algorithm string, vertices, edges int) (context.Context, trace.Span) {
	return tp.Tracer(tracerName).Start(ctx, "algorithms."+algorithm,
		trace.WithAttributes(
			attribute.String("graph.algorithm", algorithm),
			attribute.Int("graph.vertex_count", vertices),
			attribute.Int("graph.edge_count", edges),
		),
	)
}

// endTraversalSpan records the result on span and ends it.
func endTraversalSpan(span trace.Span, visited, treeEdges int, err error) {
	span.SetAttributes(
		attribute.Int("traversal.visited", visited),
		attribute.Int("traversal.tree_edges", treeEdges),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}
