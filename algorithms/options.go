// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional options shared by every traversal.
// Defaults:
//   - context.Background(), zap.NewNop(), no metrics, global tracer provider, no hooks.

package algorithms

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/katalvlaran/graphific/core"
)

// Option configures a traversal.
type Option func(*config)

type config struct {
	ctx     context.Context
	logger  *zap.Logger
	metrics *Metrics
	tracer  trace.TracerProvider
	hooks   any // Hooks[K,V,W]; checked against the graph's types at run time
}

func newConfig(opts ...Option) config {
	c := config{
		ctx:    context.Background(),
		logger: zap.NewNop(),
		tracer: otel.GetTracerProvider(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// WithContext sets the context used for cancellation and as span parent.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger routes debug and warning records to l. A nil l is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMetrics records every traversal into m.
func WithMetrics(m *Metrics) Option {
	return func(c *config) { c.metrics = m }
}

// WithTracerProvider overrides the global OpenTelemetry provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		if tp != nil {
			c.tracer = tp
		}
	}
}

// Hooks observe a traversal. Nil fields are skipped.
type Hooks[K core.Key, V core.Value, W core.Weight] struct {
	// OnVisit runs when a vertex is popped from the frontier, start included.
	// A non-nil error aborts the traversal and is returned to the caller.
	OnVisit func(v core.Vertex[K, V]) error
	// OnTreeEdge runs when an edge discovers a new vertex.
	OnTreeEdge func(e core.Edge[K, W])
	// OnSkipEdge runs when an edge leads to an already visited vertex.
	OnSkipEdge func(e core.Edge[K, W])
}

// WithHooks installs h. The type parameters must match the traversed graph,
// otherwise the traversal fails with ErrUnknown.
func WithHooks[K core.Key, V core.Value, W core.Weight](h Hooks[K, V, W]) Option {
	return func(c *config) { c.hooks = h }
}

// hooksFor resolves the installed hooks for the graph's type parameters.
func hooksFor[K core.Key, V core.Value, W core.Weight](c config) (Hooks[K, V, W], bool) {
	if c.hooks == nil {
		return Hooks[K, V, W]{}, true
	}
	h, ok := c.hooks.(Hooks[K, V, W])
	return h, ok
}
