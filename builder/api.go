// SPDX-License-Identifier: MIT
// Package: graphific/builder
//
// api.go: public entry points for the builder package.
//
// Contract:
//   • Two orchestrators: BuildDirected / BuildUndirected(gopts, bopts, cons...).
//   • Constructors run in order against one Blueprint and one resolved config.
//   • The blueprint is bulk-loaded once; any failure returns a nil graph.

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/graphific/core"
)

// Constructor records a topology on the blueprint using the resolved config.
// Constructors validate parameters first and return sentinel errors; they
// never panic and emit vertices and edges in a documented, stable order.
type Constructor func(b *Blueprint, cfg builderConfig) error

// BuildDirected runs cons against a directed blueprint and loads the result
// into a core.Directed created with gopts.
//
// Errors: builder sentinels from constructors, or core.GraphError from the
// load (e.g. ErrCycleCreated under core.WithCyclesForbidden).
func BuildDirected[V core.Value](gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Directed[int, V, int64], error) {
	b, err := assemble(true, bopts, cons)
	if err != nil {
		return nil, errors.WithMessage(err, "BuildDirected")
	}
	g, err := core.NewDirectedFrom(vertices[V](b), coreEdges(b), gopts...)
	if err != nil {
		return nil, errors.WithMessage(err, "BuildDirected")
	}
	return g, nil
}

// BuildUndirected is BuildDirected for core.Undirected.
func BuildUndirected[V core.Value](gopts []core.Option, bopts []BuilderOption, cons ...Constructor) (*core.Undirected[int, V, int64], error) {
	b, err := assemble(false, bopts, cons)
	if err != nil {
		return nil, errors.WithMessage(err, "BuildUndirected")
	}
	g, err := core.NewUndirectedFrom(vertices[V](b), coreEdges(b), gopts...)
	if err != nil {
		return nil, errors.WithMessage(err, "BuildUndirected")
	}
	return g, nil
}

// assemble resolves bopts and applies cons in order.
func assemble(directed bool, bopts []BuilderOption, cons []Constructor) (*Blueprint, error) {
	cfg := newBuilderConfig(bopts...)
	b := newBlueprint(directed)
	for i, fn := range cons {
		if fn == nil {
			return nil, errors.Wrapf(ErrConstructFailed, "nil constructor at index %d", i)
		}
		if err := fn(b, cfg); err != nil {
			return nil, err
		}
	}
	return b, nil
}
