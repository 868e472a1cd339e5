// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: GraphError taxonomy shared by every store.
// Policy:
//   - Callers branch with errors.Is(err, core.ErrX); never on message text.
//   - Context is attached with errors.WithMessagef; the sentinel is preserved.

package core

import (
	"github.com/pkg/errors"
)

// GraphError enumerates every failure a graph operation may report.
type GraphError uint8

// GraphError values. ErrLoopCreated and ErrCycleCreated are raised only by
// stores built with WithLoopsForbidden / WithCyclesForbidden.
const (
	ErrUnknown GraphError = iota
	ErrVertexAlreadyExists
	ErrVertexDoesNotExist
	ErrEdgeAlreadyExists
	ErrEdgeDoesNotExist
	ErrLoopCreated
	ErrCycleCreated
)

var graphErrorText = [...]string{
	ErrUnknown:             "core: unknown error",
	ErrVertexAlreadyExists: "core: vertex already exists",
	ErrVertexDoesNotExist:  "core: vertex does not exist",
	ErrEdgeAlreadyExists:   "core: edge already exists",
	ErrEdgeDoesNotExist:    "core: edge does not exist",
	ErrLoopCreated:         "core: loop created",
	ErrCycleCreated:        "core: cycle created",
}

// Error implements the error interface.
func (e GraphError) Error() string {
	if int(e) < len(graphErrorText) {
		return graphErrorText[e]
	}
	return graphErrorText[ErrUnknown]
}

// KindOf extracts the GraphError carried by err.
// Errors that do not wrap a GraphError (and nil) report ErrUnknown.
func KindOf(err error) GraphError {
	var ge GraphError
	if errors.As(err, &ge) {
		return ge
	}
	return ErrUnknown
}

// vertexErr attaches the offending key to kind.
func vertexErr[K Key](kind GraphError, op string, key K) error {
	return errors.WithMessagef(kind, "%s: key %v", op, key)
}

// edgeErr attaches the offending endpoints to kind.
func edgeErr[K Key](kind GraphError, op string, from, to K) error {
	return errors.WithMessagef(kind, "%s: edge %v->%v", op, from, to)
}
