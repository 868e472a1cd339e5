// SPDX-License-Identifier: MIT
//
// File: errors.go
// Role: Traversal error taxonomy.

package algorithms

import "github.com/pkg/errors"

// AlgorithmError enumerates traversal failures.
type AlgorithmError uint8

const (
	// ErrUnknown reports an unexpected failure; the cause is wrapped.
	ErrUnknown AlgorithmError = iota
	// ErrVertexNotInGraph reports a start vertex missing from the graph.
	ErrVertexNotInGraph
)

var algorithmErrorText = [...]string{
	ErrUnknown:          "algorithms: unknown error",
	ErrVertexNotInGraph: "algorithms: vertex not in graph",
}

// Error implements error.
func (e AlgorithmError) Error() string {
	if int(e) < len(algorithmErrorText) {
		return algorithmErrorText[e]
	}
	return algorithmErrorText[ErrUnknown]
}

// KindOf extracts the AlgorithmError carried by err, or ErrUnknown.
func KindOf(err error) AlgorithmError {
	var kind AlgorithmError
	if errors.As(err, &kind) {
		return kind
	}
	return ErrUnknown
}
