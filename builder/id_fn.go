// SPDX-License-Identifier: MIT
// Package builder provides key schemes for graph constructors.

package builder

import "fmt"

// IDFn maps a zero-based constructor index to a vertex key.
// It must be pure and injective over the indices a build uses.
type IDFn func(idx int) int

// DefaultIDFn uses the index itself as key.
func DefaultIDFn(idx int) int { return idx }

// OffsetIDFn shifts every index by offset, e.g. offset 1 yields 1-based keys.
func OffsetIDFn(offset int) IDFn {
	return func(idx int) int { return idx + offset }
}

// StrideIDFn spaces keys stride apart starting at start (stride ≥ 1).
// Panics if stride < 1.
func StrideIDFn(start, stride int) IDFn {
	if stride < 1 {
		panic(fmt.Sprintf("StrideIDFn: stride must be ≥ 1, got %d", stride))
	}
	return func(idx int) int { return start + idx*stride }
}

// WithIDOffset sets the scheme to OffsetIDFn(offset).
// Composing constructors with distinct offsets yields disjoint components.
func WithIDOffset(offset int) BuilderOption {
	return WithIDScheme(OffsetIDFn(offset))
}

// WithDefaultIDs resets the scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption {
	return WithIDScheme(DefaultIDFn)
}
