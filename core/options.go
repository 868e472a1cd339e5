// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Construction-time policy flags for the stores.
// Policy:
//   - Flags are fixed at construction and inherited by every derived snapshot.

package core

// Option configures a store before creation.
type Option func(c *config)

// config holds immutable policy flags.
type config struct {
	forbidLoops  bool // AddEdge(v,v) → ErrLoopCreated
	forbidCycles bool // AddEdge closing a cycle → ErrCycleCreated
}

// WithLoopsForbidden rejects self-loops with ErrLoopCreated.
func WithLoopsForbidden() Option {
	return func(c *config) { c.forbidLoops = true }
}

// WithCyclesForbidden rejects any edge that would close a cycle with
// ErrCycleCreated. Loops are rejected as well (reported as ErrLoopCreated).
//
// Directed stores stay acyclic (DAG); undirected stores stay a forest.
// Each AddEdge then costs an extra O(V+E) reachability check.
func WithCyclesForbidden() Option {
	return func(c *config) {
		c.forbidCycles = true
		c.forbidLoops = true
	}
}

func newConfig(opts ...Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}
