// Package core provides persistent (copy-on-write) in-memory graphs with a
// minimal, generic CRUD surface.
//
// A graph value G = (V,E) is never modified after construction. Every
// "mutation" (AddVertex, RemoveEdge, ...) returns a brand-new graph value and
// leaves the receiver untouched, so older snapshots remain valid, independent
// and safe to read from any number of goroutines without locks.
//
// Two stores implement the same contract:
//
//   - Directed:   edges are ordered pairs; loops (a→a) are allowed by default.
//   - Undirected: (a,b) and (b,a) name the same edge; only one orientation is
//     ever stored and the reverse pair is rejected as a duplicate.
//
// Identity:
//
//	Vertex identity is its Key; Edge identity is (From, To). Values and weights
//	are payload only: re-adding an edge between the same keys with another
//	weight is a duplicate, never an update.
//
// Generic capabilities:
//
//	Key    – cmp.Ordered (copyable, totally ordered, hashable)
//	Value  – any (zero value is the default)
//	Weight – cmp.Ordered (zero value is the default)
//
// Configuration Options (Option):
//
//	– WithLoopsForbidden()
//	    AddEdge(v,v) → ErrLoopCreated.
//
//	– WithCyclesForbidden()
//	    AddEdge that would close a cycle → ErrCycleCreated (implies no loops).
//
// Core Methods (both stores):
//
//	// Snapshot queries
//	Vertices() []Vertex              // O(V·log V), sorted by key
//	Edges() []Edge                   // O(E·log E), natural edge order
//	HasKey(k) / HasEdge(e) bool      // O(1)
//
//	// Vertex lifecycle
//	AddVertex(v) (G, error)                          // ErrVertexAlreadyExists
//	RemoveVertex(v) (G, Vertex, []Edge, error)       // ErrVertexDoesNotExist, O(V+E)
//	RemoveAllVertices() (G, []Vertex, []Edge)
//
//	// Edge lifecycle
//	AddEdge(e) (G, error)            // ErrVertexDoesNotExist, ErrEdgeAlreadyExists
//	RemoveEdge(e) (G, Edge, error)   // ErrEdgeDoesNotExist
//	RemoveAllEdges() (G, []Edge)
//	RemoveAllEdgesWhereVertex(v) / RemoveAllEdgesFromVertex(v)
//
//	// Kinship
//	Successors() / Predecessors() []Kin
//	SuccessorsByKey() / PredecessorsByKey() map[K][]Edge
//
// Errors:
//
//	ErrVertexAlreadyExists – key already present
//	ErrVertexDoesNotExist  – key (or an edge endpoint) missing
//	ErrEdgeAlreadyExists   – same (from,to), or the reverse pair when undirected
//	ErrEdgeDoesNotExist    – edge missing
//	ErrLoopCreated         – loop on a store built WithLoopsForbidden
//	ErrCycleCreated        – cycle on a store built WithCyclesForbidden
//	ErrUnknown             – anything else
//
// On failure every method returns the receiver unchanged together with the
// error; a graph is never left partially updated.
package core
