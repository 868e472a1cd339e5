// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Abstract contracts (AnyGraph, Kinship, Graph) implemented by every store.
// Policy:
//   - No state here; only the operation set and its documented failures.
//   - Every mutating method returns a new graph value of the concrete type G.
// AI-HINT (file):
//   - Write algorithms against Graph[K,V,W,G]; both *Directed and *Undirected satisfy it.

package core

// AnyGraph is the CRUD contract shared by every graph store.
//
// G is the concrete graph type returned by mutations, so that chains such as
// g.AddVertex(a) → AddVertex(b) → AddEdge(e) keep their static type.
// None of the methods modify the receiver: on success they return a new
// snapshot, on failure they return the receiver together with a GraphError.
type AnyGraph[K Key, V Value, W Weight, G any] interface {
	// Vertices returns every vertex, sorted by key.
	Vertices() []Vertex[K, V]
	// Edges returns every edge in natural order.
	Edges() []Edge[K, W]
	// VertexCount returns |V|.
	VertexCount() int
	// EdgeCount returns |E|.
	EdgeCount() int

	// Vertex returns the stored vertex for key.
	Vertex(key K) (Vertex[K, V], bool)
	// HasVertex reports whether a vertex with the same key is stored.
	HasVertex(v Vertex[K, V]) bool
	// HasKey reports whether key is stored.
	HasKey(key K) bool
	// HasEdge reports whether e is stored (either orientation when undirected).
	HasEdge(e Edge[K, W]) bool
	// HasEdgeBetweenKeys is HasEdge with a default-weighted probe.
	HasEdgeBetweenKeys(from, to K) bool

	// AddVertex returns a graph with v added. Fails with ErrVertexAlreadyExists.
	AddVertex(v Vertex[K, V]) (G, error)
	// AddVertexWithKey adds a default-valued vertex.
	AddVertexWithKey(key K) (G, error)
	// AddVertices adds every vertex or none of them.
	AddVertices(vs ...Vertex[K, V]) (G, error)
	// RemoveVertex returns a graph without v, the stored vertex and every
	// edge incident to it. Fails with ErrVertexDoesNotExist.
	RemoveVertex(v Vertex[K, V]) (G, Vertex[K, V], []Edge[K, W], error)
	// RemoveVertexWhereKey is RemoveVertex with a default-valued probe.
	RemoveVertexWhereKey(key K) (G, Vertex[K, V], []Edge[K, W], error)
	// RemoveAllVertices returns an empty graph, every vertex and every edge.
	RemoveAllVertices() (G, []Vertex[K, V], []Edge[K, W])

	// AddEdge returns a graph with e added. Fails with ErrVertexDoesNotExist
	// or ErrEdgeAlreadyExists (and ErrLoopCreated / ErrCycleCreated on strict stores).
	AddEdge(e Edge[K, W]) (G, error)
	// AddEdgeBetweenKeys adds a default-weighted edge.
	AddEdgeBetweenKeys(from, to K) (G, error)
	// AddEdges adds every edge or none of them.
	AddEdges(es ...Edge[K, W]) (G, error)
	// RemoveEdge returns a graph without e and the stored edge.
	// Fails with ErrEdgeDoesNotExist.
	RemoveEdge(e Edge[K, W]) (G, Edge[K, W], error)
	// RemoveEdgeWhereKeys is RemoveEdge with a default-weighted probe.
	RemoveEdgeWhereKeys(from, to K) (G, Edge[K, W], error)
	// RemoveAllEdges keeps the vertices and drops every edge. Never fails.
	RemoveAllEdges() (G, []Edge[K, W])
	// RemoveAllEdgesWhereVertex drops every edge incident to v.
	RemoveAllEdgesWhereVertex(v Vertex[K, V]) (G, []Edge[K, W], error)
	// RemoveAllEdgesWhereKey is RemoveAllEdgesWhereVertex with a probe.
	RemoveAllEdgesWhereKey(key K) (G, []Edge[K, W], error)
	// RemoveAllEdgesFromVertex drops every edge originating at v.
	RemoveAllEdgesFromVertex(v Vertex[K, V]) (G, []Edge[K, W], error)
	// RemoveAllEdgesFromKey is RemoveAllEdgesFromVertex with a probe.
	RemoveAllEdgesFromKey(key K) (G, []Edge[K, W], error)
}

// Kin pairs a vertex with the edges adjacent to it in one direction.
type Kin[K Key, V Value, W Weight] struct {
	Vertex Vertex[K, V]
	Edges  []Edge[K, W]
}

// Kinship derives successor/predecessor indexes from a graph snapshot.
//
// Results are computed on every call and owned by the caller. Every vertex is
// present, even with an empty edge list; edge lists are in natural order.
type Kinship[K Key, V Value, W Weight] interface {
	// Successors lists, per vertex (sorted by key), the edges leaving it.
	Successors() []Kin[K, V, W]
	// Predecessors lists, per vertex (sorted by key), the edges entering it.
	Predecessors() []Kin[K, V, W]
	// SuccessorsByKey is Successors keyed by vertex key.
	SuccessorsByKey() map[K][]Edge[K, W]
	// PredecessorsByKey is Predecessors keyed by vertex key.
	PredecessorsByKey() map[K][]Edge[K, W]
	// KeyVertexMap maps every key to its stored vertex.
	KeyVertexMap() map[K]Vertex[K, V]
}

// Graph is the full contract consumed by traversal algorithms.
type Graph[K Key, V Value, W Weight, G any] interface {
	AnyGraph[K, V, W, G]
	Kinship[K, V, W]
	// Directed reports whether edges are ordered pairs.
	Directed() bool
}

// Compile-time checks: both stores satisfy the full contract.
var (
	_ Graph[int, string, int, *Directed[int, string, int]]   = (*Directed[int, string, int])(nil)
	_ Graph[int, string, int, *Undirected[int, string, int]] = (*Undirected[int, string, int])(nil)
)
