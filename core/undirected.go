// SPDX-License-Identifier: MIT
//
// File: undirected.go
// Role: Persistent undirected graph store.
// Semantics:
//   - (a,b) and (b,a) are the same edge; only the orientation first added is stored.
//   - Lookups and removals accept either orientation.
//   - "From" has no directional meaning: RemoveAllEdgesFrom* aliases RemoveAllEdgesWhere*.
//   - Kinship lists an edge under both endpoints (a loop once); predecessors == successors.

package core

// Undirected is an immutable undirected graph value.
//
// The zero value is not usable; build one with NewUndirected or NewUndirectedFrom.
// A *Undirected may be shared freely between goroutines.
type Undirected[K Key, V Value, W Weight] struct {
	store[K, V, W]
}

// NewUndirected returns an empty undirected graph.
func NewUndirected[K Key, V Value, W Weight](opts ...Option) *Undirected[K, V, W] {
	return &Undirected[K, V, W]{store: newStore[K, V, W](newConfig(opts...))}
}

// NewUndirectedFrom bulk-loads vertices, then edges, with the same checks as
// repeated AddVertex/AddEdge calls. Reverse duplicates are rejected.
func NewUndirectedFrom[K Key, V Value, W Weight](vertices []Vertex[K, V], edges []Edge[K, W], opts ...Option) (*Undirected[K, V, W], error) {
	s := newStore[K, V, W](newConfig(opts...))
	for _, v := range vertices {
		if err := s.putVertex(v); err != nil {
			return nil, err
		}
	}
	if err := putUndirectedEdges(s, edges); err != nil {
		return nil, err
	}
	return &Undirected[K, V, W]{store: s}, nil
}

// Directed always reports false.
func (g *Undirected[K, V, W]) Directed() bool { return false }

// Equal reports structural equality: same vertex keys and same stored edges.
func (g *Undirected[K, V, W]) Equal(o *Undirected[K, V, W]) bool {
	if g == nil || o == nil {
		return g == o
	}
	if g.VertexCount() != o.VertexCount() || g.EdgeCount() != o.EdgeCount() {
		return false
	}
	for k := range g.vertices {
		if !o.HasKey(k) {
			return false
		}
	}
	// Orientation is not part of identity here.
	for _, e := range g.edges {
		if !o.HasEdge(e) {
			return false
		}
	}
	return true
}

// lookup returns the stored edge matching e in either orientation.
func (g *Undirected[K, V, W]) lookup(e Edge[K, W]) (Edge[K, W], bool) {
	return lookupUndirected(g.store, e)
}

// HasEdge reports whether e or its reverse is stored. O(1).
func (g *Undirected[K, V, W]) HasEdge(e Edge[K, W]) bool {
	_, ok := g.lookup(e)
	return ok
}

// HasEdgeBetweenKeys reports whether a–b is stored in either orientation.
func (g *Undirected[K, V, W]) HasEdgeBetweenKeys(a, b K) bool {
	return g.HasEdge(NewEdge[K, W](a, b))
}

// AddVertex returns a graph with v added. Errors: ErrVertexAlreadyExists.
func (g *Undirected[K, V, W]) AddVertex(v Vertex[K, V]) (*Undirected[K, V, W], error) {
	if g.HasKey(v.key) {
		return g, vertexErr(ErrVertexAlreadyExists, "add vertex", v.key)
	}
	ns := g.clone()
	ns.vertices[v.key] = v
	return &Undirected[K, V, W]{store: ns}, nil
}

// AddVertexWithKey adds a default-valued vertex for key.
func (g *Undirected[K, V, W]) AddVertexWithKey(key K) (*Undirected[K, V, W], error) {
	return g.AddVertex(NewVertex[K, V](key))
}

// AddVertices adds every vertex in order, or none of them.
func (g *Undirected[K, V, W]) AddVertices(vs ...Vertex[K, V]) (*Undirected[K, V, W], error) {
	ns := g.clone()
	for _, v := range vs {
		if err := ns.putVertex(v); err != nil {
			return g, err
		}
	}
	return &Undirected[K, V, W]{store: ns}, nil
}

// RemoveVertex returns a graph without v, the stored vertex and every edge touching v.
// Errors: ErrVertexDoesNotExist.
func (g *Undirected[K, V, W]) RemoveVertex(v Vertex[K, V]) (*Undirected[K, V, W], Vertex[K, V], []Edge[K, W], error) {
	stored, ok := g.vertices[v.key]
	if !ok {
		return g, Vertex[K, V]{}, nil, vertexErr(ErrVertexDoesNotExist, "remove vertex", v.key)
	}
	ns := g.clone()
	delete(ns.vertices, v.key)
	removed := ns.dropIncident(func(e Edge[K, W]) bool { return e.from == v.key || e.to == v.key })
	return &Undirected[K, V, W]{store: ns}, stored, removed, nil
}

// RemoveVertexWhereKey removes the vertex stored under key.
func (g *Undirected[K, V, W]) RemoveVertexWhereKey(key K) (*Undirected[K, V, W], Vertex[K, V], []Edge[K, W], error) {
	return g.RemoveVertex(NewVertex[K, V](key))
}

// RemoveAllVertices returns an empty graph with the same options, plus every
// removed vertex and edge.
func (g *Undirected[K, V, W]) RemoveAllVertices() (*Undirected[K, V, W], []Vertex[K, V], []Edge[K, W]) {
	return &Undirected[K, V, W]{store: newStore[K, V, W](g.cfg)}, g.Vertices(), g.Edges()
}

// AddEdge returns a graph with e added.
//
// Errors:
//   - ErrVertexDoesNotExist if an endpoint is missing.
//   - ErrEdgeAlreadyExists if e or its reverse is stored.
//   - ErrLoopCreated / ErrCycleCreated on strict stores.
func (g *Undirected[K, V, W]) AddEdge(e Edge[K, W]) (*Undirected[K, V, W], error) {
	if err := admitUndirectedEdge(g.store, e); err != nil {
		return g, err
	}
	ns := g.clone()
	ns.edges[e.id()] = e
	return &Undirected[K, V, W]{store: ns}, nil
}

// AddEdgeBetweenKeys adds a default-weighted edge a–b.
func (g *Undirected[K, V, W]) AddEdgeBetweenKeys(a, b K) (*Undirected[K, V, W], error) {
	return g.AddEdge(NewEdge[K, W](a, b))
}

// AddEdges adds every edge in order, or none of them.
func (g *Undirected[K, V, W]) AddEdges(es ...Edge[K, W]) (*Undirected[K, V, W], error) {
	ns := g.clone()
	if err := putUndirectedEdges(ns, es); err != nil {
		return g, err
	}
	return &Undirected[K, V, W]{store: ns}, nil
}

// RemoveEdge removes e, whichever orientation is stored, and returns the
// stored edge. Errors: ErrEdgeDoesNotExist.
func (g *Undirected[K, V, W]) RemoveEdge(e Edge[K, W]) (*Undirected[K, V, W], Edge[K, W], error) {
	stored, ok := g.lookup(e)
	if !ok {
		return g, Edge[K, W]{}, edgeErr(ErrEdgeDoesNotExist, "remove edge", e.from, e.to)
	}
	ns := g.clone()
	delete(ns.edges, stored.id())
	return &Undirected[K, V, W]{store: ns}, stored, nil
}

// RemoveEdgeWhereKeys removes the edge a–b.
func (g *Undirected[K, V, W]) RemoveEdgeWhereKeys(a, b K) (*Undirected[K, V, W], Edge[K, W], error) {
	return g.RemoveEdge(NewEdge[K, W](a, b))
}

// RemoveAllEdges keeps every vertex and drops every edge.
func (g *Undirected[K, V, W]) RemoveAllEdges() (*Undirected[K, V, W], []Edge[K, W]) {
	return &Undirected[K, V, W]{store: g.cloneVerticesOnly()}, g.Edges()
}

// RemoveAllEdgesWhereVertex drops every edge touching v.
// Errors: ErrVertexDoesNotExist. Complexity: O(E) scan.
func (g *Undirected[K, V, W]) RemoveAllEdgesWhereVertex(v Vertex[K, V]) (*Undirected[K, V, W], []Edge[K, W], error) {
	if !g.HasKey(v.key) {
		return g, nil, vertexErr(ErrVertexDoesNotExist, "remove edges where vertex", v.key)
	}
	ns := g.clone()
	removed := ns.dropIncident(func(e Edge[K, W]) bool { return e.from == v.key || e.to == v.key })
	return &Undirected[K, V, W]{store: ns}, removed, nil
}

// RemoveAllEdgesWhereKey is RemoveAllEdgesWhereVertex for key.
func (g *Undirected[K, V, W]) RemoveAllEdgesWhereKey(key K) (*Undirected[K, V, W], []Edge[K, W], error) {
	return g.RemoveAllEdgesWhereVertex(NewVertex[K, V](key))
}

// RemoveAllEdgesFromVertex is RemoveAllEdgesWhereVertex: without direction
// every incident edge also starts at v.
func (g *Undirected[K, V, W]) RemoveAllEdgesFromVertex(v Vertex[K, V]) (*Undirected[K, V, W], []Edge[K, W], error) {
	return g.RemoveAllEdgesWhereVertex(v)
}

// RemoveAllEdgesFromKey is RemoveAllEdgesFromVertex for key.
func (g *Undirected[K, V, W]) RemoveAllEdgesFromKey(key K) (*Undirected[K, V, W], []Edge[K, W], error) {
	return g.RemoveAllEdgesFromVertex(NewVertex[K, V](key))
}

// Successors lists, per vertex, every edge touching it.
func (g *Undirected[K, V, W]) Successors() []Kin[K, V, W] {
	return g.kins(g.successorsByKey(true))
}

// Predecessors is identical to Successors.
func (g *Undirected[K, V, W]) Predecessors() []Kin[K, V, W] {
	return g.Successors()
}

// SuccessorsByKey maps every key to the edges touching it.
func (g *Undirected[K, V, W]) SuccessorsByKey() map[K][]Edge[K, W] {
	return g.successorsByKey(true)
}

// PredecessorsByKey is identical to SuccessorsByKey.
func (g *Undirected[K, V, W]) PredecessorsByKey() map[K][]Edge[K, W] {
	return g.successorsByKey(true)
}

func lookupUndirected[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) (Edge[K, W], bool) {
	if stored, ok := s.edges[e.id()]; ok {
		return stored, true
	}
	stored, ok := s.edges[e.Reversed().id()]
	return stored, ok
}

// admitUndirectedEdge validates e against s without modifying it.
func admitUndirectedEdge[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) error {
	if err := s.checkEndpoints(e); err != nil {
		return err
	}
	if _, ok := lookupUndirected(s, e); ok {
		return edgeErr(ErrEdgeAlreadyExists, "add edge", e.from, e.to)
	}
	// a–b closes a cycle iff a and b are already connected.
	if s.cfg.forbidCycles && s.reaches(e.from, e.to, true) {
		return edgeErr(ErrCycleCreated, "add edge", e.from, e.to)
	}
	return nil
}

// putUndirectedEdges inserts es in order into a store under construction.
// With cycles forbidden, connectivity is tracked with a union-find seeded
// from the stored edges instead of one reachability probe per edge.
func putUndirectedEdges[K Key, V Value, W Weight](s store[K, V, W], es []Edge[K, W]) error {
	if !s.cfg.forbidCycles {
		for _, e := range es {
			if err := putUndirectedEdge(s, e); err != nil {
				return err
			}
		}
		return nil
	}

	f := s.forest()
	for _, e := range es {
		if err := s.checkEndpoints(e); err != nil {
			return err
		}
		if _, ok := lookupUndirected(s, e); ok {
			return edgeErr(ErrEdgeAlreadyExists, "add edge", e.from, e.to)
		}
		if !f.union(e.from, e.to) {
			return edgeErr(ErrCycleCreated, "add edge", e.from, e.to)
		}
		s.edges[e.id()] = e
	}
	return nil
}

// putUndirectedEdge validates and inserts e into a store under construction.
func putUndirectedEdge[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) error {
	if err := admitUndirectedEdge(s, e); err != nil {
		return err
	}
	s.edges[e.id()] = e
	return nil
}
