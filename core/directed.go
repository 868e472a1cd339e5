// SPDX-License-Identifier: MIT
//
// File: directed.go
// Role: Persistent directed graph store.
// Semantics:
//   - Edges are ordered pairs; a→b and b→a are distinct edges.
//   - Loops are allowed unless WithLoopsForbidden/WithCyclesForbidden is set.
//   - Parallel edges between the same ordered pair are rejected (set semantics).
// Persistence:
//   - Every mutation returns a fresh *Directed; on error the receiver itself is returned.

package core

// Directed is an immutable directed graph value.
//
// The zero value is not usable; build one with NewDirected or NewDirectedFrom.
// A *Directed may be shared freely between goroutines.
type Directed[K Key, V Value, W Weight] struct {
	store[K, V, W]
}

// NewDirected returns an empty directed graph.
// Complexity: O(len(opts)).
func NewDirected[K Key, V Value, W Weight](opts ...Option) *Directed[K, V, W] {
	return &Directed[K, V, W]{store: newStore[K, V, W](newConfig(opts...))}
}

// NewDirectedFrom bulk-loads vertices, then edges, applying the same checks
// as repeated AddVertex/AddEdge calls but paying for a single allocation.
//
// Errors:
//   - ErrVertexAlreadyExists, ErrVertexDoesNotExist, ErrEdgeAlreadyExists,
//     ErrLoopCreated, ErrCycleCreated (first failure wins; nothing is returned).
//
// Complexity: O(V+E). Under WithCyclesForbidden a failing load replays the
// edges one by one to name the first offender, O(E·(V+E)).
func NewDirectedFrom[K Key, V Value, W Weight](vertices []Vertex[K, V], edges []Edge[K, W], opts ...Option) (*Directed[K, V, W], error) {
	s := newStore[K, V, W](newConfig(opts...))
	for _, v := range vertices {
		if err := s.putVertex(v); err != nil {
			return nil, err
		}
	}
	if err := putDirectedEdges(s, edges); err != nil {
		return nil, err
	}
	return &Directed[K, V, W]{store: s}, nil
}

// Directed always reports true.
func (g *Directed[K, V, W]) Directed() bool { return true }

// Equal reports structural equality: same vertex keys and same edges (by identity).
func (g *Directed[K, V, W]) Equal(o *Directed[K, V, W]) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.store.equal(o.store)
}

// HasEdge reports whether the ordered pair (e.From, e.To) is stored. O(1).
func (g *Directed[K, V, W]) HasEdge(e Edge[K, W]) bool {
	_, ok := g.edges[e.id()]
	return ok
}

// HasEdgeBetweenKeys reports whether from→to is stored. O(1).
func (g *Directed[K, V, W]) HasEdgeBetweenKeys(from, to K) bool {
	return g.HasEdge(NewEdge[K, W](from, to))
}

// AddVertex returns a graph with v added.
// Errors: ErrVertexAlreadyExists. Complexity: O(V+E) for the copy.
func (g *Directed[K, V, W]) AddVertex(v Vertex[K, V]) (*Directed[K, V, W], error) {
	if g.HasKey(v.key) {
		return g, vertexErr(ErrVertexAlreadyExists, "add vertex", v.key)
	}
	ns := g.clone()
	ns.vertices[v.key] = v
	return &Directed[K, V, W]{store: ns}, nil
}

// AddVertexWithKey adds a default-valued vertex for key.
func (g *Directed[K, V, W]) AddVertexWithKey(key K) (*Directed[K, V, W], error) {
	return g.AddVertex(NewVertex[K, V](key))
}

// AddVertices adds every vertex in order, or none of them.
func (g *Directed[K, V, W]) AddVertices(vs ...Vertex[K, V]) (*Directed[K, V, W], error) {
	ns := g.clone()
	for _, v := range vs {
		if err := ns.putVertex(v); err != nil {
			return g, err
		}
	}
	return &Directed[K, V, W]{store: ns}, nil
}

// RemoveVertex returns a graph without v, the stored vertex, and every edge
// starting or ending at v (natural order).
// Errors: ErrVertexDoesNotExist. Complexity: O(V+E).
func (g *Directed[K, V, W]) RemoveVertex(v Vertex[K, V]) (*Directed[K, V, W], Vertex[K, V], []Edge[K, W], error) {
	stored, ok := g.vertices[v.key]
	if !ok {
		return g, Vertex[K, V]{}, nil, vertexErr(ErrVertexDoesNotExist, "remove vertex", v.key)
	}
	ns := g.clone()
	delete(ns.vertices, v.key)
	removed := ns.dropIncident(func(e Edge[K, W]) bool { return e.from == v.key || e.to == v.key })
	return &Directed[K, V, W]{store: ns}, stored, removed, nil
}

// RemoveVertexWhereKey removes the vertex stored under key.
func (g *Directed[K, V, W]) RemoveVertexWhereKey(key K) (*Directed[K, V, W], Vertex[K, V], []Edge[K, W], error) {
	return g.RemoveVertex(NewVertex[K, V](key))
}

// RemoveAllVertices returns an empty graph with the same options, plus every
// removed vertex and edge. Never fails.
func (g *Directed[K, V, W]) RemoveAllVertices() (*Directed[K, V, W], []Vertex[K, V], []Edge[K, W]) {
	return &Directed[K, V, W]{store: newStore[K, V, W](g.cfg)}, g.Vertices(), g.Edges()
}

// AddEdge returns a graph with e added.
//
// Errors:
//   - ErrVertexDoesNotExist if an endpoint is missing.
//   - ErrEdgeAlreadyExists if (From, To) is stored, whatever its weight.
//   - ErrLoopCreated / ErrCycleCreated on strict stores.
//
// Complexity: O(V+E) for the copy.
func (g *Directed[K, V, W]) AddEdge(e Edge[K, W]) (*Directed[K, V, W], error) {
	if err := admitDirectedEdge(g.store, e); err != nil {
		return g, err
	}
	ns := g.clone()
	ns.edges[e.id()] = e
	return &Directed[K, V, W]{store: ns}, nil
}

// AddEdgeBetweenKeys adds a default-weighted edge from→to.
func (g *Directed[K, V, W]) AddEdgeBetweenKeys(from, to K) (*Directed[K, V, W], error) {
	return g.AddEdge(NewEdge[K, W](from, to))
}

// AddEdges adds every edge in order, or none of them.
// The cycle policy is checked once for the whole batch.
func (g *Directed[K, V, W]) AddEdges(es ...Edge[K, W]) (*Directed[K, V, W], error) {
	ns := g.clone()
	if err := putDirectedEdges(ns, es); err != nil {
		return g, err
	}
	return &Directed[K, V, W]{store: ns}, nil
}

// RemoveEdge returns a graph without e and the stored edge (with its weight).
// Errors: ErrEdgeDoesNotExist.
func (g *Directed[K, V, W]) RemoveEdge(e Edge[K, W]) (*Directed[K, V, W], Edge[K, W], error) {
	stored, ok := g.edges[e.id()]
	if !ok {
		return g, Edge[K, W]{}, edgeErr(ErrEdgeDoesNotExist, "remove edge", e.from, e.to)
	}
	ns := g.clone()
	delete(ns.edges, stored.id())
	return &Directed[K, V, W]{store: ns}, stored, nil
}

// RemoveEdgeWhereKeys removes the edge from→to.
func (g *Directed[K, V, W]) RemoveEdgeWhereKeys(from, to K) (*Directed[K, V, W], Edge[K, W], error) {
	return g.RemoveEdge(NewEdge[K, W](from, to))
}

// RemoveAllEdges keeps every vertex and drops every edge. Never fails.
func (g *Directed[K, V, W]) RemoveAllEdges() (*Directed[K, V, W], []Edge[K, W]) {
	return &Directed[K, V, W]{store: g.cloneVerticesOnly()}, g.Edges()
}

// RemoveAllEdgesWhereVertex drops every edge starting or ending at v.
// Errors: ErrVertexDoesNotExist. Complexity: O(E) scan.
func (g *Directed[K, V, W]) RemoveAllEdgesWhereVertex(v Vertex[K, V]) (*Directed[K, V, W], []Edge[K, W], error) {
	if !g.HasKey(v.key) {
		return g, nil, vertexErr(ErrVertexDoesNotExist, "remove edges where vertex", v.key)
	}
	ns := g.clone()
	removed := ns.dropIncident(func(e Edge[K, W]) bool { return e.from == v.key || e.to == v.key })
	return &Directed[K, V, W]{store: ns}, removed, nil
}

// RemoveAllEdgesWhereKey is RemoveAllEdgesWhereVertex for key.
func (g *Directed[K, V, W]) RemoveAllEdgesWhereKey(key K) (*Directed[K, V, W], []Edge[K, W], error) {
	return g.RemoveAllEdgesWhereVertex(NewVertex[K, V](key))
}

// RemoveAllEdgesFromVertex drops only the edges leaving v.
// Errors: ErrVertexDoesNotExist. Complexity: O(E) scan.
func (g *Directed[K, V, W]) RemoveAllEdgesFromVertex(v Vertex[K, V]) (*Directed[K, V, W], []Edge[K, W], error) {
	if !g.HasKey(v.key) {
		return g, nil, vertexErr(ErrVertexDoesNotExist, "remove edges from vertex", v.key)
	}
	ns := g.clone()
	removed := ns.dropIncident(func(e Edge[K, W]) bool { return e.from == v.key })
	return &Directed[K, V, W]{store: ns}, removed, nil
}

// RemoveAllEdgesFromKey is RemoveAllEdgesFromVertex for key.
func (g *Directed[K, V, W]) RemoveAllEdgesFromKey(key K) (*Directed[K, V, W], []Edge[K, W], error) {
	return g.RemoveAllEdgesFromVertex(NewVertex[K, V](key))
}

// Successors lists the outgoing edges of every vertex.
func (g *Directed[K, V, W]) Successors() []Kin[K, V, W] {
	return g.kins(g.successorsByKey(false))
}

// Predecessors lists the incoming edges of every vertex.
func (g *Directed[K, V, W]) Predecessors() []Kin[K, V, W] {
	return g.kins(g.predecessorsByKey())
}

// SuccessorsByKey maps every key to its outgoing edges.
func (g *Directed[K, V, W]) SuccessorsByKey() map[K][]Edge[K, W] {
	return g.successorsByKey(false)
}

// PredecessorsByKey maps every key to its incoming edges.
func (g *Directed[K, V, W]) PredecessorsByKey() map[K][]Edge[K, W] {
	return g.predecessorsByKey()
}

// admitDirectedEdge validates e against s without modifying it.
func admitDirectedEdge[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) error {
	if err := admitDirectedShape(s, e); err != nil {
		return err
	}
	// from→to closes a cycle iff from is already reachable from to.
	if s.cfg.forbidCycles && s.reaches(e.to, e.from, false) {
		return edgeErr(ErrCycleCreated, "add edge", e.from, e.to)
	}
	return nil
}

// admitDirectedShape checks endpoints, loop policy and duplicates.
func admitDirectedShape[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) error {
	if err := s.checkEndpoints(e); err != nil {
		return err
	}
	if _, ok := s.edges[e.id()]; ok {
		return edgeErr(ErrEdgeAlreadyExists, "add edge", e.from, e.to)
	}
	return nil
}

// putDirectedEdges inserts es in order into a store under construction.
// With cycles forbidden the batch is checked once; on any failure the batch
// is rolled back and replayed edge by edge so the error matches what
// repeated AddEdge calls would report.
func putDirectedEdges[K Key, V Value, W Weight](s store[K, V, W], es []Edge[K, W]) error {
	if !s.cfg.forbidCycles {
		for _, e := range es {
			if err := putDirectedEdge(s, e); err != nil {
				return err
			}
		}
		return nil
	}

	added := make([]edgeID[K], 0, len(es))
	var shapeErr error
	for _, e := range es {
		if shapeErr = admitDirectedShape(s, e); shapeErr != nil {
			break
		}
		s.edges[e.id()] = e
		added = append(added, e.id())
	}
	if shapeErr == nil && s.acyclic() {
		return nil
	}
	for _, id := range added {
		delete(s.edges, id)
	}
	for _, e := range es {
		if err := putDirectedEdge(s, e); err != nil {
			return err
		}
	}
	return shapeErr
}

// putDirectedEdge validates and inserts e into a store under construction.
func putDirectedEdge[K Key, V Value, W Weight](s store[K, V, W], e Edge[K, W]) error {
	if err := admitDirectedEdge(s, e); err != nil {
		return err
	}
	s.edges[e.id()] = e
	return nil
}
