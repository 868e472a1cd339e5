// SPDX-License-Identifier: MIT
//
// File: acyclic.go
// Role: Cycle checks backing WithCyclesForbidden.
// Complexity:
//   - reaches: O(V+E) per probe (adjacency build + iterative DFS).
//   - acyclic: O(V+E) once per directed batch (Kahn).
//   - forest:  O((V+E)·α) for an undirected batch (union-find).

package core

// reaches reports whether target is reachable from start over the stored edges.
// With symmetric set, edges are followed in both directions.
func (s store[K, V, W]) reaches(start, target K, symmetric bool) bool {
	if start == target {
		return true
	}
	adj := make(map[K][]K, len(s.vertices))
	for _, e := range s.edges {
		adj[e.from] = append(adj[e.from], e.to)
		if symmetric && e.from != e.to {
			adj[e.to] = append(adj[e.to], e.from)
		}
	}

	seen := map[K]struct{}{start: {}}
	stack := []K{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range adj[cur] {
			if next == target {
				return true
			}
			if _, ok := seen[next]; ok {
				continue
			}
			seen[next] = struct{}{}
			stack = append(stack, next)
		}
	}
	return false
}

// acyclic reports whether the stored directed edges contain no cycle.
// A loop counts as a cycle.
func (s store[K, V, W]) acyclic() bool {
	indeg := make(map[K]int, len(s.vertices))
	adj := make(map[K][]K, len(s.vertices))
	for _, e := range s.edges {
		adj[e.from] = append(adj[e.from], e.to)
		indeg[e.to]++
	}
	queue := make([]K, 0, len(s.vertices))
	for k := range s.vertices {
		if indeg[k] == 0 {
			queue = append(queue, k)
		}
	}
	drained := 0
	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		drained++
		for _, next := range adj[cur] {
			if indeg[next]--; indeg[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return drained == len(s.vertices)
}

// forest is a union-find over vertex keys, seeded with the stored edges.
type forest[K Key] struct {
	parent map[K]K
}

func (s store[K, V, W]) forest() *forest[K] {
	f := &forest[K]{parent: make(map[K]K, len(s.vertices))}
	for _, e := range s.edges {
		f.union(e.from, e.to)
	}
	return f
}

func (f *forest[K]) find(k K) K {
	for {
		p, ok := f.parent[k]
		if !ok || p == k {
			return k
		}
		// path halving
		if gp, ok := f.parent[p]; ok {
			f.parent[k] = gp
		}
		k = p
	}
}

// union joins the components of a and b and reports false when they were
// already connected.
func (f *forest[K]) union(a, b K) bool {
	ra, rb := f.find(a), f.find(b)
	if ra == rb {
		return false
	}
	f.parent[ra] = rb
	return true
}
