// SPDX-License-Identifier: MIT

package algorithms_test

import (
	"fmt"

	"github.com/katalvlaran/graphific/algorithms"
	"github.com/katalvlaran/graphific/core"
)

// ExampleBFS extracts the breadth-first tree of a small directed graph.
func ExampleBFS() {
	vs := []core.Vertex[int, string]{}
	for k := 1; k <= 4; k++ {
		vs = append(vs, core.NewVertex[int, string](k))
	}
	g, _ := core.NewDirectedFrom(vs, []core.Edge[int, int]{
		core.NewEdge[int, int](1, 2),
		core.NewEdge[int, int](1, 3),
		core.NewEdge[int, int](2, 3),
		core.NewEdge[int, int](3, 4),
		core.NewEdge[int, int](4, 1),
	})

	tree, err := algorithms.BFS(g, vs[0], algorithms.NaturalOrder[int, int]())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tree.VertexCount(), tree.Edges())

	// Output:
	// 4 [1--0->2 1--0->3 3--0->4]
}

// ExampleDFS walks cheapest edges first and reports each discovery.
func ExampleDFS() {
	g, _ := core.NewUndirectedFrom(
		[]core.Vertex[string, int]{
			core.NewVertex[string, int]("hub"),
			core.NewVertex[string, int]("a"),
			core.NewVertex[string, int]("b"),
			core.NewVertex[string, int]("c"),
		},
		[]core.Edge[string, float64]{
			core.NewEdgeWithWeight("hub", "a", 3.0),
			core.NewEdgeWithWeight("hub", "b", 1.0),
			core.NewEdgeWithWeight("b", "c", 2.0),
		},
	)

	hooks := algorithms.Hooks[string, int, float64]{
		OnTreeEdge: func(e core.Edge[string, float64]) { fmt.Println("discovered", e.To()) },
	}
	_, _ = algorithms.DFSFromKey[string, int, float64](g, "hub", algorithms.ByWeight[string, float64](), algorithms.WithHooks(hooks))

	// Output:
	// discovered b
	// discovered a
	// discovered c
}

// ExampleSimpleBFS shows that an empty graph is already searched.
func ExampleSimpleBFS() {
	g := core.NewDirected[int, string, int]()
	res, err := algorithms.SimpleBFS[int, string, int](g)
	fmt.Println(res.VertexCount(), err)

	// Output:
	// 0 <nil>
}
