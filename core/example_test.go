package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/core"
)

// ExampleDigraph demonstrates building a graph and querying adjacency.
func ExampleDigraph() {
	g := core.NewDigraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("A", "C", 5)

	fmt.Println("Vertices:", g.Vertices())
	nbs, _ := g.Neighbors("A")
	for _, e := range nbs {
		fmt.Println(e)
	}
	_, err := g.Neighbors("Z")
	fmt.Println(err)

	// Output:
	// Vertices: [A B C]
	// A -> B (1)
	// A -> C (5)
	// core: vertex not found
}

// ExampleGraphFunc shows a graph whose edges are generated on demand.
func ExampleGraphFunc() {
	// each integer n links to 2n (cost 1) and n+1 (cost 1)
	g := core.GraphFunc[int](func(n int) ([]core.Edge[int], error) {
		return []core.Edge[int]{
			{From: n, To: 2 * n, Weight: 1},
			{From: n, To: n + 1, Weight: 1},
		}, nil
	})
	nbs, _ := g.Neighbors(5)
	fmt.Println(nbs[0].To, nbs[1].To)
	// Output: 10 6
}

// ExamplePathTree reconstructs a path from predecessor edges.
func ExamplePathTree() {
	tree := core.NewPathTree("A",
		map[string]core.Edge[string]{
			"B": {From: "A", To: "B", Weight: 1},
			"C": {From: "B", To: "C", Weight: 2},
		},
		map[string]float64{"A": 0, "B": 1, "C": 3},
	)
	path, _ := tree.PathTo("C")
	fmt.Println(path, tree.DistTo("C"))
	// Output: [A B C] 3
}
