package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// ExampleBFS_gridTraversal demonstrates BFS layering on a 3×3 grid whose
// edges point right and down.
func ExampleBFS_gridTraversal() {
	g := core.NewDigraph[string]()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if j+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i, j+1), 1)
			}
			if i+1 < 3 {
				_ = g.AddEdge(fmt.Sprintf("%d_%d", i, j), fmt.Sprintf("%d_%d", i+1, j), 1)
			}
		}
	}

	res, err := bfs.BFS[string](g, "0_0")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Order)
	// Output:
	// [0_0 0_1 1_0 0_2 1_1 2_0 1_2 2_1 2_2]
}

// ExampleResult_PathTo reconstructs a fewest-edges path.
func ExampleResult_PathTo() {
	g := core.NewDigraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("B", "C", 1)
	_ = g.AddEdge("A", "C", 10)

	res, _ := bfs.BFS[string](g, "A")
	path, _ := res.PathTo("C")
	fmt.Println(path)
	// Output: [A C]
}
