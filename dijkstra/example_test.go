// Package dijkstra_test provides examples demonstrating how to use the Dijkstra solver.
// Each example is runnable via "go test -run Example", showing both code and expected output.
package dijkstra_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/minpq"
)

// ExampleNew computes shortest paths on a four-vertex graph where the chain
// A→B→C→D beats both shortcuts.
// Complexity: O((V+E) log V).
func ExampleNew() {
	g := core.NewDigraph[string]()
	_ = g.AddEdge("A", "B", 1)
	_ = g.AddEdge("A", "C", 4)
	_ = g.AddEdge("B", "C", 2)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 1)

	s, err := dijkstra.New[string](g, "A")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, v := range []string{"A", "B", "C", "D"} {
		fmt.Printf("dist[%s]=%g\n", v, s.DistTo(v))
	}
	path, _ := s.Solution("D")
	fmt.Println("path:", path)
	// Output:
	// dist[A]=0
	// dist[B]=1
	// dist[C]=3
	// dist[D]=4
	// path: [A B C D]
}

// ExampleWithQueue swaps the frontier implementation; the result is the same.
func ExampleWithQueue() {
	g := core.NewDigraph[string]()
	_ = g.AddEdge("A", "B", 4)
	_ = g.AddEdge("A", "C", 2)
	_ = g.AddEdge("B", "D", 5)
	_ = g.AddEdge("C", "D", 10)
	_ = g.AddEdge("C", "E", 3)
	_ = g.AddEdge("E", "D", 4)

	for _, k := range []minpq.Kind{minpq.KindUnsorted, minpq.KindDoubleMap} {
		s, err := dijkstra.New[string](g, "A", dijkstra.WithQueue[string](k))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		path, _ := s.Solution("D")
		fmt.Printf("%-9s %v (%g)\n", k, path, s.DistTo("D"))
	}
	// Output:
	// unsorted  [A C E D] (9)
	// doublemap [A C E D] (9)
}

// ExampleWithMaxDistance limits exploration to a radius around the start.
func ExampleWithMaxDistance() {
	g := core.NewDigraph[string]()
	for i, v := range []string{"A", "B", "C", "D", "E"} {
		if i > 0 {
			_ = g.AddEdge(string(rune('A'+i-1)), v, 1)
		}
	}

	s, _ := dijkstra.New[string](g, "A", dijkstra.WithMaxDistance[string](2))
	_, err := s.Solution("E")
	fmt.Println("reached:", s.Tree().Len(), "no path to E:", errors.Is(err, core.ErrNoPath))
	// Output: reached: 3 no path to E: true
}
