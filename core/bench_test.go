package core_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/lvpath/core"
)

// BenchmarkAddEdge measures edge insertion into a star.
func BenchmarkAddEdge(b *testing.B) {
	g := core.NewDigraph(core.WithMultiEdges[string]())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.AddEdge("Root", fmt.Sprintf("N%d", i%1000), float64(i))
	}
}

// BenchmarkNeighbors measures neighbor retrieval from a 1000-leaf star.
func BenchmarkNeighbors(b *testing.B) {
	g := core.NewDigraph[int]()
	for i := 1; i <= 1000; i++ {
		_ = g.AddEdge(0, i, 1)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.Neighbors(0)
	}
}

// BenchmarkClone measures deep-copying a 1000-edge graph.
func BenchmarkClone(b *testing.B) {
	g := core.NewDigraph[int]()
	for i := 0; i < 1000; i++ {
		_ = g.AddEdge(i, i+1, float64(i))
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
