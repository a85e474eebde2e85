package bfs_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/bfs"
	"github.com/katalvlaran/lvpath/core"
)

// cycle4 builds the directed cycle A→B→C→D→A plus the chord A→C.
func cycle4(t *testing.T) *core.Digraph[string] {
	t.Helper()
	g := core.NewDigraph[string]()
	require.NoError(t, g.AddEdge("A", "B", 1))
	require.NoError(t, g.AddEdge("B", "C", 1))
	require.NoError(t, g.AddEdge("C", "D", 1))
	require.NoError(t, g.AddEdge("D", "A", 1))
	require.NoError(t, g.AddEdge("A", "C", 7))

	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewDigraph[string]()
	_, err = bfs.BFS[string](g, "missing")
	assert.ErrorIs(t, err, bfs.ErrNeighbors)
	assert.ErrorIs(t, err, core.ErrVertexNotFound)

	g.AddVertex("A")
	_, err = bfs.BFS[string](g, "A", bfs.WithMaxDepth[string](-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestBFS_SingleVertex covers the trivial one-vertex graph.
func TestBFS_SingleVertex(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("A")
	res, err := bfs.BFS[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, res.Order)
	assert.Equal(t, 0, res.Depth["A"])
	assert.Empty(t, res.Parent)
}

// TestBFS_CycleAndDepths checks the cycle terminates and depths are hop counts.
func TestBFS_CycleAndDepths(t *testing.T) {
	res, err := bfs.BFS[string](cycle4(t), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "C": 1, "D": 2}, res.Depth)
	assert.Equal(t, "A", res.Parent["C"], "chord wins over the two-hop route")

	path, err := res.PathTo("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "D"}, path)
}

// TestBFS_DirectedOnly confirms edges are only followed forward.
func TestBFS_DirectedOnly(t *testing.T) {
	g := core.NewDigraph[int]()
	require.NoError(t, g.AddEdge(1, 2, 1))
	require.NoError(t, g.AddEdge(3, 2, 1))

	res, err := bfs.BFS[int](g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, res.Order)
	assert.False(t, res.Reached(1))

	_, err = res.PathTo(3)
	assert.ErrorIs(t, err, core.ErrNoPath)
}

// TestBFS_MaxDepth limits the explored layers.
func TestBFS_MaxDepth(t *testing.T) {
	g := core.NewDigraph[int]()
	for i := 0; i < 10; i++ {
		require.NoError(t, g.AddEdge(i, i+1, 1))
	}
	res, err := bfs.BFS[int](g, 0, bfs.WithMaxDepth[int](3))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)

	res, err = bfs.BFS[int](g, 0, bfs.WithMaxDepth[int](0))
	require.NoError(t, err)
	assert.Len(t, res.Order, 11)
}

// TestBFS_FilterEdge prunes heavy edges.
func TestBFS_FilterEdge(t *testing.T) {
	light := bfs.WithFilterEdge(func(e core.Edge[string]) bool { return e.Weight < 5 })
	res, err := bfs.BFS[string](cycle4(t), "A", light)
	require.NoError(t, err)
	assert.Equal(t, 2, res.Depth["C"])
}

// TestBFS_OnVisitError aborts the walk and wraps the hook error.
func TestBFS_OnVisitError(t *testing.T) {
	stop := errors.New("stop")
	visits := 0
	hook := bfs.WithOnVisit(func(v string, _ int) error {
		visits++
		if v == "B" {
			return stop
		}
		return nil
	})
	_, err := bfs.BFS[string](cycle4(t), "A", hook)
	assert.ErrorIs(t, err, stop)
	assert.Equal(t, 2, visits)
}

// TestBFS_Cancel stops on a cancelled context.
func TestBFS_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS[string](cycle4(t), "A", bfs.WithContext[string](ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_GeneratedGraph walks a lazily generated graph.
func TestBFS_GeneratedGraph(t *testing.T) {
	// n → n+1, n+2 below 20
	g := core.GraphFunc[int](func(n int) ([]core.Edge[int], error) {
		var out []core.Edge[int]
		for _, d := range []int{1, 2} {
			if n+d < 20 {
				out = append(out, core.Edge[int]{From: n, To: n + d, Weight: 1})
			}
		}
		return out, nil
	})
	res, err := bfs.BFS[int](g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, 20)
	assert.Equal(t, 10, res.Depth[19])
	assert.Equal(t, fmt.Sprint(res.Order[:3]), "[0 1 2]")
}

// TestBFS_ForeignEdges skips edges that do not leave the expanded vertex.
func TestBFS_ForeignEdges(t *testing.T) {
	g := core.GraphFunc[string](func(v string) ([]core.Edge[string], error) {
		if v == "S" {
			return []core.Edge[string]{{From: "S", To: "A", Weight: 1}, {From: "Y", To: "X", Weight: 1}}, nil
		}
		return nil, nil
	})
	res, err := bfs.BFS[string](g, "S")
	require.NoError(t, err)
	assert.Equal(t, []string{"S", "A"}, res.Order)
	assert.False(t, res.Reached("X"))
}
