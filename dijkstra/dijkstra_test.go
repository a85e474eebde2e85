package dijkstra_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/builder"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/metrics"
	"github.com/katalvlaran/lvpath/minpq"
)

// buildGraph constructs a Digraph from directed (from, to, weight) triples.
func buildGraph(t testing.TB, edges ...core.Edge[string]) *core.Digraph[string] {
	t.Helper()
	g := core.NewDigraph[string]()
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e.From, e.To, e.Weight))
	}

	return g
}

// undirected mirrors every triple so the graph behaves as undirected.
func undirected(edges ...core.Edge[string]) []core.Edge[string] {
	out := make([]core.Edge[string], 0, 2*len(edges))
	for _, e := range edges {
		out = append(out, e, core.Edge[string]{From: e.To, To: e.From, Weight: e.Weight})
	}

	return out
}

func edge(from, to string, w float64) core.Edge[string] {
	return core.Edge[string]{From: from, To: to, Weight: w}
}

// workedExample is the four-vertex graph where the direct A→C and B→D edges
// lose to the chain A→B→C→D.
func workedExample(t testing.TB) *core.Digraph[string] {
	return buildGraph(t,
		edge("A", "B", 1), edge("A", "C", 4),
		edge("B", "C", 2), edge("B", "D", 5),
		edge("C", "D", 1),
	)
}

// TestDijkstra_WorkedExample checks distances and the reconstructed path with
// every queue implementation.
func TestDijkstra_WorkedExample(t *testing.T) {
	for _, k := range minpq.Kinds() {
		k := k
		t.Run(k.String(), func(t *testing.T) {
			s, err := dijkstra.New[string](workedExample(t), "A", dijkstra.WithQueue[string](k))
			require.NoError(t, err)

			want := map[string]float64{"A": 0, "B": 1, "C": 3, "D": 4}
			for v, d := range want {
				assert.Equal(t, d, s.DistTo(v), "dist[%s]", v)
			}
			path, err := s.Solution("D")
			require.NoError(t, err)
			assert.Equal(t, []string{"A", "B", "C", "D"}, path)

			assert.Equal(t, core.Stats{Discovered: 4, Settled: 4, Relaxations: 5}, s.Stats())
		})
	}
}

// TestDijkstra_Triangle checks an undirected triangle where the two-hop
// route beats the direct edge.
func TestDijkstra_Triangle(t *testing.T) {
	g := buildGraph(t, undirected(edge("A", "B", 1), edge("B", "C", 2), edge("A", "C", 5))...)
	s, err := dijkstra.New[string](g, "A")
	require.NoError(t, err)

	assert.Equal(t, 0.0, s.DistTo("A"))
	assert.Equal(t, 1.0, s.DistTo("B"))
	assert.Equal(t, 3.0, s.DistTo("C"))

	e, ok := s.Tree().EdgeTo("C")
	require.True(t, ok)
	assert.Equal(t, "B", e.From)
}

// TestDijkstra_MediumDirected checks a directed graph where a cheaper
// detour through C improves the distance to B after B was first discovered.
func TestDijkstra_MediumDirected(t *testing.T) {
	g := buildGraph(t,
		edge("A", "B", 2), edge("A", "C", 1), edge("C", "B", 1),
		edge("B", "D", 3), edge("C", "D", 5),
	)
	s, err := dijkstra.New[string](g, "A")
	require.NoError(t, err)

	assert.Equal(t, 2.0, s.DistTo("B"))
	assert.Equal(t, 5.0, s.DistTo("D"))
	path, err := s.Solution("D")
	require.NoError(t, err)
	assert.Len(t, path, 3)
	assert.Equal(t, "A", path[0])
	assert.Equal(t, "D", path[2])
}

// TestDijkstra_House checks a five-vertex graph where the best route to D
// goes through C and E.
func TestDijkstra_House(t *testing.T) {
	g := buildGraph(t,
		edge("A", "B", 4), edge("A", "C", 2),
		edge("B", "D", 5), edge("C", "D", 10),
		edge("C", "E", 3), edge("E", "D", 4),
	)
	s, err := dijkstra.New[string](g, "A", dijkstra.WithQueue[string](minpq.KindDoubleMap))
	require.NoError(t, err)

	assert.Equal(t, 9.0, s.DistTo("D"))
	assert.Equal(t, 5.0, s.DistTo("E"))
	path, err := s.Solution("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C", "E", "D"}, path)
}

// TestDijkstra_SingleVertex checks the degenerate graph and the start path.
func TestDijkstra_SingleVertex(t *testing.T) {
	g := core.NewDigraph[string]()
	g.AddVertex("X")
	s, err := dijkstra.New[string](g, "X")
	require.NoError(t, err)

	path, err := s.Solution("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, path)
	assert.Equal(t, 0.0, s.DistTo("X"))
	assert.Equal(t, core.Stats{Discovered: 1, Settled: 1}, s.Stats())
}

// TestDijkstra_ZeroWeightSelfLoop ensures a zero-weight loop never re-queues
// the start vertex.
func TestDijkstra_ZeroWeightSelfLoop(t *testing.T) {
	g := core.NewDigraph(core.WithLoops[string]())
	require.NoError(t, g.AddEdge("A", "A", 0))
	require.NoError(t, g.AddEdge("A", "B", 0))

	s, err := dijkstra.New[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, 0.0, s.DistTo("B"))
	assert.Equal(t, 2, s.Stats().Settled)
}

// TestDijkstra_Unreachable checks that undiscovered goals report ErrNoPath.
func TestDijkstra_Unreachable(t *testing.T) {
	g := workedExample(t)
	g.AddVertex("Z")
	s, err := dijkstra.New[string](g, "B")
	require.NoError(t, err)

	_, err = s.Solution("A")
	assert.ErrorIs(t, err, core.ErrNoPath)
	_, err = s.Solution("Z")
	assert.ErrorIs(t, err, core.ErrNoPath)
	assert.True(t, math.IsInf(s.DistTo("Z"), 1))
	assert.False(t, s.Tree().HasPathTo("A"))
}

// TestDijkstra_MaxDistance verifies that exploration stops at the cap.
func TestDijkstra_MaxDistance(t *testing.T) {
	g, err := builder.Build(nil, builder.Path(7))
	require.NoError(t, err)

	s, err := dijkstra.New[int](g, 0, dijkstra.WithMaxDistance[int](3))
	require.NoError(t, err)

	for v := 0; v <= 3; v++ {
		assert.Equal(t, float64(v), s.DistTo(v))
	}
	for v := 4; v < 7; v++ {
		assert.True(t, math.IsInf(s.DistTo(v), 1), "vertex %d should be beyond the cap", v)
		_, err = s.Solution(v)
		assert.ErrorIs(t, err, core.ErrNoPath)
	}
	assert.Equal(t, 4, s.Stats().Discovered)
	assert.Equal(t, 4, s.Tree().Len())
}

// TestDijkstra_InfEdgeThreshold treats heavy edges as walls.
func TestDijkstra_InfEdgeThreshold(t *testing.T) {
	g := buildGraph(t, undirected(edge("A", "B", 1), edge("B", "C", 2), edge("A", "C", 5))...)

	s, err := dijkstra.New[string](g, "A", dijkstra.WithInfEdgeThreshold[string](5))
	require.NoError(t, err)
	assert.Equal(t, 3.0, s.DistTo("C"))

	s, err = dijkstra.New[string](g, "A", dijkstra.WithInfEdgeThreshold[string](2))
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.DistTo("B"))
	assert.True(t, math.IsInf(s.DistTo("C"), 1))
}

// TestDijkstra_Errors covers construction failures.
func TestDijkstra_Errors(t *testing.T) {
	t.Run("NilGraph", func(t *testing.T) {
		_, err := dijkstra.New[string](nil, "A")
		assert.ErrorIs(t, err, core.ErrNilGraph)
	})

	t.Run("NegativeWeight", func(t *testing.T) {
		g := buildGraph(t, edge("A", "B", 1), edge("B", "C", -1))
		_, err := dijkstra.New[string](g, "A")
		assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	})

	t.Run("NaNWeight", func(t *testing.T) {
		g := buildGraph(t, edge("A", "B", math.NaN()))
		_, err := dijkstra.New[string](g, "A")
		assert.ErrorIs(t, err, dijkstra.ErrNegativeWeight)
	})

	t.Run("UnknownStart", func(t *testing.T) {
		_, err := dijkstra.New[string](workedExample(t), "Q")
		assert.ErrorIs(t, err, dijkstra.ErrNeighbors)
		assert.ErrorIs(t, err, core.ErrVertexNotFound)
	})

	t.Run("NeighborFailure", func(t *testing.T) {
		boom := errors.New("disk on fire")
		g := core.GraphFunc[string](func(v string) ([]core.Edge[string], error) {
			if v == "B" {
				return nil, boom
			}
			return []core.Edge[string]{edge(v, "B", 1)}, nil
		})
		_, err := dijkstra.New[string](g, "A")
		assert.ErrorIs(t, err, dijkstra.ErrNeighbors)
		assert.ErrorIs(t, err, boom)
		assert.Contains(t, err.Error(), "B")
	})

	t.Run("SeededQueue", func(t *testing.T) {
		q := minpq.NewOptimizedHeapMinPQ[string]()
		require.NoError(t, q.Add("A", 3))
		_, err := dijkstra.New[string](workedExample(t), "A",
			dijkstra.WithQueueFactory[string](func() minpq.ExtrinsicMinPQ[string] { return q }))
		assert.ErrorIs(t, err, minpq.ErrDuplicateKey)
	})

	t.Run("BadOptions", func(t *testing.T) {
		g := workedExample(t)
		_, err := dijkstra.New[string](g, "A", dijkstra.WithMaxDistance[string](-1))
		assert.ErrorIs(t, err, dijkstra.ErrBadMaxDistance)
		_, err = dijkstra.New[string](g, "A", dijkstra.WithInfEdgeThreshold[string](0))
		assert.ErrorIs(t, err, dijkstra.ErrBadInfThreshold)
		_, err = dijkstra.New[string](g, "A", dijkstra.WithQueue[string](minpq.Kind(42)))
		assert.ErrorIs(t, err, minpq.ErrUnknownKind)
	})
}

// TestDijkstra_ForeignEdgesSkipped checks that edges whose From is not the
// expanded vertex are ignored.
func TestDijkstra_ForeignEdgesSkipped(t *testing.T) {
	g := core.GraphFunc[string](func(v string) ([]core.Edge[string], error) {
		switch v {
		case "A":
			return []core.Edge[string]{edge("A", "B", 1), edge("X", "C", 1)}, nil
		default:
			return nil, nil
		}
	})
	s, err := dijkstra.New[string](g, "A")
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.DistTo("B"))
	assert.False(t, s.Tree().HasPathTo("C"))
}

// TestDijkstra_QueueAgreement runs every queue kind on seeded random graphs
// and requires identical distances.
func TestDijkstra_QueueAgreement(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := builder.Build(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithIntWeight(0, 20)},
			builder.RandomSparse(60, 0.08),
		)
		require.NoError(t, err)

		ref, err := dijkstra.New[int](g, 0)
		require.NoError(t, err)
		for _, k := range minpq.Kinds() {
			s, err := dijkstra.New[int](g, 0, dijkstra.WithQueue[int](k))
			require.NoError(t, err)
			for _, v := range g.Vertices() {
				require.Equal(t, ref.DistTo(v), s.DistTo(v), "seed %d kind %s vertex %d", seed, k, v)
			}
			assert.Equal(t, ref.Stats().Discovered, s.Stats().Discovered)
		}

		// every reconstructed path must add up to its distance
		for _, v := range g.Vertices() {
			path, err := ref.Solution(v)
			if err != nil {
				require.ErrorIs(t, err, core.ErrNoPath)
				continue
			}
			assert.Equal(t, ref.DistTo(v), pathWeight(t, g, path), "seed %d vertex %d", seed, v)
		}
	}
}

// pathWeight sums the cheapest edge between each consecutive pair.
func pathWeight(t *testing.T, g *core.Digraph[int], path []int) float64 {
	t.Helper()
	total := 0.0
	for i := 1; i < len(path); i++ {
		edges, err := g.Neighbors(path[i-1])
		require.NoError(t, err)
		best := math.Inf(1)
		for _, e := range edges {
			if e.To == path[i] && e.Weight < best {
				best = e.Weight
			}
		}
		require.False(t, math.IsInf(best, 1), fmt.Sprintf("no edge %d→%d", path[i-1], path[i]))
		total += best
	}

	return total
}

// TestDijkstra_Metrics checks that runs are observed on the registry.
func TestDijkstra_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	_, err := dijkstra.New[string](workedExample(t), "A", dijkstra.WithMetrics[string](m))
	require.NoError(t, err)
	_, err = dijkstra.New[string](buildGraph(t, edge("A", "B", -1)), "A", dijkstra.WithMetrics[string](m))
	require.Error(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(dijkstra.Algorithm, metrics.OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Runs.WithLabelValues(dijkstra.Algorithm, metrics.OutcomeError)))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.Settled.WithLabelValues(dijkstra.Algorithm)))
	assert.Equal(t, 5.0, testutil.ToFloat64(m.Relaxations.WithLabelValues(dijkstra.Algorithm)))
}

// TestDijkstra_Constructor checks the core.Constructor adapter.
func TestDijkstra_Constructor(t *testing.T) {
	ctor := dijkstra.Constructor[string](dijkstra.WithQueue[string](minpq.KindHeap))
	s, err := ctor(workedExample(t), "A")
	require.NoError(t, err)
	path, err := s.Solution("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)

	s, err = ctor(nil, "A")
	assert.ErrorIs(t, err, core.ErrNilGraph)
	assert.Nil(t, s)
}
