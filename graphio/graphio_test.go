package graphio_test

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/core"
	"github.com/katalvlaran/lvpath/dijkstra"
	"github.com/katalvlaran/lvpath/graphio"
)

const worked = `
directed: true
vertices:
  - id: A
  - id: B
  - id: C
  - id: D
edges:
  - {from: A, to: B, weight: 1}
  - {from: A, to: C, weight: 4}
  - {from: B, to: C, weight: 2}
  - {from: B, to: D, weight: 5}
  - {from: C, to: D, weight: 1}
`

const plane = `
directed: false
vertices:
  - {id: s, x: 0, y: 0}
  - {id: a, x: 1, y: 0}
  - {id: b, x: 0, y: 1}
  - {id: t, x: 1, y: 1}
edges:
  - {from: s, to: a}
  - {from: s, to: b, weight: 3}
  - {from: a, to: t, weight: 2}
  - {from: b, to: t, weight: 1}
`

func load(t *testing.T, src string) *core.Digraph[string] {
	t.Helper()
	g, err := graphio.Load(strings.NewReader(src))
	require.NoError(t, err)

	return g
}

func TestLoad_Worked(t *testing.T) {
	g := load(t, worked)
	assert.Equal(t, []string{"A", "B", "C", "D"}, g.Vertices())
	assert.Equal(t, 5, g.EdgeCount())
	assert.False(t, g.HasEdge("B", "A"))

	s, err := dijkstra.New[string](g, "A")
	require.NoError(t, err)
	path, err := s.Solution("D")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, path)
	assert.Equal(t, 4.0, s.DistTo("D"))

	// no coordinates, no estimate
	assert.Zero(t, g.EstimatedDistance("A", "D"))
}

func TestLoad_UndirectedWithCoordinates(t *testing.T) {
	g := load(t, plane)
	assert.Equal(t, 8, g.EdgeCount())
	assert.True(t, g.HasEdge("t", "b"))
	assert.InDelta(t, math.Sqrt2, g.EstimatedDistance("s", "t"), 1e-12)

	edges, err := g.Neighbors("b")
	require.NoError(t, err)
	require.Len(t, edges, 2)
	assert.Equal(t, core.Edge[string]{From: "b", To: "t", Weight: 1}, edges[1])

	s, err := astar.New[string](g, "s", "t", astar.WithEarlyExit[string]())
	require.NoError(t, err)
	path, err := s.Solution()
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "a", "t"}, path)
	assert.Equal(t, 3.0, s.Distance())
}

func TestLoad_PartialCoordinates(t *testing.T) {
	g := load(t, `
directed: true
vertices:
  - {id: a, x: 0, y: 0}
  - {id: b}
edges:
  - {from: a, to: b, weight: 2}
`)
	assert.Zero(t, g.EstimatedDistance("a", "b"))
}

func TestLoad_Options(t *testing.T) {
	g := load(t, `
directed: true
loops: true
multi: true
vertices: [{id: a}, {id: b}]
edges:
  - {from: a, to: a, weight: 0}
  - {from: a, to: b, weight: 2}
  - {from: a, to: b, weight: 1}
`)
	assert.Equal(t, 3, g.EdgeCount())
	assert.True(t, g.HasEdge("a", "a"))

	empty := load(t, "")
	assert.Zero(t, empty.VertexCount())
}

func TestLoad_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"empty id", "vertices: [{id: ''}]", graphio.ErrEmptyID},
		{"duplicate", "vertices: [{id: a}, {id: a}]", graphio.ErrDuplicateVertex},
		{"unknown endpoint", "vertices: [{id: a}]\nedges: [{from: a, to: z}]", graphio.ErrUnknownVertex},
		{"empty endpoint", "vertices: [{id: a}]\nedges: [{from: a, to: ''}]", graphio.ErrEmptyID},
		{"self loop", "directed: true\nvertices: [{id: a}]\nedges: [{from: a, to: a}]", graphio.ErrBadEdge},
		{"parallel", "directed: true\nvertices: [{id: a}, {id: b}]\nedges: [{from: a, to: b}, {from: a, to: b}]", graphio.ErrBadEdge},
		{"undirected parallel", "vertices: [{id: a}, {id: b}]\nedges: [{from: a, to: b}, {from: b, to: a}]", graphio.ErrBadEdge},
		{"unknown field", "vertexes: []", graphio.ErrDecode},
		{"bad yaml", "edges: [", graphio.ErrDecode},
		{"bad weight", "vertices: [{id: a}, {id: b}]\nedges: [{from: a, to: b, weight: heavy}]", graphio.ErrDecode},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := graphio.Load(strings.NewReader(tc.src))
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}

	_, err := graphio.Load(strings.NewReader("directed: true\nvertices: [{id: a}]\nedges: [{from: a, to: a}]"))
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestExport_RoundTrip(t *testing.T) {
	g := load(t, plane)
	doc, err := graphio.Decode(strings.NewReader(plane))
	require.NoError(t, err)
	coords, ok := doc.Coordinates()
	require.True(t, ok)

	var buf bytes.Buffer
	require.NoError(t, graphio.Encode(&buf, graphio.Export(g, coords)))

	back, err := graphio.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.Vertices(), back.Vertices())
	assert.Equal(t, g.Edges(), back.Edges())
	assert.Equal(t, g.EstimatedDistance("s", "t"), back.EstimatedDistance("s", "t"))

	// loops and parallel edges survive too
	multi := core.NewDigraph[string](core.WithLoops[string](), core.WithMultiEdges[string]())
	require.NoError(t, multi.AddEdge("x", "x", 1))
	require.NoError(t, multi.AddEdge("x", "y", 2))
	require.NoError(t, multi.AddEdge("x", "y", 3))
	exported := graphio.Export(multi, nil)
	assert.True(t, exported.Loops)
	assert.True(t, exported.Multi)

	buf.Reset()
	require.NoError(t, graphio.Encode(&buf, exported))
	again, err := graphio.Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, multi.Edges(), again.Edges())
	assert.Zero(t, again.EstimatedDistance("x", "y"))
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "g.yaml")
	require.NoError(t, os.WriteFile(path, []byte(worked), 0o600))

	g, err := graphio.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 4, g.VertexCount())

	_, err = graphio.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestEuclid(t *testing.T) {
	assert.Equal(t, 5.0, graphio.Euclid(graphio.Point{}, graphio.Point{X: 3, Y: 4}))
}
