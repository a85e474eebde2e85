// Package graphio reads and writes weighted graphs as YAML documents.
//
// Document layout:
//
//	directed: true          # false adds every edge in both directions
//	vertices:
//	  - {id: A, x: 0, y: 0} # coordinates are optional
//	  - {id: B, x: 1, y: 0}
//	edges:
//	  - {from: A, to: B, weight: 1.5} # weight defaults to 1
//
// Every edge endpoint must be declared under vertices. When every vertex
// carries both x and y, the built graph estimates distances with the
// Euclidean metric over those coordinates, which is admissible for A* as
// long as no edge is shorter than the straight line between its endpoints.
package graphio

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors for graph documents.
var (
	// ErrEmptyID indicates a vertex or edge endpoint with an empty id.
	ErrEmptyID = errors.New("graphio: empty vertex id")
	// ErrDuplicateVertex indicates the same id declared twice.
	ErrDuplicateVertex = errors.New("graphio: duplicate vertex")
	// ErrUnknownVertex indicates an edge endpoint missing from vertices.
	ErrUnknownVertex = errors.New("graphio: unknown vertex")
	// ErrDecode indicates malformed YAML or unknown fields.
	ErrDecode = errors.New("graphio: cannot decode document")
	// ErrBadEdge indicates an edge the graph refused (self-loop or duplicate).
	ErrBadEdge = errors.New("graphio: invalid edge")
)

// Document is the YAML form of a graph.
type Document struct {
	Directed bool         `yaml:"directed"`
	Loops    bool         `yaml:"loops,omitempty"`
	Multi    bool         `yaml:"multi,omitempty"`
	Vertices []VertexSpec `yaml:"vertices"`
	Edges    []EdgeSpec   `yaml:"edges"`
}

// VertexSpec declares one vertex and its optional planar coordinates.
type VertexSpec struct {
	ID string   `yaml:"id"`
	X  *float64 `yaml:"x,omitempty"`
	Y  *float64 `yaml:"y,omitempty"`
}

// EdgeSpec declares one edge. A nil Weight means 1.
type EdgeSpec struct {
	From   string   `yaml:"from"`
	To     string   `yaml:"to"`
	Weight *float64 `yaml:"weight,omitempty"`
}

// Point is a planar coordinate pair.
type Point struct{ X, Y float64 }

// Euclid returns the straight-line distance between p and q.
func Euclid(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// Decode parses a Document from r, rejecting unknown fields.
func Decode(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return &doc, nil
		}
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &doc, nil
}

// Load decodes a document from r and builds its graph.
func Load(r io.Reader) (*core.Digraph[string], error) {
	doc, err := Decode(r)
	if err != nil {
		return nil, err
	}

	return doc.Build()
}

// LoadFile is Load over the named file.
func LoadFile(path string) (*core.Digraph[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Coordinates returns the coordinates of every vertex, and false when at
// least one vertex lacks x or y.
func (d *Document) Coordinates() (map[string]Point, bool) {
	coords := make(map[string]Point, len(d.Vertices))
	for _, v := range d.Vertices {
		if v.X == nil || v.Y == nil {
			return nil, false
		}
		coords[v.ID] = Point{X: *v.X, Y: *v.Y}
	}

	return coords, len(coords) > 0
}

// Build validates the document and materializes it.
//
// Returns ErrEmptyID, ErrDuplicateVertex, ErrUnknownVertex, or ErrBadEdge
// wrapping the core error, each annotated with the offending entry.
func (d *Document) Build() (*core.Digraph[string], error) {
	declared := make(map[string]bool, len(d.Vertices))
	for i, v := range d.Vertices {
		if v.ID == "" {
			return nil, fmt.Errorf("%w: vertices[%d]", ErrEmptyID, i)
		}
		if declared[v.ID] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateVertex, v.ID)
		}
		declared[v.ID] = true
	}

	var opts []core.DigraphOption[string]
	if d.Loops {
		opts = append(opts, core.WithLoops[string]())
	}
	if d.Multi {
		opts = append(opts, core.WithMultiEdges[string]())
	}
	if coords, ok := d.Coordinates(); ok {
		opts = append(opts, core.WithGraphHeuristic[string](func(from, to string) float64 {
			p, okP := coords[from]
			q, okQ := coords[to]
			if !okP || !okQ {
				return 0
			}
			return Euclid(p, q)
		}))
	}

	g := core.NewDigraph[string](opts...)
	for _, v := range d.Vertices {
		g.AddVertex(v.ID)
	}
	for i, e := range d.Edges {
		for _, id := range [2]string{e.From, e.To} {
			if id == "" {
				return nil, fmt.Errorf("%w: edges[%d]", ErrEmptyID, i)
			}
			if !declared[id] {
				return nil, fmt.Errorf("%w: %q in edges[%d]", ErrUnknownVertex, id, i)
			}
		}
		w := 1.0
		if e.Weight != nil {
			w = *e.Weight
		}
		if err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("%w: edges[%d]: %w", ErrBadEdge, i, err)
		}
		if !d.Directed && e.From != e.To {
			if err := g.AddEdge(e.To, e.From, w); err != nil {
				return nil, fmt.Errorf("%w: edges[%d] reversed: %w", ErrBadEdge, i, err)
			}
		}
	}

	return g, nil
}

// Export converts g into a directed Document. coords, when non-nil,
// supplies vertex coordinates; vertices missing from it are written without.
func Export(g *core.Digraph[string], coords map[string]Point) *Document {
	doc := &Document{Directed: true}
	for _, v := range g.Vertices() {
		spec := VertexSpec{ID: v}
		if p, ok := coords[v]; ok {
			x, y := p.X, p.Y
			spec.X, spec.Y = &x, &y
		}
		doc.Vertices = append(doc.Vertices, spec)
	}
	for _, e := range g.Edges() {
		w := e.Weight
		doc.Edges = append(doc.Edges, EdgeSpec{From: e.From, To: e.To, Weight: &w})
		if e.From == e.To {
			doc.Loops = true
		}
	}
	doc.Multi = hasParallel(doc.Edges)

	return doc
}

func hasParallel(edges []EdgeSpec) bool {
	seen := make(map[[2]string]bool, len(edges))
	for _, e := range edges {
		k := [2]string{e.From, e.To}
		if seen[k] {
			return true
		}
		seen[k] = true
	}

	return false
}

// Encode writes doc to w as YAML.
func Encode(w io.Writer, doc *Document) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return err
	}

	return enc.Close()
}
