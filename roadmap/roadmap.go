package roadmap

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/katalvlaran/lvpath/astar"
	"github.com/katalvlaran/lvpath/core"
)

// Sentinel errors for road map operations.
var (
	// ErrInvalidLocation indicates coordinates outside the valid ranges or NaN.
	ErrInvalidLocation = errors.New("roadmap: invalid location")
	// ErrSameLocation indicates a road whose endpoints coincide.
	ErrSameLocation = errors.New("roadmap: road endpoints coincide")
	// ErrEmptyMap indicates a query on a map without locations.
	ErrEmptyMap = errors.New("roadmap: map has no locations")
	// ErrEmptyName indicates a place registered without a name.
	ErrEmptyName = errors.New("roadmap: place name is empty")
)

// Map is a street network whose vertices are locations and whose edges are
// road segments weighted by great-circle length. It implements
// core.HeuristicGraph with the great-circle distance as estimate, which is
// consistent for these weights.
//
// Map is safe for concurrent use.
type Map struct {
	g *core.Digraph[Location]

	mu     sync.RWMutex
	places map[string][]Location
}

// New returns an empty Map.
func New() *Map {
	return &Map{
		g:      core.NewDigraph[Location](),
		places: make(map[string][]Location),
	}
}

// AddLocation inserts an isolated location. Adding it again is a no-op.
func (m *Map) AddLocation(l Location) error {
	if !l.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, l)
	}
	m.g.AddVertex(l)

	return nil
}

// AddOneWay inserts a directed segment from→to. Re-adding an existing
// segment is a no-op.
func (m *Map) AddOneWay(from, to Location) error {
	if !from.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, from)
	}
	if !to.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidLocation, to)
	}
	if from == to {
		return fmt.Errorf("%w: %v", ErrSameLocation, from)
	}
	if m.g.HasEdge(from, to) {
		return nil
	}
	err := m.g.AddEdge(from, to, GreatCircle(from, to))
	if errors.Is(err, core.ErrMultiEdge) {
		// lost a race with a concurrent insert of the same segment
		return nil
	}

	return err
}

// AddRoad inserts a two-way segment between a and b.
func (m *Map) AddRoad(a, b Location) error {
	if err := m.AddOneWay(a, b); err != nil {
		return err
	}

	return m.AddOneWay(b, a)
}

// AddWay inserts two-way segments between consecutive points of a
// polyline. A way with fewer than two points only adds its locations.
func (m *Map) AddWay(points ...Location) error {
	for i, p := range points {
		if i == 0 {
			if err := m.AddLocation(p); err != nil {
				return err
			}
			continue
		}
		if err := m.AddRoad(points[i-1], p); err != nil {
			return fmt.Errorf("segment %d: %w", i, err)
		}
	}

	return nil
}

// Neighbors implements core.Graph.
func (m *Map) Neighbors(l Location) ([]core.Edge[Location], error) { return m.g.Neighbors(l) }

// EstimatedDistance implements core.HeuristicGraph.
func (m *Map) EstimatedDistance(from, to Location) float64 { return GreatCircle(from, to) }

// Len returns the number of locations.
func (m *Map) Len() int { return m.g.VertexCount() }

// Segments returns the number of directed road segments.
func (m *Map) Segments() int { return m.g.EdgeCount() }

// Locations returns every location in insertion order.
func (m *Map) Locations() []Location { return m.g.Vertices() }

// Closest returns the location nearest to p by great-circle distance.
// Returns ErrEmptyMap when the map has no locations.
// Complexity: O(V).
func (m *Map) Closest(p Location) (Location, error) {
	locs := m.g.Vertices()
	if len(locs) == 0 {
		return Location{}, ErrEmptyMap
	}
	best, bestDist := locs[0], GreatCircle(p, locs[0])
	for _, l := range locs[1:] {
		if d := GreatCircle(p, l); d < bestDist {
			best, bestDist = l, d
		}
	}

	return best, nil
}

// Route returns the shortest road path from→to and its length in meters,
// computed by A* with early exit. Extra options are applied after it.
//
// Returns core.ErrVertexNotFound (wrapped) when from is not on the map and
// core.ErrNoPath when to cannot be reached.
func (m *Map) Route(from, to Location, opts ...astar.Option[Location]) ([]Location, float64, error) {
	if !m.g.HasVertex(from) {
		return nil, 0, fmt.Errorf("%w: %v", core.ErrVertexNotFound, from)
	}
	all := append([]astar.Option[Location]{astar.WithEarlyExit[Location]()}, opts...)
	s, err := astar.New[Location](m, from, to, all...)
	if err != nil {
		return nil, 0, err
	}
	path, err := s.Solution()
	if err != nil {
		return nil, 0, err
	}

	return path, s.Distance(), nil
}

// AddPlace attaches a name to l, adding l to the map if needed. Several
// locations may share a name.
func (m *Map) AddPlace(name string, l Location) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	if err := m.AddLocation(l); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.places[name] = append(m.places[name], l)

	return nil
}

// Places returns the locations named name, nearest to center first.
func (m *Map) Places(name string, center Location) []Location {
	m.mu.RLock()
	out := append([]Location(nil), m.places[strings.TrimSpace(name)]...)
	m.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return GreatCircle(center, out[i]) < GreatCircle(center, out[j])
	})

	return out
}

// PlacesWithPrefix returns the sorted names starting with prefix,
// case-insensitively.
func (m *Map) PlacesWithPrefix(prefix string) []string {
	prefix = strings.ToLower(prefix)
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []string
	for name := range m.places {
		if strings.HasPrefix(strings.ToLower(name), prefix) {
			out = append(out, name)
		}
	}
	sort.Strings(out)

	return out
}
