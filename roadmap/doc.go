// Package roadmap is a street-network graph for point-to-point routing.
//
// Vertices are Location values (latitude, longitude); each road segment is
// weighted by its great-circle length in meters, and the same metric serves
// as the A* estimate. Route therefore finds optimal paths while exploring
// far fewer intersections than an exhaustive search.
//
//	m := roadmap.New()
//	_ = m.AddWay(a, b, c)
//	_ = m.AddRoad(a, d)
//	path, meters, err := m.Route(a, c)
//
// Named places can be attached to locations and looked up by exact name
// (nearest first) or by prefix.
package roadmap
