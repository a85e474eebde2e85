package roadmap_test

import (
	"fmt"

	"github.com/katalvlaran/lvpath/roadmap"
)

// ExampleMap_Route routes between two corners of a small street square
// that has a shortcut across it.
func ExampleMap_Route() {
	var (
		sw = roadmap.Location{Lat: 47.600, Lon: -122.330}
		nw = roadmap.Location{Lat: 47.610, Lon: -122.330}
		ne = roadmap.Location{Lat: 47.610, Lon: -122.320}
		se = roadmap.Location{Lat: 47.600, Lon: -122.320}
	)
	m := roadmap.New()
	_ = m.AddWay(sw, nw, ne, se, sw)
	_ = m.AddRoad(sw, ne)

	path, meters, err := m.Route(nw, se)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(len(path), meters > roadmap.GreatCircle(nw, se))

	path, meters, _ = m.Route(sw, ne)
	fmt.Println(path, fmt.Sprintf("%.0f m", meters))

	// Output:
	// 3 true
	// [(47.600000, -122.330000) (47.610000, -122.320000)] 1341 m
}
