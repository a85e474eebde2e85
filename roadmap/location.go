// File: location.go
// Role: geographic points and the great-circle metric used as both edge
// weight and A* heuristic.

package roadmap

import (
	"fmt"
	"math"
)

// EarthRadius is the mean radius of the Earth in meters.
const EarthRadius = 6_371_008.8

// Location is a point on the Earth's surface in decimal degrees.
// It is comparable and used directly as a graph vertex, so two locations are
// the same vertex only when both coordinates are bit-identical.
type Location struct {
	Lat float64
	Lon float64
}

// Valid reports whether l has finite coordinates within [-90, 90] latitude
// and [-180, 180] longitude.
func (l Location) Valid() bool {
	return l.Lat >= -90 && l.Lat <= 90 && l.Lon >= -180 && l.Lon <= 180
}

// String renders l as "(lat, lon)" with six decimals.
func (l Location) String() string {
	return fmt.Sprintf("(%.6f, %.6f)", l.Lat, l.Lon)
}

// GreatCircle returns the haversine distance between a and b in meters.
func GreatCircle(a, b Location) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dphi := radians(b.Lat - a.Lat)
	dlambda := radians(b.Lon - a.Lon)

	sp, sl := math.Sin(dphi/2), math.Sin(dlambda/2)
	h := sp*sp + math.Cos(phi1)*math.Cos(phi2)*sl*sl
	h = math.Min(1, h)

	return 2 * EarthRadius * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
