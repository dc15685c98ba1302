// Package geo provides geometry over integer-encoded coordinates.
//
// Coordinates are latitude/longitude degrees multiplied by 1e7 and stored
// as signed 32-bit integers, matching the routeguide.v1 wire contract.
package geo

import "math"

// coordScale converts stored integer coordinates to decimal degrees.
const coordScale = 1e7

// earthRadiusMeters is the Earth radius used for great-circle distances.
const earthRadiusMeters = 6371000

// Point is an integer-encoded latitude/longitude pair. Points compare by
// value, so a Point is usable as a map key.
type Point struct {
	Latitude  int32
	Longitude int32
}

// Bounds is a normalized axis-aligned bounding box.
type Bounds struct {
	Left   int32
	Right  int32
	Top    int32
	Bottom int32
}

// Normalize builds Bounds from two opposite rectangle corners. The corners
// may arrive in any order; each axis is normalized independently, so
// swapping lo and hi yields the same Bounds.
func Normalize(lo, hi Point) Bounds {
	return Bounds{
		Left:   min(lo.Longitude, hi.Longitude),
		Right:  max(lo.Longitude, hi.Longitude),
		Top:    max(lo.Latitude, hi.Latitude),
		Bottom: min(lo.Latitude, hi.Latitude),
	}
}

// Contains reports whether p lies within the bounds, borders included.
func (b Bounds) Contains(p Point) bool {
	return p.Longitude >= b.Left && p.Longitude <= b.Right &&
		p.Latitude >= b.Bottom && p.Latitude <= b.Top
}

// Distance returns the great-circle distance between a and b in meters,
// computed with the haversine formula and truncated to an integer.
func Distance(a, b Point) int {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	deltaLat := lat2 - lat1
	deltaLon := radians(b.Longitude) - radians(a.Longitude)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(deltaLon/2)*math.Sin(deltaLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return int(earthRadiusMeters * c)
}

func radians(coord int32) float64 {
	return float64(coord) / coordScale * math.Pi / 180
}
