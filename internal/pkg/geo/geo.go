// Package geo provides the distance math behind geofenced check-in.
package geo

import "math"

const earthRadiusMeters = 6371000.0

type Point struct {
	Lat float64
	Lng float64
}

// DistanceMeters returns the great-circle distance between two points
// using the haversine formula. Accuracy is well within the tolerance
// needed for venue-radius checks.
func DistanceMeters(a, b Point) float64 {
	latA := a.Lat * math.Pi / 180
	latB := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLng := (b.Lng - a.Lng) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(latA)*math.Cos(latB)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
