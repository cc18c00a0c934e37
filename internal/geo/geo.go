// Package geo provides geographic coordinates and great-circle distance.
package geo

import "math"

// EarthRadiusKm is the fixed Earth radius used for distance calculations.
const EarthRadiusKm = 6371.0

// Point is a location in signed floating-point degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Distance returns the haversine great-circle distance between two points,
// in kilometers.
func Distance(a, b Point) float64 {
	const rad = math.Pi / 180

	lat1 := a.Latitude * rad
	lat2 := b.Latitude * rad
	dLat := (b.Latitude - a.Latitude) * rad
	dLon := (b.Longitude - a.Longitude) * rad

	h := 0.5 - math.Cos(dLat)/2 +
		math.Cos(lat1)*math.Cos(lat2)*(1-math.Cos(dLon))/2

	return EarthRadiusKm * 2 * math.Asin(math.Sqrt(h))
}
