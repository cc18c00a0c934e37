package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistance_SamePointIsZero(t *testing.T) {
	points := []Point{
		{0, 0},
		{55.7558, 37.6173},
		{-33.8688, 151.2093},
		{90, 0},
	}
	for _, p := range points {
		assert.Zero(t, Distance(p, p))
	}
}

func TestDistance_Symmetric(t *testing.T) {
	a := Point{Latitude: 59.3293, Longitude: 18.0686}
	b := Point{Latitude: 60.1699, Longitude: 24.9384}
	assert.InDelta(t, Distance(a, b), Distance(b, a), 1e-9)
}

func TestDistance_KnownValue(t *testing.T) {
	// Stockholm to Helsinki, roughly 396 km.
	a := Point{Latitude: 59.3293, Longitude: 18.0686}
	b := Point{Latitude: 60.1699, Longitude: 24.9384}
	d := Distance(a, b)
	if math.Abs(d-396) > 5 {
		t.Fatalf("Distance = %.2f km, want ~396 km", d)
	}
}

func TestDistance_OneDegreeLatitude(t *testing.T) {
	// One degree of latitude is ~111.2 km regardless of longitude.
	a := Point{Latitude: 10, Longitude: 20}
	b := Point{Latitude: 11, Longitude: 20}
	assert.InDelta(t, 111.2, Distance(a, b), 0.5)
}
