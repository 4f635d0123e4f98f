// Package geo provides great-circle distance and proximity ranking.
package geo

import (
	"math"
	"sort"
)

// NearbyRadiusMeters is the inclusive radius used for "near me" store search.
const NearbyRadiusMeters = 1000.0

// metersPerDegree converts an arc in degrees to meters:
// 60 nautical miles per degree, 1.1515 statute miles per nautical mile,
// 1609.344 meters per statute mile.
const metersPerDegree = 60 * 1.1515 * 1609.344

// Distance returns the distance in meters between two points given in degrees,
// using the spherical law of cosines. Identical points yield exactly 0; the
// cosine term is clamped to [-1, 1] so near-coincident points never give NaN.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	if lat1 == lat2 && lon1 == lon2 {
		return 0
	}

	theta := lon1 - lon2
	c := math.Sin(deg2rad(lat1))*math.Sin(deg2rad(lat2)) +
		math.Cos(deg2rad(lat1))*math.Cos(deg2rad(lat2))*math.Cos(deg2rad(theta))
	c = math.Max(-1, math.Min(1, c))

	return rad2deg(math.Acos(c)) * metersPerDegree
}

func deg2rad(deg float64) float64 {
	return deg * math.Pi / 180.0
}

func rad2deg(rad float64) float64 {
	return rad * 180.0 / math.Pi
}

// Locatable is anything with a position in degrees.
type Locatable interface {
	Coordinates() (lat, lng float64)
}

// Ranked pairs an item with its distance in meters from a query point.
type Ranked[T Locatable] struct {
	Item     T
	Distance float64
}

// Nearby returns the items within radius meters (inclusive) of (lat, lng),
// nearest first. Items at exactly equal distance keep their input order.
// The input slice is not modified.
func Nearby[T Locatable](lat, lng float64, items []T, radius float64) []Ranked[T] {
	ranked := make([]Ranked[T], 0, len(items))
	for _, item := range items {
		iLat, iLng := item.Coordinates()
		d := Distance(lat, lng, iLat, iLng)
		if d <= radius {
			ranked = append(ranked, Ranked[T]{Item: item, Distance: d})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Distance < ranked[j].Distance
	})

	return ranked
}
