package geo

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct {
	name     string
	lat, lng float64
}

func (p point) Coordinates() (float64, float64) {
	return p.lat, p.lng
}

func TestDistance_SamePoint_ReturnsZero(t *testing.T) {
	t.Parallel()

	points := [][2]float64{
		{0, 0},
		{37.5665, 126.9780},
		{-33.8688, 151.2093},
		{89.9999, -179.9999},
		{37.497942, 127.027621},
	}

	for _, p := range points {
		d := Distance(p[0], p[1], p[0], p[1])
		assert.False(t, math.IsNaN(d), "distance for %v must not be NaN", p)
		assert.Equal(t, 0.0, d, "distance for %v", p)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10000; i++ {
		lat := rng.Float64()*180 - 90
		lng := rng.Float64()*360 - 180
		require.Equal(t, 0.0, Distance(lat, lng, lat, lng), "distance for (%v, %v)", lat, lng)
	}
}

func TestDistance_NearCoincidentPointsAreFinite(t *testing.T) {
	t.Parallel()

	d := Distance(37.5665, 126.9780, 37.5665, 126.9780+1e-12)
	assert.False(t, math.IsNaN(d))
	assert.GreaterOrEqual(t, d, 0.0)
	assert.Less(t, d, 1.0)
}

func TestDistance_Symmetric(t *testing.T) {
	t.Parallel()

	pairs := [][4]float64{
		{37.5665, 126.9780, 35.1796, 129.0756},
		{0, 0, 0, 0.0045},
		{-12.0464, -77.0428, 51.5074, -0.1278},
		{40.7128, -74.0060, 34.0522, -118.2437},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1], p[2], p[3])
		ba := Distance(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-9)
	}
}

func TestDistance_KnownDistances(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		lat1     float64
		lng1     float64
		lat2     float64
		lng2     float64
		expected float64
		delta    float64
	}{
		{
			name:     "500 meters along the equator",
			lng2:     0.0045,
			expected: 500,
			delta:    2,
		},
		{
			name:     "1500 meters along the equator",
			lng2:     0.0135,
			expected: 1500,
			delta:    5,
		},
		{
			name:     "Seoul to Busan",
			lat1:     37.5665,
			lng1:     126.9780,
			lat2:     35.1796,
			lng2:     129.0756,
			expected: 325000,
			delta:    5000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Distance(tt.lat1, tt.lng1, tt.lat2, tt.lng2)
			assert.InDelta(t, tt.expected, d, tt.delta)
		})
	}
}

func TestNearby_FiltersAndSorts(t *testing.T) {
	t.Parallel()

	items := []point{
		{name: "far", lat: 0, lng: 0.0135},
		{name: "mid", lat: 0, lng: 0.0072},
		{name: "near", lat: 0, lng: 0.0045},
		{name: "here", lat: 0, lng: 0},
		{name: "away", lat: 1, lng: 1},
	}

	ranked := Nearby(0, 0, items, NearbyRadiusMeters)

	require.Len(t, ranked, 3)
	assert.Equal(t, "here", ranked[0].Item.name)
	assert.Equal(t, "near", ranked[1].Item.name)
	assert.Equal(t, "mid", ranked[2].Item.name)
	for i := 1; i < len(ranked); i++ {
		assert.LessOrEqual(t, ranked[i-1].Distance, ranked[i].Distance)
	}
	for _, r := range ranked {
		assert.LessOrEqual(t, r.Distance, NearbyRadiusMeters)
	}
}

func TestNearby_500And1500Scenario(t *testing.T) {
	t.Parallel()

	items := []point{
		{name: "store-500m", lat: 0, lng: 0.0045},
		{name: "store-1500m", lat: 0, lng: 0.0135},
	}

	ranked := Nearby(0, 0, items, NearbyRadiusMeters)

	require.Len(t, ranked, 1)
	assert.Equal(t, "store-500m", ranked[0].Item.name)
	assert.InDelta(t, 500, ranked[0].Distance, 2)
}

func TestNearby_RadiusIsInclusive(t *testing.T) {
	t.Parallel()

	p := point{name: "edge", lat: 0, lng: 0.0045}
	exact := Distance(0, 0, p.lat, p.lng)

	ranked := Nearby(0, 0, []point{p}, exact)

	require.Len(t, ranked, 1)
	assert.Equal(t, exact, ranked[0].Distance)
}

func TestNearby_EqualDistancesKeepInputOrder(t *testing.T) {
	t.Parallel()

	items := []point{
		{name: "east", lat: 0, lng: 0.003},
		{name: "west", lat: 0, lng: -0.003},
		{name: "center", lat: 0, lng: 0},
		{name: "east-again", lat: 0, lng: 0.003},
	}

	ranked := Nearby(0, 0, items, NearbyRadiusMeters)

	require.Len(t, ranked, 4)
	assert.Equal(t, "center", ranked[0].Item.name)
	assert.Equal(t, "east", ranked[1].Item.name)
	assert.Equal(t, "west", ranked[2].Item.name)
	assert.Equal(t, "east-again", ranked[3].Item.name)
}

func TestNearby_EmptyInput(t *testing.T) {
	t.Parallel()

	ranked := Nearby[point](37.5, 127.0, nil, NearbyRadiusMeters)

	assert.NotNil(t, ranked)
	assert.Empty(t, ranked)
}
