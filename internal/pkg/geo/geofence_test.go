package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testOffice = Coordinate{Latitude: -3.3089332, Longitude: 114.613662}

func TestDistance_Symmetric(t *testing.T) {
	pairs := [][2]Coordinate{
		{testOffice, {Latitude: -3.3099332, Longitude: 114.613662}},
		{{Latitude: 0, Longitude: 0}, {Latitude: 45, Longitude: 90}},
		{{Latitude: -89.9, Longitude: -179.9}, {Latitude: 89.9, Longitude: 179.9}},
		{{Latitude: 51.5074, Longitude: -0.1278}, {Latitude: 40.7128, Longitude: -74.0060}},
	}

	for _, p := range pairs {
		ab := Distance(p[0], p[1])
		ba := Distance(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-6, "distance %v -> %v", p[0], p[1])
	}
}

func TestClassify_SamePointIsWithinForAnyRadius(t *testing.T) {
	for _, radius := range []float64{0, 1, 100, 1e6} {
		got := Classify(&testOffice, testOffice, radius)
		assert.Equal(t, 0.0, got.DistanceMeters)
		assert.True(t, got.WithinFence, "radius %v", radius)
	}
}

func TestClassify_AbsentCoordinate(t *testing.T) {
	for _, radius := range []float64{0, 100, math.MaxFloat64, math.Inf(1)} {
		got := Classify(nil, testOffice, radius)
		assert.True(t, math.IsInf(got.DistanceMeters, 1))
		assert.False(t, got.WithinFence, "radius %v", radius)
	}
}

func TestClassify_BoundaryInclusive(t *testing.T) {
	checkIn := Coordinate{Latitude: -3.3094332, Longitude: 114.6140}
	d := Distance(checkIn, testOffice)
	require.Greater(t, d, 0.0)

	atBoundary := Classify(&checkIn, testOffice, d)
	assert.True(t, atBoundary.WithinFence)

	justOutside := Classify(&checkIn, testOffice, math.Nextafter(d, 0))
	assert.False(t, justOutside.WithinFence)
}

func TestClassify_OneHundredElevenMetersNorth(t *testing.T) {
	checkIn := Coordinate{Latitude: -3.3099332, Longitude: 114.613662}

	got := Fence{Office: testOffice, RadiusMeters: 100}.Classify(&checkIn)

	assert.InDelta(t, 111.19, got.DistanceMeters, 0.5)
	assert.False(t, got.WithinFence)
}

func TestCoordinate_Validate(t *testing.T) {
	cases := []struct {
		c       Coordinate
		wantErr bool
	}{
		{testOffice, false},
		{Coordinate{Latitude: 90, Longitude: 180}, false},
		{Coordinate{Latitude: -90, Longitude: -180}, false},
		{Coordinate{Latitude: 90.1, Longitude: 0}, true},
		{Coordinate{Latitude: 0, Longitude: -180.5}, true},
		{Coordinate{Latitude: math.NaN(), Longitude: 0}, true},
	}
	for _, c := range cases {
		err := c.c.Validate()
		if c.wantErr {
			assert.Error(t, err, "%+v", c.c)
		} else {
			assert.NoError(t, err, "%+v", c.c)
		}
	}
}

func TestNewCoordinate(t *testing.T) {
	lat, lon := -3.3, 114.6
	assert.Nil(t, NewCoordinate(nil, &lon))
	assert.Nil(t, NewCoordinate(&lat, nil))
	assert.Equal(t, &Coordinate{Latitude: lat, Longitude: lon}, NewCoordinate(&lat, &lon))
}
