package geo

import (
	"fmt"
	"math"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000

type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate checks latitude/longitude ranges.
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("latitude must be between -90 and 90")
	}
	if math.IsNaN(c.Longitude) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("longitude must be between -180 and 180")
	}
	return nil
}

// NewCoordinate returns nil unless both parts are present.
func NewCoordinate(lat, lon *float64) *Coordinate {
	if lat == nil || lon == nil {
		return nil
	}
	return &Coordinate{Latitude: *lat, Longitude: *lon}
}

// Fence is the permitted work area: one office point and a radius in meters.
type Fence struct {
	Office       Coordinate
	RadiusMeters float64
}

type Classification struct {
	DistanceMeters float64 `json:"distance_meters"`
	WithinFence    bool    `json:"within_fence"`
}

// Distance menghitung jarak great-circle antara dua titik dalam meter.
func Distance(from, to Coordinate) float64 {
	dLat := toRadians(to.Latitude - from.Latitude)
	dLon := toRadians(to.Longitude - from.Longitude)

	lat1Rad := toRadians(from.Latitude)
	lat2Rad := toRadians(to.Latitude)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// DistanceOrInf treats a missing coordinate as infinitely far away.
func DistanceOrInf(from, to *Coordinate) float64 {
	if from == nil || to == nil {
		return math.Inf(1)
	}
	return Distance(*from, *to)
}

// Classify reports how far checkIn is from office and whether it falls
// inside the radius. The boundary is inclusive. A nil checkIn is never
// within the fence.
func Classify(checkIn *Coordinate, office Coordinate, radiusMeters float64) Classification {
	if checkIn == nil {
		return Classification{DistanceMeters: math.Inf(1)}
	}
	distance := Distance(*checkIn, office)
	return Classification{
		DistanceMeters: distance,
		WithinFence:    distance <= radiusMeters,
	}
}

// Classify runs the package-level Classify against the fence.
func (f Fence) Classify(checkIn *Coordinate) Classification {
	return Classify(checkIn, f.Office, f.RadiusMeters)
}

func toRadians(deg float64) float64 {
	return deg * (math.Pi / 180.0)
}
