package geo

import "math"

const (
	// earthRadiusKm is the mean Earth radius used by the great-circle
	// fallback.
	earthRadiusKm = 6371

	// fallbackSpeedKmh is the assumed travel speed for fallback durations.
	fallbackSpeedKmh = 60

	kmPerMile = 1.60934
)

// Haversine returns the great-circle distance in kilometers between two
// coordinate pairs.
func Haversine(a, b Coordinates) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// FallbackRoute computes an approximate route via the great-circle
// distance and an assumed 60 km/h travel speed. Used whenever the routing
// provider is unavailable or the coordinates fail validation upstream.
func FallbackRoute(origin, dest Coordinates) *Route {
	km := Haversine(origin, dest)
	minutes := km / fallbackSpeedKmh * 60

	return &Route{
		Distance:    newDistance(km),
		Duration:    newDuration(minutes),
		Approximate: true,
	}
}

// newDistance rounds kilometers to one decimal and derives miles.
func newDistance(km float64) Distance {
	rounded := math.Round(km*10) / 10
	return Distance{
		Kilometers: rounded,
		Miles:      math.Round(rounded/kmPerMile*10) / 10,
	}
}

// newDuration rounds minutes to the nearest integer and derives hours.
func newDuration(minutes float64) Duration {
	rounded := math.Round(minutes)
	return Duration{
		Minutes: rounded,
		Hours:   math.Round(rounded/60*10) / 10,
	}
}
