// Package geo provides address geocoding and route lookup for the quote
// flow, with a deterministic great-circle fallback so that route
// calculation never hard-fails a quote.
package geo

import "context"

// Coordinates is a WGS84 lat/lon pair.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Valid reports whether the pair lies within [-90,90]x[-180,180].
func (c Coordinates) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lon >= -180 && c.Lon <= 180
}

// Place is a geocoded address.
type Place struct {
	Coordinates      Coordinates `json:"coordinates"`
	City             string      `json:"city,omitempty"`
	State            string      `json:"state,omitempty"`
	Country          string      `json:"country,omitempty"`
	PostalCode       string      `json:"postalCode,omitempty"`
	FormattedAddress string      `json:"formattedAddress,omitempty"`
}

// Distance is a route distance in both unit systems.
type Distance struct {
	Kilometers float64 `json:"kilometers"`
	Miles      float64 `json:"miles"`
}

// Duration is a route duration in both granularities.
type Duration struct {
	Minutes float64 `json:"minutes"`
	Hours   float64 `json:"hours"`
}

// Route is a computed route between two coordinate pairs.
type Route struct {
	Distance Distance `json:"distance"`
	Duration Duration `json:"duration"`

	// Approximate is set when the route came from the great-circle
	// fallback rather than the routing provider.
	Approximate bool `json:"approximate,omitempty"`
}

// Geocoder resolves free-text addresses to places.
// A nil, nil return means "no match": callers ask the user to clarify
// rather than treating it as an error.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (*Place, error)
}

// Router computes a route between two coordinate pairs.
type Router interface {
	Route(ctx context.Context, origin, dest Coordinates) (*Route, error)
}
