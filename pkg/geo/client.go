package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultGeocodeURL is a Nominatim-compatible geocoding endpoint.
	DefaultGeocodeURL = "https://nominatim.openstreetmap.org"

	// DefaultRouteURL is an OSRM-compatible routing endpoint.
	DefaultRouteURL = "https://router.project-osrm.org"
)

// ErrInvalidCoordinates is returned when a coordinate pair falls outside
// the valid lat/lon ranges.
var ErrInvalidCoordinates = errors.New("invalid coordinates")

// Client talks to Nominatim-compatible geocoding and OSRM-compatible
// routing endpoints.
type Client struct {
	geocodeURL string
	routeURL   string
	userAgent  string
	httpClient *http.Client
}

// ClientConfig holds configuration for the geo client.
type ClientConfig struct {
	// GeocodeURL is the Nominatim-compatible base URL.
	// Defaults to DefaultGeocodeURL if empty.
	GeocodeURL string

	// RouteURL is the OSRM-compatible base URL.
	// Defaults to DefaultRouteURL if empty.
	RouteURL string

	// UserAgent identifies this service to the providers.
	UserAgent string
}

// NewClient creates a geo client.
func NewClient(cfg ClientConfig) *Client {
	geocodeURL := cfg.GeocodeURL
	if geocodeURL == "" {
		geocodeURL = DefaultGeocodeURL
	}

	routeURL := cfg.RouteURL
	if routeURL == "" {
		routeURL = DefaultRouteURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = "freightdesk"
	}

	return &Client{
		geocodeURL: geocodeURL,
		routeURL:   routeURL,
		userAgent:  userAgent,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Address     struct {
		City     string `json:"city"`
		Town     string `json:"town"`
		State    string `json:"state"`
		Country  string `json:"country"`
		Postcode string `json:"postcode"`
	} `json:"address"`
}

// Geocode resolves an address to its single top match.
// Returns nil, nil when the provider has no match.
func (c *Client) Geocode(ctx context.Context, address string) (*Place, error) {
	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("addressdetails", "1")

	body, err := c.get(ctx, c.geocodeURL+"/search?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var results []nominatimResult
	if err := json.Unmarshal(body, &results); err != nil {
		return nil, fmt.Errorf("decode geocode response: %w", err)
	}
	if len(results) == 0 {
		return nil, nil
	}

	top := results[0]
	lat, err := strconv.ParseFloat(top.Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode lat: %w", err)
	}
	lon, err := strconv.ParseFloat(top.Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("parse geocode lon: %w", err)
	}

	city := top.Address.City
	if city == "" {
		city = top.Address.Town
	}

	return &Place{
		Coordinates:      Coordinates{Lat: lat, Lon: lon},
		City:             city,
		State:            top.Address.State,
		Country:          top.Address.Country,
		PostalCode:       top.Address.Postcode,
		FormattedAddress: top.DisplayName,
	}, nil
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"` // meters
		Duration float64 `json:"duration"` // seconds
	} `json:"routes"`
}

// Route computes a road route between two coordinate pairs. Both pairs are
// validated before the provider call; out-of-range coordinates return
// ErrInvalidCoordinates. Callers degrade to FallbackRoute on any error.
func (c *Client) Route(ctx context.Context, origin, dest Coordinates) (*Route, error) {
	if !origin.Valid() || !dest.Valid() {
		return nil, ErrInvalidCoordinates
	}

	path := fmt.Sprintf("%s/route/v1/driving/%f,%f;%f,%f?overview=false",
		c.routeURL, origin.Lon, origin.Lat, dest.Lon, dest.Lat)

	body, err := c.get(ctx, path)
	if err != nil {
		return nil, err
	}

	var resp osrmResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode route response: %w", err)
	}
	if resp.Code != "Ok" || len(resp.Routes) == 0 {
		return nil, fmt.Errorf("routing provider returned %q", resp.Code)
	}

	best := resp.Routes[0]
	return &Route{
		Distance: newDistance(best.Distance / 1000),
		Duration: newDuration(best.Duration / 60),
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("provider returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// RouteOrFallback computes a route via the router, degrading to the
// great-circle approximation on any failure so the quote flow never
// hard-fails on routing.
func RouteOrFallback(ctx context.Context, router Router, origin, dest Coordinates) *Route {
	if router != nil {
		if route, err := router.Route(ctx, origin, dest); err == nil && route != nil {
			return route
		}
	}
	return FallbackRoute(origin, dest)
}

// Ensure Client implements both gateway interfaces.
var (
	_ Geocoder = (*Client)(nil)
	_ Router   = (*Client)(nil)
)
