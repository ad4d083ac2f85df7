// Package storage defines the persistence interface for created quote
// requests and its backing drivers.
package storage

import (
	"context"
	"time"
)

// Quote is a persisted quote request, created when a quoting conversation
// reaches confirmation.
type Quote struct {
	ID          string    `json:"id"`
	CustomerID  string    `json:"customer_id"`
	Service     string    `json:"service"`
	Price       int64     `json:"price"`
	PackageType string    `json:"package_type"`
	WeightTons  float64   `json:"weight_tons"`
	VolumeM3    float64   `json:"volume_m3"`
	Hazardous   bool      `json:"hazardous"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  float64   `json:"distance_km"`
	PickupDate  time.Time `json:"pickup_date"`
	DeliveryBy  time.Time `json:"delivery_by"`
	CreatedAt   time.Time `json:"created_at"`
}

// QuoteStore persists and retrieves quotes.
type QuoteStore interface {
	// CreateQuote stores a quote, assigning an id when the quote has
	// none, and returns that id.
	CreateQuote(ctx context.Context, quote *Quote) (string, error)

	// GetQuote retrieves a quote by id.
	GetQuote(ctx context.Context, id string) (*Quote, error)

	// ListQuotes returns all quotes for a customer, most recent first.
	ListQuotes(ctx context.Context, customerID string) ([]*Quote, error)

	// Close closes the store and releases any resources.
	Close() error
}
