// Package eventstream defines the event payloads and publisher boundary
// used to announce created quote requests to downstream consumers
// (dispatch, billing, analytics).
package eventstream

import "time"

const (
	// SchemaVersionV1 is the first version of the event payload schema.
	SchemaVersionV1 = 1

	// EventTypeQuoteCreated is emitted after a quote request is persisted.
	EventTypeQuoteCreated = "freightdesk.quote.created"
)

// QuoteCreatedEvent is a transport-neutral event payload for a created
// quote request.
type QuoteCreatedEvent struct {
	SchemaVersion int       `json:"schema_version"`
	EventType     string    `json:"event_type"`
	EventID       string    `json:"event_id"`
	EmittedAt     time.Time `json:"emitted_at"`

	QuoteID     string    `json:"quote_id"`
	CustomerID  string    `json:"customer_id"`
	Service     string    `json:"service"`
	Price       int64     `json:"price"`
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	DistanceKm  float64   `json:"distance_km"`
	PickupDate  time.Time `json:"pickup_date"`
	DeliveryBy  time.Time `json:"delivery_by"`
}
