// Package api provides the freightdesk HTTP server: the streaming chat
// endpoint, knowledge-base search and ingestion, and quote lookups.
package api

import (
	"time"

	"github.com/haulflow/freightdesk/pkg/embeddings"
	"github.com/haulflow/freightdesk/pkg/vector"
)

// Config is the API server configuration.
type Config struct {
	// ListenAddr is the address to listen on (e.g., ":8080")
	ListenAddr string

	// WordDelay is the per-word pause of the typing simulation on chat
	// replies. Zero disables the simulation.
	WordDelay time.Duration

	// Embedder and VectorDriver back the search endpoint. Both must be
	// set for search to be available.
	Embedder     embeddings.Embedder
	VectorDriver vector.Driver
}
