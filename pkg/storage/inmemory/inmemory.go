// Package inmemory provides an in-memory QuoteStore for tests and
// ephemeral deployments.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/haulflow/freightdesk/pkg/storage"
)

// Store implements storage.QuoteStore in process memory.
type Store struct {
	mu     sync.RWMutex
	quotes map[string]*storage.Quote
}

// NewStore creates an empty in-memory quote store.
func NewStore() *Store {
	return &Store{
		quotes: make(map[string]*storage.Quote),
	}
}

// CreateQuote stores a quote and returns its id.
func (s *Store) CreateQuote(_ context.Context, quote *storage.Quote) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *quote
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	s.quotes[stored.ID] = &stored
	return stored.ID, nil
}

// GetQuote retrieves a quote by id.
func (s *Store) GetQuote(_ context.Context, id string) (*storage.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, storage.ErrNotFound{ID: id}
	}

	copied := *quote
	return &copied, nil
}

// ListQuotes returns all quotes for a customer, most recent first.
func (s *Store) ListQuotes(_ context.Context, customerID string) ([]*storage.Quote, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var quotes []*storage.Quote
	for _, quote := range s.quotes {
		if quote.CustomerID == customerID {
			copied := *quote
			quotes = append(quotes, &copied)
		}
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	return quotes, nil
}

// Close is a no-op for the in-memory store.
func (s *Store) Close() error {
	return nil
}

var _ storage.QuoteStore = (*Store)(nil)
