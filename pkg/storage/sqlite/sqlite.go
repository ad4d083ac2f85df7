// Package sqlite provides a SQLite-backed QuoteStore.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/haulflow/freightdesk/pkg/storage"
)

const schema = `
CREATE TABLE IF NOT EXISTS quotes (
	id TEXT PRIMARY KEY,
	customer_id TEXT NOT NULL,
	service TEXT NOT NULL,
	price INTEGER NOT NULL,
	package_type TEXT NOT NULL,
	weight_tons REAL NOT NULL,
	volume_m3 REAL NOT NULL,
	hazardous INTEGER NOT NULL DEFAULT 0,
	origin TEXT NOT NULL,
	destination TEXT NOT NULL,
	distance_km REAL NOT NULL,
	pickup_date TIMESTAMP,
	delivery_by TIMESTAMP,
	created_at TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quotes_customer ON quotes(customer_id, created_at DESC);
`

// Store implements storage.QuoteStore on SQLite.
type Store struct {
	db *sql.DB
}

// NewStore creates a SQLite-backed quote store.
// The dbPath can be a file path or ":memory:" for an in-memory database.
func NewStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// CreateQuote stores a quote and returns its id.
func (s *Store) CreateQuote(ctx context.Context, quote *storage.Quote) (string, error) {
	id := quote.ID
	if id == "" {
		id = uuid.NewString()
	}
	createdAt := quote.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO quotes (
			id, customer_id, service, price, package_type, weight_tons,
			volume_m3, hazardous, origin, destination, distance_km,
			pickup_date, delivery_by, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id, quote.CustomerID, quote.Service, quote.Price, quote.PackageType,
		quote.WeightTons, quote.VolumeM3, quote.Hazardous, quote.Origin,
		quote.Destination, quote.DistanceKm, quote.PickupDate, quote.DeliveryBy,
		createdAt,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert quote: %w", err)
	}

	return id, nil
}

// GetQuote retrieves a quote by id.
func (s *Store) GetQuote(ctx context.Context, id string) (*storage.Quote, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, customer_id, service, price, package_type, weight_tons,
			volume_m3, hazardous, origin, destination, distance_km,
			pickup_date, delivery_by, created_at
		FROM quotes WHERE id = ?`, id)

	quote, err := scanQuote(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote: %w", err)
	}
	return quote, nil
}

// ListQuotes returns all quotes for a customer, most recent first.
func (s *Store) ListQuotes(ctx context.Context, customerID string) ([]*storage.Quote, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, customer_id, service, price, package_type, weight_tons,
			volume_m3, hazardous, origin, destination, distance_km,
			pickup_date, delivery_by, created_at
		FROM quotes WHERE customer_id = ? ORDER BY created_at DESC`, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []*storage.Quote
	for rows.Next() {
		quote, err := scanQuote(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan quote: %w", err)
		}
		quotes = append(quotes, quote)
	}
	return quotes, rows.Err()
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanQuote(row rowScanner) (*storage.Quote, error) {
	var quote storage.Quote
	err := row.Scan(
		&quote.ID, &quote.CustomerID, &quote.Service, &quote.Price,
		&quote.PackageType, &quote.WeightTons, &quote.VolumeM3,
		&quote.Hazardous, &quote.Origin, &quote.Destination,
		&quote.DistanceKm, &quote.PickupDate, &quote.DeliveryBy,
		&quote.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &quote, nil
}

var _ storage.QuoteStore = (*Store)(nil)
