// Package vector provides interfaces and implementations for storing and
// searching the embedded knowledge base the docs and support agents ground
// their answers on.
package vector

import "context"

// Document is a knowledge-base entry with its embedding.
type Document struct {
	// ID is a unique identifier for the document.
	ID string

	// Title is a short human-readable label surfaced as a source.
	Title string

	// Content is the document text.
	Content string

	// Embedding is the vector representation of the content.
	Embedding []float32
}

// QueryResult is a search hit with its similarity score.
type QueryResult struct {
	Document

	// Score is the cosine similarity (higher = more similar).
	Score float32
}

// Driver handles storage and retrieval of embedded documents.
type Driver interface {
	// Add stores documents with their embeddings. Documents with an
	// existing ID are updated.
	Add(ctx context.Context, docs []Document) error

	// Query finds the topK most similar documents to the given embedding.
	Query(ctx context.Context, embedding []float32, topK int) ([]QueryResult, error)

	// Get retrieves documents by their IDs.
	Get(ctx context.Context, ids []string) ([]Document, error)

	// Delete removes documents by their IDs.
	Delete(ctx context.Context, ids []string) error

	// Close releases any resources held by the driver.
	Close() error
}
