// Package worker provides an asynchronous worker pool for ingesting
// knowledge-base documents: generating embeddings with the provided
// embeddings.Embedder and storing them via the provided vector.Driver.
//
// The pool decouples document ingestion from the API's HTTP hot path so
// that uploads return immediately while embedding happens in the
// background.
package worker

import (
	"context"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/embeddings"
	"github.com/haulflow/freightdesk/pkg/utils"
	"github.com/haulflow/freightdesk/pkg/vector"
)

var (
	defaultNumWorkers   uint = 3
	defaultJobQueueSize uint = 256
)

// Job is one document to embed and index.
type Job struct {
	ID      string
	Title   string
	Content string
}

// Config is the configuration options for the worker pool.
type Config struct {
	// Embedder generates text embeddings.
	Embedder embeddings.Embedder

	// VectorDriver stores the embedded documents.
	VectorDriver vector.Driver

	// NumWorkers is the number of background workers in the pool.
	NumWorkers uint

	// QueueSize is the capacity of the buffered job channel (defaults to 256).
	QueueSize uint

	// Logger is the provided zap logger
	Logger *zap.Logger
}

// Pool ingests documents asynchronously via a worker pool.
type Pool struct {
	config *Config
	queue  chan Job
	wg     sync.WaitGroup
	logger *zap.Logger
}

// NewPool creates a new Pool and starts its worker goroutines.
func NewPool(c *Config) (*Pool, error) {
	if c.Embedder == nil || c.VectorDriver == nil {
		return nil, fmt.Errorf("worker pool requires an embedder and a vector driver")
	}

	if c.NumWorkers == 0 {
		c.NumWorkers = defaultNumWorkers
	}

	if c.QueueSize == 0 {
		c.QueueSize = defaultJobQueueSize
	}

	if c.NumWorkers > uint(math.MaxInt) {
		return nil, fmt.Errorf("NumWorkers %d exceeds max int", c.NumWorkers)
	}

	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}

	wp := &Pool{
		config: c,
		queue:  make(chan Job, c.QueueSize),
		logger: c.Logger,
	}

	wp.wg.Add(int(c.NumWorkers))
	for i := range c.NumWorkers {
		go wp.worker(i)
	}

	return wp, nil
}

// Enqueue submits a document for ingestion.
// Returns true if enqueued, false if the queue is full, resulting in the job being dropped
func (p *Pool) Enqueue(job Job) bool {
	select {
	case p.queue <- job:
		p.logger.Debug("document queued",
			zap.String("id", job.ID),
			zap.String("title", job.Title),
		)
		return true
	default:
		p.logger.Error("document not queued, queue full, job dropped",
			zap.String("id", job.ID),
			zap.String("title", job.Title),
		)
		return false
	}
}

// Close signals workers to stop and waits for in-flight jobs to drain.
// Call this during graceful shutdown after the HTTP server has stopped.
func (p *Pool) Close() {
	close(p.queue)
	p.wg.Wait()
}

// worker is the inner worker thread that continuously pulls jobs off the jobs queue
func (p *Pool) worker(id uint) {
	defer p.wg.Done()
	p.logger.Debug("worker started", zap.Uint("worker_id", id))

	for job := range p.queue {
		p.processJob(job)
	}

	p.logger.Debug("ingestion worker stopped", zap.Uint("worker_id", id))
}

// processJob embeds one document and stores it in the vector store.
// Errors are logged but not surfaced: ingestion is best-effort and the
// document can be re-submitted.
func (p *Pool) processJob(job Job) {
	ctx := context.Background()

	if job.Content == "" {
		p.logger.Debug("skipping document with no content", zap.String("id", job.ID))
		return
	}

	p.logger.Debug("embedding document",
		zap.String("id", job.ID),
		zap.String("preview", utils.Truncate(job.Content, 80)),
	)

	embedding, err := p.config.Embedder.Embed(ctx, job.Content)
	if err != nil {
		p.logger.Warn("failed to generate embedding",
			zap.String("id", job.ID),
			zap.Error(err),
		)
		return
	}

	doc := vector.Document{
		ID:        job.ID,
		Title:     job.Title,
		Content:   job.Content,
		Embedding: embedding,
	}

	if err := p.config.VectorDriver.Add(ctx, []vector.Document{doc}); err != nil {
		p.logger.Warn("failed to store document",
			zap.String("id", job.ID),
			zap.Error(err),
		)
		return
	}

	p.logger.Info("document indexed",
		zap.String("id", job.ID),
		zap.Int("embedding_dim", len(embedding)),
	)
}
