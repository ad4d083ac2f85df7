package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/agent"
	"github.com/haulflow/freightdesk/pkg/storage"
	"github.com/haulflow/freightdesk/pkg/worker"
)

// errorResponse is the JSON error body for non-streaming failures.
type errorResponse struct {
	Error string `json:"error"`
}

// Server is the freightdesk API server.
type Server struct {
	config      Config
	coordinator *agent.Coordinator
	quotes      storage.QuoteStore
	ingest      *worker.Pool
	logger      *zap.Logger
	app         *fiber.App
}

// NewServer creates a new API server. The coordinator and quote store are
// injected so they can be shared with other components; the ingestion
// pool is optional and gates the documents endpoint.
func NewServer(config Config, coordinator *agent.Coordinator, quotes storage.QuoteStore, ingest *worker.Pool, logger *zap.Logger) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	s := &Server{
		config:      config,
		coordinator: coordinator,
		quotes:      quotes,
		ingest:      ingest,
		logger:      logger,
		app:         app,
	}

	app.Get("/ping", s.handlePing)
	app.Post("/v1/chat", s.handleChat)
	app.Get("/v1/search", s.handleSearch)
	app.Post("/v1/documents", s.handleAddDocuments)
	app.Get("/v1/quotes", s.handleListQuotes)
	app.Get("/v1/quotes/:id", s.handleGetQuote)

	return s
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// Run starts the API server on the configured address.
func (s *Server) Run() error {
	s.logger.Info("starting API server",
		zap.String("listen", s.config.ListenAddr),
	)
	return s.app.Listen(s.config.ListenAddr)
}

// Shutdown gracefully shuts down the API server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
