package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/haulflow/freightdesk/pkg/storage"
)

// handleListQuotes returns a customer's quotes, most recent first.
func (s *Server) handleListQuotes(c *fiber.Ctx) error {
	customerID := c.Query("customer_id")
	if customerID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "customer_id parameter is required"})
	}

	quotes, err := s.quotes.ListQuotes(c.Context(), customerID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to list quotes"})
	}

	return c.JSON(map[string]any{
		"count":  len(quotes),
		"quotes": quotes,
	})
}

// handleGetQuote returns a single quote by id.
func (s *Server) handleGetQuote(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "id parameter required"})
	}

	quote, err := s.quotes.GetQuote(c.Context(), id)
	if err != nil {
		var notFound storage.ErrNotFound
		if errors.As(err, &notFound) {
			return c.Status(fiber.StatusNotFound).JSON(errorResponse{Error: "quote not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Error: "failed to load quote"})
	}

	return c.JSON(quote)
}
