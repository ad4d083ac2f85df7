package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// SearchResult is one knowledge-base hit.
type SearchResult struct {
	ID      string  `json:"id"`
	Title   string  `json:"title,omitempty"`
	Content string  `json:"content"`
	Score   float32 `json:"score"`
}

// SearchResponse is the body of a GET /v1/search response.
type SearchResponse struct {
	Query   string         `json:"query"`
	Count   int            `json:"count"`
	Results []SearchResult `json:"results"`
}

// handleSearch handles GET /v1/search requests.
// Query parameters:
//   - query (required): the search query text
//   - top_k (optional, default 5): number of results to return
func (s *Server) handleSearch(c *fiber.Ctx) error {
	if s.config.VectorDriver == nil || s.config.Embedder == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{
			Error: "search is not configured: vector driver and embedder are required",
		})
	}

	query := c.Query("query")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
			Error: "query parameter is required",
		})
	}

	topK := 5
	if topKStr := c.Query("top_k"); topKStr != "" {
		parsed, err := strconv.Atoi(topKStr)
		if err != nil || parsed <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(errorResponse{
				Error: "top_k must be a positive integer",
			})
		}
		topK = parsed
	}

	ctx := c.Context()

	embedding, err := s.config.Embedder.Embed(ctx, query)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error: "embedding query failed",
		})
	}

	hits, err := s.config.VectorDriver.Query(ctx, embedding, topK)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{
			Error: "knowledge base query failed",
		})
	}

	results := make([]SearchResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, SearchResult{
			ID:      hit.ID,
			Title:   hit.Title,
			Content: hit.Content,
			Score:   hit.Score,
		})
	}

	return c.JSON(SearchResponse{
		Query:   query,
		Count:   len(results),
		Results: results,
	})
}
