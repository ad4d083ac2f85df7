package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/haulflow/freightdesk/pkg/worker"
)

// DocumentUpload is one document in a POST /v1/documents body.
type DocumentUpload struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content"`
}

// AddDocumentsRequest is the body of POST /v1/documents.
type AddDocumentsRequest struct {
	Documents []DocumentUpload `json:"documents"`
}

// AddDocumentsResponse reports how many documents were accepted for
// background ingestion.
type AddDocumentsResponse struct {
	Accepted int      `json:"accepted"`
	Dropped  int      `json:"dropped"`
	IDs      []string `json:"ids"`
}

// handleAddDocuments enqueues documents for embedding and indexing.
// Ingestion is asynchronous: a 202 means accepted, not yet searchable.
func (s *Server) handleAddDocuments(c *fiber.Ctx) error {
	if s.ingest == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(errorResponse{
			Error: "document ingestion is not configured",
		})
	}

	var req AddDocumentsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if len(req.Documents) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "documents are required"})
	}

	resp := AddDocumentsResponse{IDs: make([]string, 0, len(req.Documents))}
	for _, doc := range req.Documents {
		if doc.Content == "" {
			resp.Dropped++
			continue
		}

		id := doc.ID
		if id == "" {
			id = uuid.NewString()
		}

		if s.ingest.Enqueue(worker.Job{ID: id, Title: doc.Title, Content: doc.Content}) {
			resp.Accepted++
			resp.IDs = append(resp.IDs, id)
		} else {
			resp.Dropped++
		}
	}

	return c.Status(fiber.StatusAccepted).JSON(resp)
}
