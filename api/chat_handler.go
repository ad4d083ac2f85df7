package api

import (
	"context"
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/haulflow/freightdesk/pkg/agent"
	"github.com/haulflow/freightdesk/pkg/llm"
	"github.com/haulflow/freightdesk/pkg/quote"
	"github.com/haulflow/freightdesk/pkg/sse"
)

// ChatRequest is the body of POST /v1/chat.
type ChatRequest struct {
	Message             string        `json:"message"`
	ConversationHistory []llm.Message `json:"conversationHistory,omitempty"`

	// AgentType, when present, overrides routing classification.
	AgentType string `json:"agentType,omitempty"`

	Metadata ChatMetadata `json:"metadata"`
}

// ChatMetadata carries the caller-held conversation context. The quote
// state travels out in a metadata frame and back in here on the next
// turn, so the server keeps no per-conversation state.
type ChatMetadata struct {
	UserID    string           `json:"userId,omitempty"`
	Customer  agent.Customer   `json:"customer"`
	Quote     *quote.State     `json:"quote,omitempty"`
	Shipments []agent.Shipment `json:"shipments,omitempty"`
}

// handleChat streams the agent reply as SSE frames.
func (s *Server) handleChat(c *fiber.Ctx) error {
	var req ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "invalid request body"})
	}

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Error: "message is required"})
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")

	// Use io.Pipe + SetBodyStream rather than SetBodyStreamWriter:
	// pw.Write blocks until fasthttp's chunked writer consumes the data
	// and flushes it to the socket, so each frame reaches the client as
	// it is produced instead of buffering in memory.
	pr, pw := io.Pipe()
	go s.streamChat(pw, &req)

	// Unknown size (-1) triggers chunked transfer encoding in fasthttp.
	c.Context().Response.SetBodyStream(pr, -1)

	return nil
}

// streamChat runs the agent pipeline and emits the reply frames.
// The fiber context is request-scoped and must not be touched here.
func (s *Server) streamChat(pw *io.PipeWriter, req *ChatRequest) {
	defer pw.Close()

	ctx := context.Background()

	customer := req.Metadata.Customer
	if customer.ID == "" {
		customer.ID = req.Metadata.UserID
	}

	resp, decision := s.coordinator.Process(ctx, req.AgentType, &agent.Request{
		Message:   req.Message,
		History:   req.ConversationHistory,
		Customer:  customer,
		Quote:     req.Metadata.Quote,
		Shipments: req.Metadata.Shipments,
	})

	opts := []sse.WriterOption{}
	if s.config.WordDelay > 0 {
		opts = append(opts, sse.WithWordDelay(s.config.WordDelay))
	}
	writer := sse.NewWriter(pw, opts...)

	metadata := map[string]any{
		"agent": string(resp.Agent),
	}
	if resp.Escalate {
		metadata["escalate"] = true
	}
	if resp.Quote != nil {
		metadata["quote"] = resp.Quote
	}
	if err := writer.WriteMetadata(metadata); err != nil {
		s.logger.Error("writing metadata frame", zap.Error(err))
		return
	}

	if decision.Reason != "" {
		frame := sse.Frame{Type: sse.FrameDebug, Content: "routed to " + string(decision.Agent) + ": " + decision.Reason}
		if err := writer.WriteFrame(frame); err != nil {
			s.logger.Error("writing debug frame", zap.Error(err))
			return
		}
	}

	if err := writer.WriteText(ctx, resp.Message.Content); err != nil {
		s.logger.Error("writing chunk frames", zap.Error(err))
		return
	}

	if len(resp.Sources) > 0 {
		if err := writer.WriteSources(resp.Sources); err != nil {
			s.logger.Error("writing sources frame", zap.Error(err))
		}
	}
}
