// Package agent implements the specialized chat agents and the
// router/coordinator that dispatches incoming messages between them.
package agent

import (
	"context"
	"time"

	"github.com/haulflow/freightdesk/pkg/llm"
	"github.com/haulflow/freightdesk/pkg/quote"
	"github.com/haulflow/freightdesk/pkg/sse"
)

// Kind identifies one of the specialized agents. The set is closed:
// agents are constructed once at startup and injected, never looked up
// by arbitrary strings at runtime.
type Kind string

const (
	KindQuote     Kind = "quote"
	KindDocs      Kind = "docs"
	KindSupport   Kind = "support"
	KindShipments Kind = "shipments"
)

// ParseKind maps a client-supplied agent type to a Kind.
func ParseKind(value string) (Kind, bool) {
	switch Kind(value) {
	case KindQuote, KindDocs, KindSupport, KindShipments:
		return Kind(value), true
	}
	return "", false
}

// Customer identifies who is chatting.
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

// Shipment is a tracked shipment supplied by the caller for the
// shipments agent to answer against.
type Shipment struct {
	ID          string    `json:"id"`
	Status      string    `json:"status"`
	Origin      string    `json:"origin,omitempty"`
	Destination string    `json:"destination,omitempty"`
	ETA         time.Time `json:"eta,omitzero"`
}

// Request is one incoming chat turn.
type Request struct {
	// Message is the user's current message.
	Message string

	// History is the prior conversation, oldest first.
	History []llm.Message

	Customer Customer

	// Quote is the caller-held quote conversation state, nil on the
	// first quoting turn.
	Quote *quote.State

	// Shipments are the caller's tracked shipments, for the shipments
	// agent.
	Shipments []Shipment
}

// Response is one agent reply.
type Response struct {
	// Agent is the kind that produced the reply.
	Agent Kind

	// Message is the assistant reply.
	Message llm.Message

	// Sources are the knowledge-base documents the reply was grounded
	// on, when retrieval ran.
	Sources []sse.Source

	// Escalate is set when the support agent decided a human should
	// take over. It is advisory metadata, not control flow.
	Escalate bool

	// Quote is the updated quote state to hand back to the caller,
	// present only for quote-agent replies.
	Quote *quote.State
}

// Agent turns a conversation turn into a reply.
type Agent interface {
	Kind() Kind
	Process(ctx context.Context, req *Request) (*Response, error)
}

func newAssistantResponse(kind Kind, text string) *Response {
	msg := llm.NewAssistantMessage(text)
	msg.Metadata = &llm.Metadata{
		Timestamp: time.Now().UTC(),
		AgentID:   string(kind),
	}
	return &Response{Agent: kind, Message: msg}
}
