package nop

import (
	"context"

	"github.com/haulflow/freightdesk/pkg/eventstream"
)

// Publisher is a no-op eventstream publisher used for tests and disabled mode.
type Publisher struct{}

// NewPublisher creates a new no-op eventstream publisher.
func NewPublisher() *Publisher {
	return &Publisher{}
}

// PublishQuoteCreated validates input and otherwise does nothing.
func (p *Publisher) PublishQuoteCreated(_ context.Context, event *eventstream.QuoteCreatedEvent) error {
	if event == nil {
		return eventstream.ErrNilQuoteEvent
	}

	return nil
}

// Close is a no-op.
func (p *Publisher) Close() error {
	return nil
}
