package eventstream

import "context"

// Publisher publishes quote events to an event stream backend.
type Publisher interface {
	PublishQuoteCreated(ctx context.Context, event *QuoteCreatedEvent) error
	Close() error
}
