// Package kafka publishes quote events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	segmentio "github.com/segmentio/kafka-go"

	"github.com/haulflow/freightdesk/pkg/eventstream"
)

// DefaultTopic is the topic quote events are published to.
const DefaultTopic = "freightdesk.quotes"

// Config holds the Kafka publisher settings.
type Config struct {
	// Brokers is the list of broker addresses.
	Brokers []string

	// Topic defaults to DefaultTopic.
	Topic string
}

// Publisher writes quote events to Kafka, keyed by customer id so that
// one customer's events stay ordered within a partition.
type Publisher struct {
	writer *segmentio.Writer
}

// NewPublisher creates a Kafka-backed publisher.
func NewPublisher(cfg Config) (*Publisher, error) {
	if len(cfg.Brokers) == 0 {
		return nil, fmt.Errorf("no kafka brokers configured")
	}

	topic := cfg.Topic
	if topic == "" {
		topic = DefaultTopic
	}

	writer := &segmentio.Writer{
		Addr:         segmentio.TCP(cfg.Brokers...),
		Topic:        topic,
		Balancer:     &segmentio.Hash{},
		RequiredAcks: segmentio.RequireOne,
		BatchTimeout: 50 * time.Millisecond,
	}

	return &Publisher{writer: writer}, nil
}

// PublishQuoteCreated marshals the event and writes it to the topic.
// Missing event id and timestamp are filled in before publishing.
func (p *Publisher) PublishQuoteCreated(ctx context.Context, event *eventstream.QuoteCreatedEvent) error {
	if event == nil {
		return eventstream.ErrNilQuoteEvent
	}

	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now().UTC()
	}
	event.SchemaVersion = eventstream.SchemaVersionV1
	event.EventType = eventstream.EventTypeQuoteCreated

	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshaling quote event: %w", err)
	}

	msg := segmentio.Message{
		Key:   []byte(event.CustomerID),
		Value: payload,
		Headers: []segmentio.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("writing quote event: %w", err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
