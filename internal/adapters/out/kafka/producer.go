// Package kafka publishes order integration events to a Kafka broker.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/segmentio/kafka-go"

	"cargotrack/internal/core/ports"
)

// messageWriter abstracts kafka.Writer for testing.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// OrderEventProducer implements ports.OrderEventPublisher on top of a Kafka
// topic. Messages are keyed by order ID so all events of one order land in
// the same partition, preserving their order.
type OrderEventProducer struct {
	w     messageWriter
	topic string
}

// NewOrderEventProducer creates a producer writing to the given topic.
func NewOrderEventProducer(brokers []string, topic string) *OrderEventProducer {
	return &OrderEventProducer{
		w: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Balancer: &kafka.LeastBytes{},
		},
		topic: topic,
	}
}

func newProducerWithWriter(w messageWriter, topic string) *OrderEventProducer {
	return &OrderEventProducer{w: w, topic: topic}
}

// PublishStatusChanged emits one status-change event.
func (p *OrderEventProducer) PublishStatusChanged(ctx context.Context, event ports.OrderStatusChangedEvent) error {
	value, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status change event: %w", err)
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(event.OrderID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("kafka publish: %w", err)
	}

	return nil
}

// Close releases the underlying writer's resources.
func (p *OrderEventProducer) Close() error {
	if w, ok := p.w.(*kafka.Writer); ok {
		return w.Close()
	}
	return nil
}

// NoopPublisher discards events. Used when no broker is configured.
type NoopPublisher struct{}

// NewNoopPublisher creates a publisher that drops every event.
func NewNoopPublisher() NoopPublisher {
	return NoopPublisher{}
}

// PublishStatusChanged does nothing.
func (NoopPublisher) PublishStatusChanged(context.Context, ports.OrderStatusChangedEvent) error {
	return nil
}
