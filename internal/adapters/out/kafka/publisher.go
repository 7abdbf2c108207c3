// Package kafka publishes order status-changed notifications to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"ordertracking/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// DefaultTopic is the topic status-changed notifications go to unless
// configured otherwise.
const DefaultTopic = "order.status.changed"

// StatusChangedEvent is the wire payload for one status change. The event id
// is generated per publish so consumers can deduplicate redeliveries.
type StatusChangedEvent struct {
	EventID    string    `json:"eventId"`
	OrderID    string    `json:"orderId"`
	CustomerID string    `json:"customerId"`
	Status     string    `json:"status"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// OrderEventPublisher implements ports.OrderEventPublisher on top of a
// kafka-go writer. Messages are keyed by order id so all events for one order
// land on the same partition in order.
type OrderEventPublisher struct {
	writer *kafka.Writer
}

// NewOrderEventPublisher creates a publisher writing to the given topic.
// Brokers is a comma-separated list of broker addresses.
func NewOrderEventPublisher(brokersCSV string, topic string) *OrderEventPublisher {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}

	return &OrderEventPublisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}
}

// PublishStatusChanged emits the order's current status as a JSON message.
func (p *OrderEventPublisher) PublishStatusChanged(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	event := StatusChangedEvent{
		EventID:    uuid.NewString(),
		OrderID:    aggregate.ID(),
		CustomerID: aggregate.CustomerID(),
		Status:     aggregate.Status().String(),
		UpdatedAt:  aggregate.UpdatedAt(),
	}

	value, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(aggregate.ID()),
		Value: value,
		Time:  time.Now().UTC(),
	})
}

// Close flushes and closes the underlying writer.
func (p *OrderEventPublisher) Close() error {
	return p.writer.Close()
}
