// Package events publishes order lifecycle events to Kafka.
package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"

	"demo/ecommerce/internal/model"
)

const (
	TypeOrderCreated       = "order.created"
	TypeOrderStatusChanged = "order.status_changed"
)

// OrderEvent is the message body written to the orders topic.
type OrderEvent struct {
	Type       string            `json:"type"`
	OrderID    string            `json:"order_id"`
	UserID     string            `json:"user_id,omitempty"`
	Status     model.OrderStatus `json:"status"`
	OccurredAt time.Time         `json:"occurred_at"`
}

// Publisher emits order events. Implementations must be safe for concurrent
// use by request handlers.
type Publisher interface {
	Publish(ctx context.Context, e OrderEvent) error
}

type KafkaPublisher struct {
	w *kafka.Writer
}

func NewKafkaPublisher(brokers []string, topic string) *KafkaPublisher {
	return &KafkaPublisher{w: &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
	}}
}

func (p *KafkaPublisher) Publish(ctx context.Context, e OrderEvent) error {
	val, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(e.OrderID),
		Value: val,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
			{Key: "event-type", Value: []byte(e.Type)},
		},
	})
}

func (p *KafkaPublisher) Close() error { return p.w.Close() }
