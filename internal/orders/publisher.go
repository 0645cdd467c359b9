package orders

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/leonnmarcoo/Apple-store/internal/money"
)

// OrderEvent is the message published after an order is created or changes
// status.
type OrderEvent struct {
	EventType  string       `json:"event_type"`
	OrderID    string       `json:"order_id"`
	UserID     string       `json:"user_id,omitempty"`
	Status     string       `json:"status"`
	Total      money.Amount `json:"total"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// EventPublisher fans order lifecycle events out to interested consumers.
type EventPublisher interface {
	Publish(ctx context.Context, event OrderEvent) error
	Close() error
}

// KafkaPublisher writes order events to the order-events topic.
type KafkaPublisher struct {
	writer *kafka.Writer
}

func NewKafkaPublisher(topic string, brokers ...string) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &KafkaPublisher{writer: w}
}

func (p *KafkaPublisher) Publish(ctx context.Context, event OrderEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal order event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID), // order_id for ordering
		Value: payload,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(event.EventType)},
		},
	}

	return p.writer.WriteMessages(ctx, msg)
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
