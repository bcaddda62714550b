// Package kafkanotify implements the notification publisher port on top of
// Kafka. The outbox relay hands it pending messages; consumers on the topic
// render and deliver the actual notifications.
package kafkanotify

import (
	"context"
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/outbox"

	"github.com/segmentio/kafka-go"
)

// envelope is the wire format published to the notifications topic.
type envelope struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	RecipientID string          `json:"recipient_id"`
	Payload     json.RawMessage `json:"payload"`
	CreatedAt   time.Time       `json:"created_at"`
}

// Publisher is a Kafka-backed implementation of ports.NotificationPublisher.
type Publisher struct {
	writer *kafka.Writer
}

// NewPublisher creates a publisher writing to the given topic.
// Messages are keyed by recipient so one user's notifications stay ordered.
func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.LeastBytes{},
			AllowAutoTopicCreation: true,
		},
	}
}

// Publish sends the message to the broker.
func (p *Publisher) Publish(ctx context.Context, message *outbox.Message) error {
	if err := message.Validate(); err != nil {
		return err
	}

	value, err := json.Marshal(envelope{
		ID:          message.ID().String(),
		Kind:        string(message.Kind()),
		RecipientID: message.RecipientID().String(),
		Payload:     message.Payload(),
		CreatedAt:   message.CreatedAt(),
	})
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.RecipientID().String()),
		Value: value,
	})
}

// Close releases the underlying Kafka writer.
func (p *Publisher) Close() error {
	return p.writer.Close()
}
