package ports

import (
	"context"

	"grocery/internal/core/domain/model/outbox"
)

// OutboxRepository defines the persistence contract for notification outbox messages.
// Messages are appended within the same transaction as the operation that
// produced them and consumed by the relay job afterwards.
type OutboxRepository interface {
	// Add appends an unpublished message to the outbox.
	Add(ctx context.Context, message *outbox.Message) error

	// GetUnpublished retrieves up to limit unpublished messages, oldest first.
	GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error)

	// MarkPublished stamps the messages' publish time after a successful relay.
	MarkPublished(ctx context.Context, messages []*outbox.Message) error
}
