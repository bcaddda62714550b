package commands

import (
	"context"

	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/ports"
)

// RelayOutboxCommandHandler drains pending outbox messages to the broker.
// Publishing is at-least-once: a message published right before a failed
// MarkPublished will be sent again on the next pass, so consumers must
// deduplicate by message ID.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.NotificationPublisher
}

// NewRelayOutboxCommandHandler creates a handler for outbox relay passes.
func NewRelayOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.NotificationPublisher,
) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes up to BatchSize pending messages and stamps them published.
// Returns the number of messages relayed.
func (h RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	outboxRepo := uow.OutboxRepository()

	pending, err := outboxRepo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(pending) == 0 {
		return 0, nil
	}

	published := make([]*outbox.Message, 0, len(pending))
	var publishErr error
	for _, message := range pending {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			break
		}
		published = append(published, message)
	}

	if len(published) > 0 {
		if err = outboxRepo.MarkPublished(ctx, published); err != nil {
			return len(published), err
		}
	}

	return len(published), publishErr
}
