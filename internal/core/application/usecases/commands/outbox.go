package commands

import (
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/outbox"
)

// newOutboxMessage builds an unpublished outbox message from a payload struct.
// The payload must be JSON-serializable; handlers append the result within
// the same transaction as their primary write.
func newOutboxMessage(kind outbox.Kind, recipientID kernel.UUID, payload any) (*outbox.Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return outbox.NewMessage(kernel.NewUUID(), kind, recipientID, raw, time.Now().UTC())
}
