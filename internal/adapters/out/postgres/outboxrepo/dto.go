// Package outboxrepo provides data transfer objects and mapping functions
// for the notification outbox. Messages are appended in the producing
// transaction and drained by the relay job.
package outboxrepo

import (
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/outbox"

	"github.com/google/uuid"
)

// MessageDTO represents the database structure for persisting outbox messages.
type MessageDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind        string    `gorm:"type:varchar(32)"`
	RecipientID uuid.UUID `gorm:"type:uuid"`
	Payload     string    `gorm:"type:jsonb"`
	CreatedAt   time.Time `gorm:"index"`
	PublishedAt *time.Time
}

// TableName specifies the database table name for outbox messages.
func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// fromDomain converts an outbox message to its database representation.
func fromDomain(m *outbox.Message) MessageDTO {
	return MessageDTO{
		ID:          m.ID().Bytes(),
		Kind:        string(m.Kind()),
		RecipientID: m.RecipientID().Bytes(),
		Payload:     string(m.Payload()),
		CreatedAt:   m.CreatedAt(),
		PublishedAt: m.PublishedAt(),
	}
}

// toDomain converts a database DTO to an outbox message.
func toDomain(dto MessageDTO) (*outbox.Message, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	recipientID, err := kernel.UUIDFromBytes(dto.RecipientID[:])
	if err != nil {
		return nil, err
	}

	return outbox.RestoreMessage(id, outbox.Kind(dto.Kind), recipientID,
		json.RawMessage(dto.Payload), dto.CreatedAt, dto.PublishedAt)
}
