// Package outbox contains the notification outbox message entity.
// Commands append messages in the same transaction as their primary write;
// a background relay publishes them to the message broker afterwards. A
// failed publish therefore never affects the success of the operation that
// produced the message.
package outbox

import (
	"encoding/json"
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// Kind identifies the notification template a message maps to.
type Kind string

const (
	// KindOrderPlaced notifies the business owner about a new order.
	KindOrderPlaced Kind = "order_placed"

	// KindRiderAssigned notifies the rider about a delivery assignment.
	KindRiderAssigned Kind = "rider_assigned"

	// KindApplicationApproved notifies the applicant their business was approved.
	KindApplicationApproved Kind = "application_approved"

	// KindApplicationRejected notifies the applicant their application was rejected.
	KindApplicationRejected Kind = "application_rejected"
)

// Validate checks if the Kind is one of the known notification kinds.
func (k Kind) Validate() error {
	switch k {
	case KindOrderPlaced, KindRiderAssigned, KindApplicationApproved, KindApplicationRejected:
		return nil
	default:
		return errs.NewValueIsInvalidError("notification kind")
	}
}

// ErrMessageIsNotConstructed is returned when using an improperly initialized Message.
var ErrMessageIsNotConstructed = errors.New(
	"Message must be created via NewMessage constructor")

// Message is a pending notification recorded alongside a business operation.
type Message struct {
	id          kernel.UUID
	kind        Kind
	recipientID kernel.UUID
	payload     json.RawMessage
	createdAt   time.Time
	publishedAt *time.Time

	isConstructed bool
}

// NewMessage creates an unpublished outbox message.
// The payload is an arbitrary JSON document rendered into the notification
// template identified by kind.
func NewMessage(id kernel.UUID, kind Kind, recipientID kernel.UUID, payload json.RawMessage, createdAt time.Time) (*Message, error) {
	if err := errors.Join(
		id.Validate(),
		kind.Validate(),
		recipientID.Validate(),
	); err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, errs.NewValueIsRequiredError("payload")
	}

	return &Message{
		id:            id,
		kind:          kind,
		recipientID:   recipientID,
		payload:       payload,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreMessage reconstructs an outbox message from persistent storage.
func RestoreMessage(
	id kernel.UUID,
	kind Kind,
	recipientID kernel.UUID,
	payload json.RawMessage,
	createdAt time.Time,
	publishedAt *time.Time,
) (*Message, error) {
	m, err := NewMessage(id, kind, recipientID, payload, createdAt)
	if err != nil {
		return nil, err
	}

	m.publishedAt = publishedAt
	return m, nil
}

// Validate ensures the Message was properly constructed.
func (m *Message) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMessageIsNotConstructed
	}
	return nil
}

// ID returns the message's unique identifier.
func (m *Message) ID() kernel.UUID { return m.id }

// Kind returns the notification kind.
func (m *Message) Kind() Kind { return m.kind }

// RecipientID returns the notified user's identifier.
func (m *Message) RecipientID() kernel.UUID { return m.recipientID }

// Payload returns the notification payload document.
func (m *Message) Payload() json.RawMessage { return m.payload }

// CreatedAt returns when the message was recorded.
func (m *Message) CreatedAt() time.Time { return m.createdAt }

// PublishedAt returns when the message was relayed to the broker.
// Nil while the message is still pending.
func (m *Message) PublishedAt() *time.Time { return m.publishedAt }

// IsPublished reports whether the message has been relayed.
func (m *Message) IsPublished() bool { return m.publishedAt != nil }

// MarkPublished stamps the relay time.
func (m *Message) MarkPublished(at time.Time) {
	m.publishedAt = &at
}
