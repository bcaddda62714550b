package ports

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/domain/model/paymentmethod"
)

// PaymentGateway abstracts the external card payment provider.
// The core treats it as an opaque service that issues payment intents and
// card tokens; the gateway owns the charge lifecycle.
type PaymentGateway interface {
	// CreateIntent registers a pending charge for the given amount and
	// returns the gateway's payment-intent identifier.
	CreateIntent(ctx context.Context, amount kernel.Money, currency string) (string, error)

	// ConfirmIntent confirms a previously created intent and reports
	// whether the charge succeeded.
	ConfirmIntent(ctx context.Context, intentID string) (bool, error)

	// TokenizeCard exchanges raw card details for a reusable gateway token
	// and the card brand. Raw details never touch storage.
	TokenizeCard(ctx context.Context, card paymentmethod.CardDetails) (token string, brand string, err error)
}

// CardEncryptor encrypts card numbers for storage at rest and decrypts them
// when the gateway token must be re-issued.
type CardEncryptor interface {
	// Encrypt returns an opaque ciphertext string for the plaintext.
	Encrypt(plaintext string) (string, error)

	// Decrypt reverses Encrypt.
	Decrypt(ciphertext string) (string, error)
}

// NotificationPublisher delivers outbox messages to the message broker.
// Delivery is at-least-once; consumers deduplicate by message ID.
type NotificationPublisher interface {
	// Publish sends the message to the broker.
	Publish(ctx context.Context, message *outbox.Message) error
}

// RiderDirectory answers role questions about users.
// Used to ensure only users with the rider role are assigned to orders.
type RiderDirectory interface {
	// IsRider reports whether the user exists and has the rider role.
	IsRider(ctx context.Context, userID kernel.UUID) (bool, error)
}

// IdempotencyStore reserves client-supplied idempotency keys so a retried
// checkout request cannot create a second order.
type IdempotencyStore interface {
	// Reserve attempts to claim the key for the given time-to-live.
	// Returns false when the key was already claimed.
	Reserve(ctx context.Context, key string, ttl time.Duration) (bool, error)

	// Release frees a previously reserved key so the client may retry
	// after a failed request.
	Release(ctx context.Context, key string) error
}
