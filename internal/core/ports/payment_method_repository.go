package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"
)

// PaymentMethodRepository defines the persistence contract for saved payment methods.
type PaymentMethodRepository interface {
	// Add persists a new payment method to storage.
	Add(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error

	// Update persists changes to an existing payment method.
	Update(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error

	// Get retrieves a payment method by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*paymentmethod.PaymentMethod, error)

	// GetAllByOwner retrieves all payment methods saved by a user.
	GetAllByOwner(ctx context.Context, ownerID kernel.UUID) ([]*paymentmethod.PaymentMethod, error)

	// GetDefaultByOwner retrieves the owner's current default method.
	// Returns errs.ErrObjectNotFound when the owner has no default.
	GetDefaultByOwner(ctx context.Context, ownerID kernel.UUID) (*paymentmethod.PaymentMethod, error)

	// CountByOwner returns how many payment methods the owner has saved.
	CountByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error)
}
