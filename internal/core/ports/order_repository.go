package ports

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate, including its line items and any
	// attached payment record, to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The update is conditional on the aggregate's version; a concurrent
	// modification surfaces as errs.ErrVersionIsInvalid. Line items are
	// immutable after placement and are not rewritten.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// complete with line items and payment record.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllByBusiness retrieves all orders placed against a business.
	GetAllByBusiness(ctx context.Context, businessID kernel.UUID) ([]*order.Order, error)
}
