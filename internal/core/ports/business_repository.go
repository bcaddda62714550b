package ports

import (
	"context"

	"grocery/internal/core/domain/model/business"
	"grocery/internal/core/domain/model/kernel"
)

// BusinessRepository defines the persistence contract for business aggregates.
type BusinessRepository interface {
	// Add persists a new business aggregate to storage.
	Add(ctx context.Context, aggregate *business.Business) error

	// Update persists changes to an existing business aggregate.
	Update(ctx context.Context, aggregate *business.Business) error

	// Get retrieves a business aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*business.Business, error)

	// GetAllByVendor retrieves all businesses owned by a vendor.
	GetAllByVendor(ctx context.Context, vendorID kernel.UUID) ([]*business.Business, error)
}
