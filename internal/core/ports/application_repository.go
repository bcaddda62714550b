// Package ports defines repository, unit-of-work and gateway interfaces for the
// marketplace core. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
)

// ApplicationRepository defines the persistence contract for business
// application aggregates.
type ApplicationRepository interface {
	// Add persists a new application aggregate to storage.
	// The application must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *businessapp.Application) error

	// Update persists changes to an existing application aggregate.
	// The update is conditional on the aggregate's version; a concurrent
	// modification surfaces as errs.ErrVersionIsInvalid.
	Update(ctx context.Context, aggregate *businessapp.Application) error

	// Get retrieves an application aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*businessapp.Application, error)

	// GetAllByApplicant retrieves all applications submitted by a vendor,
	// newest first.
	GetAllByApplicant(ctx context.Context, applicantID kernel.UUID) ([]*businessapp.Application, error)
}
