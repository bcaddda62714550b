package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetApplicationsByStatusQueryIsNotConstructed = errors.New(
	"GetApplicationsByStatusQuery must be created via NewGetApplicationsByStatusQuery constructor",
)

// GetApplicationsByStatusQuery lists applications in a given review status.
// Administrators use it with Pending to work their review queue.
type GetApplicationsByStatusQuery struct {
	status businessapp.Status

	guard guard.ConstructorGuard
}

// NewGetApplicationsByStatusQuery creates a query for the review queue.
func NewGetApplicationsByStatusQuery(status businessapp.Status) (GetApplicationsByStatusQuery, error) {
	if err := status.Validate(); err != nil {
		return GetApplicationsByStatusQuery{}, err
	}

	return GetApplicationsByStatusQuery{
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetApplicationsByStatusQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationsByStatusQueryIsNotConstructed)
}

// Status returns the requested review status.
func (q GetApplicationsByStatusQuery) Status() businessapp.Status { return q.status }

// GetApplicationsByStatusQueryResponse is a review-queue line item.
type GetApplicationsByStatusQueryResponse struct {
	ID          kernel.UUID
	ApplicantID kernel.UUID
	Name        string
	Email       string
	SubmittedAt time.Time
}
