// Package queries contains read-only operations against the database.
// Implements the Query side of the CQRS architecture: handlers bypass the
// domain model and read projection rows directly for speed.
package queries

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrGetApplicationQueryIsNotConstructed = errors.New(
	"GetApplicationQuery must be created via NewGetApplicationQuery constructor",
)

// GetApplicationQuery retrieves a single business application with its
// review outcome.
type GetApplicationQuery struct {
	applicationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetApplicationQuery creates a query for one application.
func NewGetApplicationQuery(applicationID kernel.UUID) (GetApplicationQuery, error) {
	if err := applicationID.Validate(); err != nil {
		return GetApplicationQuery{}, err
	}

	return GetApplicationQuery{
		applicationID: applicationID,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetApplicationQuery) Validate() error {
	return q.guard.Validate(ErrGetApplicationQueryIsNotConstructed)
}

// ApplicationID returns the requested application's identifier.
func (q GetApplicationQuery) ApplicationID() kernel.UUID { return q.applicationID }

// GetApplicationQueryResponse is the read model for one application.
// Review fields are nil until an administrator has reviewed it; BusinessID is
// set only for approved applications.
type GetApplicationQueryResponse struct {
	ID              kernel.UUID
	ApplicantID     kernel.UUID
	Name            string
	Email           string
	Phone           string
	Address         string
	Status          string
	RejectionReason string
	AdminNotes      string
	SubmittedAt     time.Time
	ReviewedAt      *time.Time
	ReviewerID      *kernel.UUID
	BusinessID      *kernel.UUID
}
