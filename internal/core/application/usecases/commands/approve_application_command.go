package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrApproveApplicationCommandIsNotConstructed = errors.New(
	"ApproveApplicationCommand must be created via NewApproveApplicationCommand constructor",
)

// ApproveApplicationCommand represents an administrator approving a pending
// business application. Approval creates the business and links it back to
// the application in one transaction.
type ApproveApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	reviewerID    kernel.UUID
	notes         string

	guard guard.ConstructorGuard
}

// NewApproveApplicationCommand creates a command to approve an application.
// Notes are optional administrator remarks recorded with the review.
func NewApproveApplicationCommand(applicationID, reviewerID kernel.UUID, notes string) (ApproveApplicationCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		reviewerID.Validate(),
	); err != nil {
		return ApproveApplicationCommand{}, err
	}

	return ApproveApplicationCommand{
		applicationID: applicationID,
		reviewerID:    reviewerID,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ApproveApplicationCommand) Validate() error {
	return c.guard.Validate(ErrApproveApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application under review.
func (c ApproveApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }

// ReviewerID returns the approving administrator's identifier.
func (c ApproveApplicationCommand) ReviewerID() kernel.UUID { return c.reviewerID }

// Notes returns the optional administrator notes.
func (c ApproveApplicationCommand) Notes() string { return c.notes }
