package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

var ErrRejectApplicationCommandIsNotConstructed = errors.New(
	"RejectApplicationCommand must be created via NewRejectApplicationCommand constructor",
)

// RejectApplicationCommand represents an administrator rejecting a pending
// business application with a mandatory reason.
type RejectApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	reviewerID    kernel.UUID
	reason        string
	notes         string

	guard guard.ConstructorGuard
}

// NewRejectApplicationCommand creates a command to reject an application.
// A non-empty reason is required; notes are optional.
func NewRejectApplicationCommand(applicationID, reviewerID kernel.UUID, reason, notes string) (RejectApplicationCommand, error) {
	var err error
	if vErr := applicationID.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if vErr := reviewerID.Validate(); vErr != nil {
		err = errors.Join(err, vErr)
	}
	if reason == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("rejection reason"))
	}
	if err != nil {
		return RejectApplicationCommand{}, err
	}

	return RejectApplicationCommand{
		applicationID: applicationID,
		reviewerID:    reviewerID,
		reason:        reason,
		notes:         notes,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RejectApplicationCommand) Validate() error {
	return c.guard.Validate(ErrRejectApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application under review.
func (c RejectApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }

// ReviewerID returns the rejecting administrator's identifier.
func (c RejectApplicationCommand) ReviewerID() kernel.UUID { return c.reviewerID }

// Reason returns the mandatory rejection reason.
func (c RejectApplicationCommand) Reason() string { return c.reason }

// Notes returns the optional administrator notes.
func (c RejectApplicationCommand) Notes() string { return c.notes }
