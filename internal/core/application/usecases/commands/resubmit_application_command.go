package commands

import (
	"errors"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrResubmitApplicationCommandIsNotConstructed = errors.New(
	"ResubmitApplicationCommand must be created via NewResubmitApplicationCommand constructor",
)

// ResubmitApplicationCommand represents an applicant amending a pending or
// rejected application. The previous review outcome is cleared and a fresh
// Pending cycle begins; the original terminal status remains a fact of the
// prior cycle only.
type ResubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	info          businessapp.BusinessInfo
	documents     businessapp.Documents

	guard guard.ConstructorGuard
}

// NewResubmitApplicationCommand creates a command to resubmit an application.
func NewResubmitApplicationCommand(
	applicationID kernel.UUID,
	info businessapp.BusinessInfo,
	documents businessapp.Documents,
) (ResubmitApplicationCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		info.Validate(),
		documents.Validate(),
	); err != nil {
		return ResubmitApplicationCommand{}, err
	}

	return ResubmitApplicationCommand{
		applicationID: applicationID,
		info:          info,
		documents:     documents,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c ResubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrResubmitApplicationCommandIsNotConstructed)
}

// ApplicationID returns the application being resubmitted.
func (c ResubmitApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }

// Info returns the updated business details.
func (c ResubmitApplicationCommand) Info() businessapp.BusinessInfo { return c.info }

// Documents returns the updated document references.
func (c ResubmitApplicationCommand) Documents() businessapp.Documents { return c.documents }
