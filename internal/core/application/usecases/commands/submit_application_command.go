package commands

import (
	"errors"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrSubmitApplicationCommandIsNotConstructed = errors.New(
	"SubmitApplicationCommand must be created via NewSubmitApplicationCommand constructor",
)

// SubmitApplicationCommand represents a vendor's request to register a new business.
// Encapsulates the business details and the uploaded document references.
//
// Example:
//
//	docs, err := businessapp.NewDocuments(license, tax, ownerID, proof, "", photos)
//	if err != nil {
//	    return err // incomplete documents never reach the handler
//	}
//	cmd, err := NewSubmitApplicationCommand(kernel.NewUUID(), applicantID, info, docs)
type SubmitApplicationCommand struct { //nolint:recvcheck //using for validation
	applicationID kernel.UUID
	applicantID   kernel.UUID
	info          businessapp.BusinessInfo
	documents     businessapp.Documents

	guard guard.ConstructorGuard
}

// NewSubmitApplicationCommand creates a command to submit a business application.
// The info and documents values carry their own validation; incomplete
// documents fail at construction of the Documents value.
func NewSubmitApplicationCommand(
	applicationID kernel.UUID,
	applicantID kernel.UUID,
	info businessapp.BusinessInfo,
	documents businessapp.Documents,
) (SubmitApplicationCommand, error) {
	if err := errors.Join(
		applicationID.Validate(),
		applicantID.Validate(),
		info.Validate(),
		documents.Validate(),
	); err != nil {
		return SubmitApplicationCommand{}, err
	}

	return SubmitApplicationCommand{
		applicationID: applicationID,
		applicantID:   applicantID,
		info:          info,
		documents:     documents,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SubmitApplicationCommand) Validate() error {
	return c.guard.Validate(ErrSubmitApplicationCommandIsNotConstructed)
}

// ApplicationID returns the identity for the application being created.
func (c SubmitApplicationCommand) ApplicationID() kernel.UUID { return c.applicationID }

// ApplicantID returns the submitting vendor's identifier.
func (c SubmitApplicationCommand) ApplicantID() kernel.UUID { return c.applicantID }

// Info returns the submitted business details.
func (c SubmitApplicationCommand) Info() businessapp.BusinessInfo { return c.info }

// Documents returns the submitted document references.
func (c SubmitApplicationCommand) Documents() businessapp.Documents { return c.documents }
