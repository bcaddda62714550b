package businessapp

import (
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

var (
	// ErrApplicationIsNotConstructed is returned when an Application instance was not
	// created through the NewApplication factory method.
	ErrApplicationIsNotConstructed = errors.New(
		"Application must be created via NewApplication constructor")

	// ErrRejectionReasonIsRequired is returned when rejecting without a reason.
	ErrRejectionReasonIsRequired = errs.NewValueIsRequiredError("rejection reason")
)

// Application represents a vendor's request to register a new business.
// It is the aggregate root that manages the onboarding review lifecycle
// from submission through administrator approval or rejection.
//
// Application follows these invariants:
//   - Must have a valid unique identifier and applicant reference
//   - Submitted documents must be complete (see Documents)
//   - Status transitions are one-directional from Pending to exactly one
//     terminal state; a terminal application is never re-opened in place
//   - Approval links exactly one created business back to the application
//   - Can only be created through NewApplication or RestoreApplication
type Application struct {
	id          kernel.UUID
	applicantID kernel.UUID

	info      BusinessInfo
	documents Documents

	status          Status
	rejectionReason string
	adminNotes      string

	submittedAt time.Time
	reviewedAt  *time.Time
	reviewerID  *kernel.UUID

	// businessID is set only when the application is approved.
	businessID *kernel.UUID

	// version supports optimistic concurrency control in persistence.
	version int

	isConstructed bool
}

// NewApplication creates a new Application in Pending status.
// Validates the applicant reference, business details and document completeness.
// submittedAt records the submission time supplied by the caller.
func NewApplication(
	id kernel.UUID,
	applicantID kernel.UUID,
	info BusinessInfo,
	documents Documents,
	submittedAt time.Time,
) (*Application, error) {
	if err := errors.Join(
		id.Validate(),
		applicantID.Validate(),
		info.Validate(),
		documents.Validate(),
	); err != nil {
		return nil, err
	}

	if !documents.HasAllRequiredDocuments() {
		return nil, errs.NewValueIsInvalidError("documents are incomplete")
	}

	return &Application{
		id:            id,
		applicantID:   applicantID,
		info:          info,
		documents:     documents,
		status:        Pending,
		submittedAt:   submittedAt,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreApplication reconstructs an Application aggregate from persistent storage.
// Unlike NewApplication it accepts any valid status and review stamps,
// and does not re-run document completeness validation.
func RestoreApplication(
	id kernel.UUID,
	applicantID kernel.UUID,
	info BusinessInfo,
	documents Documents,
	status Status,
	rejectionReason string,
	adminNotes string,
	submittedAt time.Time,
	reviewedAt *time.Time,
	reviewerID *kernel.UUID,
	businessID *kernel.UUID,
	version int,
) (*Application, error) {
	if err := errors.Join(
		id.Validate(),
		applicantID.Validate(),
		info.Validate(),
		documents.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("application version")
	}

	return &Application{
		id:              id,
		applicantID:     applicantID,
		info:            info,
		documents:       documents,
		status:          status,
		rejectionReason: rejectionReason,
		adminNotes:      adminNotes,
		submittedAt:     submittedAt,
		reviewedAt:      reviewedAt,
		reviewerID:      reviewerID,
		businessID:      businessID,
		version:         version,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Application instance was properly constructed.
func (a *Application) Validate() error {
	if a == nil || !a.isConstructed {
		return ErrApplicationIsNotConstructed
	}
	return nil
}

// IsEqual compares two applications by their unique identifiers.
func (a *Application) IsEqual(other *Application) bool {
	return other != nil && a.id.IsEqual(other.id)
}

// ID returns the application's unique identifier.
func (a *Application) ID() kernel.UUID { return a.id }

// ApplicantID returns the submitting vendor's identifier.
func (a *Application) ApplicantID() kernel.UUID { return a.applicantID }

// Info returns the submitted business details.
func (a *Application) Info() BusinessInfo { return a.info }

// Documents returns the submitted document references.
func (a *Application) Documents() Documents { return a.documents }

// Status returns the current review status.
func (a *Application) Status() Status { return a.status }

// RejectionReason returns the reason recorded on rejection, if any.
func (a *Application) RejectionReason() string { return a.rejectionReason }

// AdminNotes returns the administrator notes recorded during review.
func (a *Application) AdminNotes() string { return a.adminNotes }

// SubmittedAt returns the submission time of the current review cycle.
func (a *Application) SubmittedAt() time.Time { return a.submittedAt }

// ReviewedAt returns the review time. Nil while the application is pending.
func (a *Application) ReviewedAt() *time.Time { return a.reviewedAt }

// ReviewerID returns the reviewing administrator's ID. Nil while pending.
func (a *Application) ReviewerID() *kernel.UUID { return a.reviewerID }

// BusinessID returns the created business's ID. Nil unless approved.
func (a *Application) BusinessID() *kernel.UUID { return a.businessID }

// Version returns the aggregate version used for optimistic concurrency.
func (a *Application) Version() int { return a.version }

// Approve transitions the application to Approved and links the created business.
//
// Business rules:
//   - The application must currently be Pending
//   - Exactly one business is linked; its identity is supplied by the caller
//   - Reviewer and review time are stamped
//
// Returns an error if the reviewer or business ID is invalid, or the status
// transition is not allowed. Calling Approve on an already reviewed
// application always fails.
func (a *Application) Approve(reviewerID kernel.UUID, businessID kernel.UUID, notes string, reviewedAt time.Time) error {
	if err := errors.Join(reviewerID.Validate(), businessID.Validate()); err != nil {
		return err
	}

	newStatus, err := a.status.Approve()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.reviewerID = &reviewerID
	a.reviewedAt = &reviewedAt
	a.businessID = &businessID
	if notes != "" {
		a.adminNotes = notes
	}
	return nil
}

// Reject transitions the application to Rejected and records the reason.
//
// Business rules:
//   - The application must currently be Pending
//   - A non-empty reason is required
//   - Reviewer and review time are stamped
func (a *Application) Reject(reviewerID kernel.UUID, reason string, notes string, reviewedAt time.Time) error {
	if err := reviewerID.Validate(); err != nil {
		return err
	}
	if reason == "" {
		return ErrRejectionReasonIsRequired
	}

	newStatus, err := a.status.Reject()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.reviewerID = &reviewerID
	a.reviewedAt = &reviewedAt
	a.rejectionReason = reason
	if notes != "" {
		a.adminNotes = notes
	}
	return nil
}

// Resubmit replaces the mutable submission fields and starts a fresh Pending cycle.
//
// Business rules:
//   - Only Pending or Rejected applications may be resubmitted
//   - Documents must again be complete
//   - The previous review outcome (reason, stamps) is cleared
func (a *Application) Resubmit(info BusinessInfo, documents Documents, submittedAt time.Time) error {
	if err := errors.Join(info.Validate(), documents.Validate()); err != nil {
		return err
	}
	if !documents.HasAllRequiredDocuments() {
		return errs.NewValueIsInvalidError("documents are incomplete")
	}

	newStatus, err := a.status.Resubmit()
	if err != nil {
		return err
	}

	a.status = newStatus
	a.info = info
	a.documents = documents
	a.submittedAt = submittedAt
	a.rejectionReason = ""
	a.reviewedAt = nil
	a.reviewerID = nil
	return nil
}
