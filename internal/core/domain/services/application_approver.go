package services

import (
	"time"

	"grocery/internal/core/domain/model/business"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
)

// ApplicationApprover is a domain service responsible for turning an approved
// business application into a live business.
//
// Business rules:
//   - The application must be valid and currently Pending
//   - Exactly one business is created per approval, owned by the applicant
//   - Name, email, phone, address and logo are copied verbatim from the
//     submitted business info
//   - Approval and business creation succeed or fail together; the caller
//     persists both within one transaction
//
// Example usage:
//
//	approver := services.NewApplicationApprover()
//	b, err := approver.Approve(app, kernel.NewUUID(), reviewerID, "looks good", time.Now().UTC())
//	if err != nil {
//	    // Application was not pending, or references were invalid
//	    return err
//	}
//	// Persist app and b in the same unit of work
type ApplicationApprover struct{}

// NewApplicationApprover creates a new ApplicationApprover instance.
func NewApplicationApprover() ApplicationApprover {
	return ApplicationApprover{}
}

// Approve creates the business for the application and transitions the
// application to Approved, linking the two.
//
// Parameters:
//   - app: the application under review (must be Pending)
//   - businessID: identity for the business being created
//   - reviewerID: the approving administrator
//   - notes: optional admin notes recorded with the review
//   - reviewedAt: review timestamp
//
// Returns the created business, or an error if validation or the status
// transition fails. On error the application is left unmodified.
func (s ApplicationApprover) Approve(
	app *businessapp.Application,
	businessID kernel.UUID,
	reviewerID kernel.UUID,
	notes string,
	reviewedAt time.Time,
) (*business.Business, error) {
	if err := app.Validate(); err != nil {
		return nil, err
	}

	info := app.Info()
	b, err := business.NewBusiness(
		businessID,
		app.ApplicantID(),
		info.Name(),
		info.Email(),
		info.Phone(),
		info.Address(),
		info.Logo(),
	)
	if err != nil {
		return nil, err
	}

	if err = app.Approve(reviewerID, businessID, notes, reviewedAt); err != nil {
		return nil, err
	}

	return b, nil
}
