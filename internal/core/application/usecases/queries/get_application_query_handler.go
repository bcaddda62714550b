package queries

import (
	"context"
	"database/sql"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetApplicationQueryHandler retrieves one application row from the database.
type GetApplicationQueryHandler struct {
	db *gorm.DB
}

// NewGetApplicationQueryHandler creates a handler for single-application queries.
func NewGetApplicationQueryHandler(db *gorm.DB) GetApplicationQueryHandler {
	return GetApplicationQueryHandler{db: db}
}

// Handle executes the query.
// Returns errs.ObjectNotFoundError when no application with the ID exists.
func (h GetApplicationQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationQuery,
) (GetApplicationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetApplicationQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			applicant_id,
			name,
			email,
			phone,
			address,
			status,
			rejection_reason,
			admin_notes,
			submitted_at,
			reviewed_at,
			reviewer_id,
			business_id
		FROM business_applications
		WHERE id = ?
	`, query.ApplicationID().String()).Row()

	var resp GetApplicationQueryResponse
	var id, applicantID uuid.UUID
	var reviewedAt sql.NullTime
	var reviewerID, businessID uuid.NullUUID

	err := row.Scan(
		&id,
		&applicantID,
		&resp.Name,
		&resp.Email,
		&resp.Phone,
		&resp.Address,
		&resp.Status,
		&resp.RejectionReason,
		&resp.AdminNotes,
		&resp.SubmittedAt,
		&reviewedAt,
		&reviewerID,
		&businessID,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetApplicationQueryResponse{}, errs.NewObjectNotFoundError(
			"application", query.ApplicationID())
	}
	if err != nil {
		return GetApplicationQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetApplicationQueryResponse{}, err
	}
	if resp.ApplicantID, err = kernel.UUIDFromBytes(applicantID[:]); err != nil {
		return GetApplicationQueryResponse{}, err
	}
	if reviewedAt.Valid {
		t := reviewedAt.Time
		resp.ReviewedAt = &t
	}
	if resp.ReviewerID, err = optionalUUID(reviewerID); err != nil {
		return GetApplicationQueryResponse{}, err
	}
	if resp.BusinessID, err = optionalUUID(businessID); err != nil {
		return GetApplicationQueryResponse{}, err
	}

	return resp, nil
}

// optionalUUID converts a nullable database UUID into a kernel UUID pointer.
func optionalUUID(v uuid.NullUUID) (*kernel.UUID, error) {
	if !v.Valid {
		return nil, nil //nolint:nilnil //absence is a valid outcome
	}
	id, err := kernel.UUIDFromBytes(v.UUID[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
