package queries

import (
	"context"

	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetApplicationsByStatusQueryHandler retrieves the review queue from the database.
// Results are sorted by submission time so the oldest applications surface first.
type GetApplicationsByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetApplicationsByStatusQueryHandler creates a handler for review-queue queries.
func NewGetApplicationsByStatusQueryHandler(db *gorm.DB) GetApplicationsByStatusQueryHandler {
	return GetApplicationsByStatusQueryHandler{db: db}
}

// Handle executes the query. An empty queue yields an empty slice, not an error.
func (h GetApplicationsByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetApplicationsByStatusQuery,
) ([]GetApplicationsByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	applications := make([]GetApplicationsByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			applicant_id,
			name,
			email,
			submitted_at
		FROM business_applications
		WHERE status = ?
		ORDER BY submitted_at, id
	`, query.Status().String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetApplicationsByStatusQueryResponse
		var id, applicantID uuid.UUID

		err = rows.Scan(
			&id,
			&applicantID,
			&resp.Name,
			&resp.Email,
			&resp.SubmittedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.ApplicantID, err = kernel.UUIDFromBytes(applicantID[:]); err != nil {
			return nil, err
		}

		applications = append(applications, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return applications, nil
}
