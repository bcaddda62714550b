// Package businessapprepo provides data transfer objects and mapping functions
// for business application persistence. It implements the repository pattern
// for the application aggregate, converting between domain entities and
// database rows.
package businessapprepo

import (
	"encoding/json"
	"time"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ApplicationDTO represents the database structure for persisting application aggregates.
// Statuses are stored as their string form so rows stay readable in ad-hoc queries.
type ApplicationDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicantID uuid.UUID `gorm:"type:uuid;index"`

	Name    string
	Email   string
	Phone   string
	Address string
	LogoURL string

	LicenseRef           string
	TaxCertificateRef    string
	OwnerIDRef           string
	AddressProofRef      string
	HealthCertificateRef string
	// StorefrontPhotoRefs holds a JSON array of storage references.
	StorefrontPhotoRefs string `gorm:"type:jsonb"`

	Status          string `gorm:"type:varchar(16);index"`
	RejectionReason string
	AdminNotes      string

	SubmittedAt time.Time
	ReviewedAt  *time.Time
	ReviewerID  *uuid.UUID `gorm:"type:uuid"`
	BusinessID  *uuid.UUID `gorm:"type:uuid"`

	Version int
}

// TableName specifies the database table name for application entities.
func (ApplicationDTO) TableName() string {
	return "business_applications"
}

// fromDomain converts an application domain aggregate to its database representation.
func fromDomain(app *businessapp.Application) (ApplicationDTO, error) {
	photos, err := json.Marshal(app.Documents().StorefrontPhotos())
	if err != nil {
		return ApplicationDTO{}, err
	}

	return ApplicationDTO{
		ID:          app.ID().Bytes(),
		ApplicantID: app.ApplicantID().Bytes(),

		Name:    app.Info().Name(),
		Email:   app.Info().Email(),
		Phone:   app.Info().Phone(),
		Address: app.Info().Address(),
		LogoURL: app.Info().Logo(),

		LicenseRef:           app.Documents().License(),
		TaxCertificateRef:    app.Documents().TaxCertificate(),
		OwnerIDRef:           app.Documents().OwnerID(),
		AddressProofRef:      app.Documents().AddressProof(),
		HealthCertificateRef: app.Documents().HealthCertificate(),
		StorefrontPhotoRefs:  string(photos),

		Status:          app.Status().String(),
		RejectionReason: app.RejectionReason(),
		AdminNotes:      app.AdminNotes(),

		SubmittedAt: app.SubmittedAt(),
		ReviewedAt:  app.ReviewedAt(),
		ReviewerID:  optionalBytes(app.ReviewerID()),
		BusinessID:  optionalBytes(app.BusinessID()),

		Version: app.Version(),
	}, nil
}

// toDomain converts a database DTO to an application domain aggregate.
func toDomain(dto ApplicationDTO) (*businessapp.Application, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	applicantID, err := kernel.UUIDFromBytes(dto.ApplicantID[:])
	if err != nil {
		return nil, err
	}

	info, err := businessapp.NewBusinessInfo(dto.Name, dto.Email, dto.Phone, dto.Address, dto.LogoURL)
	if err != nil {
		return nil, err
	}

	var photos []string
	if dto.StorefrontPhotoRefs != "" {
		if err = json.Unmarshal([]byte(dto.StorefrontPhotoRefs), &photos); err != nil {
			return nil, err
		}
	}
	documents := businessapp.RestoreDocuments(
		dto.LicenseRef,
		dto.TaxCertificateRef,
		dto.OwnerIDRef,
		dto.AddressProofRef,
		dto.HealthCertificateRef,
		photos,
	)

	status, err := businessapp.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	reviewerID, err := optionalUUID(dto.ReviewerID)
	if err != nil {
		return nil, err
	}
	businessID, err := optionalUUID(dto.BusinessID)
	if err != nil {
		return nil, err
	}

	return businessapp.RestoreApplication(
		id,
		applicantID,
		info,
		documents,
		status,
		dto.RejectionReason,
		dto.AdminNotes,
		dto.SubmittedAt,
		dto.ReviewedAt,
		reviewerID,
		businessID,
		dto.Version,
	)
}

func optionalBytes(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalUUID(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //absence is a valid outcome
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}
