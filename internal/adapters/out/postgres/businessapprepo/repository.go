package businessapprepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormApplicationRepository implements ApplicationRepository using GORM.
type GormApplicationRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormApplicationRepository creates a new GORM application repository.
func NewGormApplicationRepository(db *gorm.DB, tracker aggregateTracker) *GormApplicationRepository {
	return &GormApplicationRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new application to the database.
func (r *GormApplicationRepository) Add(ctx context.Context, aggregate *businessapp.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	if err = r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing application to the database.
// The write is conditional on the version the aggregate was loaded with;
// a concurrent writer that got there first makes this call fail with
// errs.VersionIsInvalidError.
func (r *GormApplicationRepository) Update(ctx context.Context, aggregate *businessapp.Application) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}
	dto.Version++

	result := r.db.WithContext(ctx).Model(&ApplicationDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("application version",
			errors.New("application was modified by another transaction"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an application by ID.
func (r *GormApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*businessapp.Application, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ApplicationDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("application", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByApplicant retrieves all applications submitted by a vendor.
func (r *GormApplicationRepository) GetAllByApplicant(
	ctx context.Context,
	applicantID kernel.UUID,
) ([]*businessapp.Application, error) {
	if err := applicantID.Validate(); err != nil {
		return nil, err
	}

	var dtos []ApplicationDTO
	if err := r.db.WithContext(ctx).
		Find(&dtos, "applicant_id = ?", applicantID.Bytes()).Error; err != nil {
		return nil, err
	}

	applications := make([]*businessapp.Application, 0, len(dtos))
	for _, dto := range dtos {
		app, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		applications = append(applications, app)
	}

	return applications, nil
}
