package paymentmethodrepo

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"
	"grocery/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPaymentMethodRepository implements PaymentMethodRepository using GORM.
type GormPaymentMethodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormPaymentMethodRepository creates a new GORM payment method repository.
func NewGormPaymentMethodRepository(db *gorm.DB, tracker aggregateTracker) *GormPaymentMethodRepository {
	return &GormPaymentMethodRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new payment method to the database.
func (r *GormPaymentMethodRepository) Add(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing payment method to the database with a version check.
func (r *GormPaymentMethodRepository) Update(ctx context.Context, aggregate *paymentmethod.PaymentMethod) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version++

	result := r.db.WithContext(ctx).Model(&PaymentMethodDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewVersionIsInvalidError("payment method version",
			errors.New("payment method was modified by another transaction"))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a payment method by ID.
func (r *GormPaymentMethodRepository) Get(ctx context.Context, id kernel.UUID) (*paymentmethod.PaymentMethod, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("payment method", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllByOwner retrieves all payment methods saved by a user.
func (r *GormPaymentMethodRepository) GetAllByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) ([]*paymentmethod.PaymentMethod, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dtos []PaymentMethodDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "owner_id = ?", ownerID.Bytes()).Error; err != nil {
		return nil, err
	}

	methods := make([]*paymentmethod.PaymentMethod, 0, len(dtos))
	for _, dto := range dtos {
		pm, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		methods = append(methods, pm)
	}

	return methods, nil
}

// GetDefaultByOwner retrieves the owner's current default method.
func (r *GormPaymentMethodRepository) GetDefaultByOwner(
	ctx context.Context,
	ownerID kernel.UUID,
) (*paymentmethod.PaymentMethod, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	var dto PaymentMethodDTO
	if err := r.db.WithContext(ctx).
		First(&dto, "owner_id = ? AND is_default", ownerID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("default payment method", ownerID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// CountByOwner returns how many payment methods the owner has saved.
func (r *GormPaymentMethodRepository) CountByOwner(ctx context.Context, ownerID kernel.UUID) (int64, error) {
	if err := ownerID.Validate(); err != nil {
		return 0, err
	}

	var count int64
	if err := r.db.WithContext(ctx).Model(&PaymentMethodDTO{}).
		Where("owner_id = ?", ownerID.Bytes()).Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}
