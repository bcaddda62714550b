// Package riderdir implements the rider directory port against the riders
// table. The table is maintained by the account provisioning pipeline; this
// adapter only answers role checks.
package riderdir

import (
	"context"

	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RiderDTO represents one user holding the rider role.
type RiderDTO struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Active bool
}

// TableName specifies the database table name for rider role rows.
func (RiderDTO) TableName() string {
	return "riders"
}

// GormRiderDirectory implements RiderDirectory using GORM.
type GormRiderDirectory struct {
	db *gorm.DB
}

// NewGormRiderDirectory creates a new GORM rider directory.
func NewGormRiderDirectory(db *gorm.DB) *GormRiderDirectory {
	return &GormRiderDirectory{db: db}
}

// IsRider reports whether the user exists and holds an active rider role.
func (d *GormRiderDirectory) IsRider(ctx context.Context, userID kernel.UUID) (bool, error) {
	if err := userID.Validate(); err != nil {
		return false, err
	}

	var count int64
	if err := d.db.WithContext(ctx).Model(&RiderDTO{}).
		Where("user_id = ? AND active", userID.Bytes()).
		Count(&count).Error; err != nil {
		return false, err
	}

	return count > 0, nil
}
