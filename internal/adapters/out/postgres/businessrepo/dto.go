// Package businessrepo provides data transfer objects and mapping functions
// for business persistence.
package businessrepo

import (
	"grocery/internal/core/domain/model/business"
	"grocery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BusinessDTO represents the database structure for persisting business aggregates.
type BusinessDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	VendorID uuid.UUID `gorm:"type:uuid;index"`

	Name    string
	Email   string
	Phone   string
	Address string
	LogoURL string

	Version int
}

// TableName specifies the database table name for business entities.
func (BusinessDTO) TableName() string {
	return "businesses"
}

// fromDomain converts a business domain aggregate to its database representation.
func fromDomain(b *business.Business) BusinessDTO {
	return BusinessDTO{
		ID:       b.ID().Bytes(),
		VendorID: b.VendorID().Bytes(),
		Name:     b.Name(),
		Email:    b.Email(),
		Phone:    b.Phone(),
		Address:  b.Address(),
		LogoURL:  b.Logo(),
		Version:  b.Version(),
	}
}

// toDomain converts a database DTO to a business domain aggregate.
func toDomain(dto BusinessDTO) (*business.Business, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	vendorID, err := kernel.UUIDFromBytes(dto.VendorID[:])
	if err != nil {
		return nil, err
	}

	return business.RestoreBusiness(id, vendorID,
		dto.Name, dto.Email, dto.Phone, dto.Address, dto.LogoURL, dto.Version)
}
