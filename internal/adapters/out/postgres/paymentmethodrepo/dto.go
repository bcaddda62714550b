// Package paymentmethodrepo provides data transfer objects and mapping
// functions for saved payment method persistence. Only the gateway token,
// the AES-GCM ciphertext of the card number and display fields are stored.
package paymentmethodrepo

import (
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"

	"github.com/google/uuid"
)

// PaymentMethodDTO represents the database structure for persisting payment methods.
type PaymentMethodDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID uuid.UUID `gorm:"type:uuid;index"`

	Brand           string
	LastFour        string `gorm:"type:varchar(4)"`
	GatewayToken    string
	EncryptedNumber string
	HolderName      string
	ExpiryMonth     int
	ExpiryYear      int
	DisplayName     string

	IsDefault bool `gorm:"index"`

	Version int
}

// TableName specifies the database table name for payment method entities.
func (PaymentMethodDTO) TableName() string {
	return "payment_methods"
}

// fromDomain converts a payment method domain aggregate to its database representation.
func fromDomain(pm *paymentmethod.PaymentMethod) PaymentMethodDTO {
	return PaymentMethodDTO{
		ID:              pm.ID().Bytes(),
		OwnerID:         pm.OwnerID().Bytes(),
		Brand:           pm.Brand(),
		LastFour:        pm.LastFour(),
		GatewayToken:    pm.GatewayToken(),
		EncryptedNumber: pm.EncryptedNumber(),
		HolderName:      pm.HolderName(),
		ExpiryMonth:     pm.ExpiryMonth(),
		ExpiryYear:      pm.ExpiryYear(),
		DisplayName:     pm.DisplayName(),
		IsDefault:       pm.IsDefault(),
		Version:         pm.Version(),
	}
}

// toDomain converts a database DTO to a payment method domain aggregate.
func toDomain(dto PaymentMethodDTO) (*paymentmethod.PaymentMethod, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return paymentmethod.RestorePaymentMethod(
		id,
		ownerID,
		dto.Brand,
		dto.LastFour,
		dto.GatewayToken,
		dto.EncryptedNumber,
		dto.HolderName,
		dto.ExpiryMonth,
		dto.ExpiryYear,
		dto.DisplayName,
		dto.IsDefault,
		dto.Version,
	)
}
