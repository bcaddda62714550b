// Package paymentmethod contains the saved payment method aggregate.
// A payment method stores a tokenized card belonging to a user. The card
// number is tokenized through the payment gateway and additionally kept
// AES-GCM encrypted at rest; the CVV is validated on input and never stored.
// At most one method per owner is the default, enforced transactionally by
// the set-default operation.
package paymentmethod

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrPaymentMethodIsNotConstructed is returned when a PaymentMethod was not
// created through one of the factory methods.
var ErrPaymentMethodIsNotConstructed = errors.New(
	"PaymentMethod must be created via NewPaymentMethod constructor")

// PaymentMethod represents a customer's saved, tokenized card.
type PaymentMethod struct {
	id      kernel.UUID
	ownerID kernel.UUID

	brand           string
	lastFour        string
	gatewayToken    string
	encryptedNumber string
	holderName      string
	expiryMonth     int
	expiryYear      int
	displayName     string

	isDefault bool

	version int

	isConstructed bool
}

// NewPaymentMethod creates a saved payment method from tokenized card data.
//
// Parameters:
//   - brand: card brand reported by the gateway (e.g. "visa")
//   - lastFour: last four digits kept for display
//   - gatewayToken: the gateway's card token; required
//   - encryptedNumber: AES-GCM ciphertext of the card number; required
//   - displayName: optional user-chosen label, defaults to brand + last four
func NewPaymentMethod(
	id kernel.UUID,
	ownerID kernel.UUID,
	brand string,
	lastFour string,
	gatewayToken string,
	encryptedNumber string,
	holderName string,
	expiryMonth int,
	expiryYear int,
	displayName string,
) (*PaymentMethod, error) {
	if err := errors.Join(id.Validate(), ownerID.Validate()); err != nil {
		return nil, err
	}

	var err error
	if gatewayToken == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("gateway token"))
	}
	if encryptedNumber == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("encrypted card number"))
	}
	if lastFour == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("last four digits"))
	}
	if holderName == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("holder name"))
	}
	if err != nil {
		return nil, err
	}

	if displayName == "" {
		displayName = brand + " •" + lastFour
	}

	return &PaymentMethod{
		id:              id,
		ownerID:         ownerID,
		brand:           brand,
		lastFour:        lastFour,
		gatewayToken:    gatewayToken,
		encryptedNumber: encryptedNumber,
		holderName:      holderName,
		expiryMonth:     expiryMonth,
		expiryYear:      expiryYear,
		displayName:     displayName,
		version:         1,
		isConstructed:   true,
	}, nil
}

// RestorePaymentMethod reconstructs a PaymentMethod from persistent storage.
func RestorePaymentMethod(
	id kernel.UUID,
	ownerID kernel.UUID,
	brand string,
	lastFour string,
	gatewayToken string,
	encryptedNumber string,
	holderName string,
	expiryMonth int,
	expiryYear int,
	displayName string,
	isDefault bool,
	version int,
) (*PaymentMethod, error) {
	pm, err := NewPaymentMethod(id, ownerID, brand, lastFour, gatewayToken,
		encryptedNumber, holderName, expiryMonth, expiryYear, displayName)
	if err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("payment method version")
	}

	pm.isDefault = isDefault
	pm.version = version
	return pm, nil
}

// Validate ensures the PaymentMethod was properly constructed.
func (pm *PaymentMethod) Validate() error {
	if pm == nil || !pm.isConstructed {
		return ErrPaymentMethodIsNotConstructed
	}
	return nil
}

// ID returns the payment method's unique identifier.
func (pm *PaymentMethod) ID() kernel.UUID { return pm.id }

// OwnerID returns the owning user's identifier.
func (pm *PaymentMethod) OwnerID() kernel.UUID { return pm.ownerID }

// Brand returns the card brand reported by the gateway.
func (pm *PaymentMethod) Brand() string { return pm.brand }

// LastFour returns the last four digits of the card number.
func (pm *PaymentMethod) LastFour() string { return pm.lastFour }

// GatewayToken returns the gateway card token.
func (pm *PaymentMethod) GatewayToken() string { return pm.gatewayToken }

// EncryptedNumber returns the AES-GCM ciphertext of the card number.
func (pm *PaymentMethod) EncryptedNumber() string { return pm.encryptedNumber }

// HolderName returns the card holder name.
func (pm *PaymentMethod) HolderName() string { return pm.holderName }

// ExpiryMonth returns the expiry month (1-12).
func (pm *PaymentMethod) ExpiryMonth() int { return pm.expiryMonth }

// ExpiryYear returns the four-digit expiry year.
func (pm *PaymentMethod) ExpiryYear() int { return pm.expiryYear }

// DisplayName returns the user-facing label.
func (pm *PaymentMethod) DisplayName() string { return pm.displayName }

// IsDefault reports whether this is the owner's default payment method.
func (pm *PaymentMethod) IsDefault() bool { return pm.isDefault }

// Version returns the aggregate version used for optimistic concurrency.
func (pm *PaymentMethod) Version() int { return pm.version }

// MarkDefault flags this method as the owner's default.
// The surrounding transaction must clear the previous default first so the
// at-most-one-default invariant holds.
func (pm *PaymentMethod) MarkDefault() {
	pm.isDefault = true
}

// ClearDefault removes the default flag.
func (pm *PaymentMethod) ClearDefault() {
	pm.isDefault = false
}
