// Package business contains the business aggregate: a vendor-owned storefront
// that products and orders attach to. Businesses are created either directly
// or from an approved business application.
package business

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"
)

// ErrBusinessIsNotConstructed is returned when a Business instance was not
// created through one of the factory methods.
var ErrBusinessIsNotConstructed = errors.New(
	"Business must be created via NewBusiness constructor")

// Business represents a vendor-owned storefront.
//
// Invariants:
//   - Must have a valid unique identifier and owning vendor reference
//   - Name, email, phone and address are required; logo is optional
type Business struct {
	id       kernel.UUID
	vendorID kernel.UUID
	name     string
	email    string
	phone    string
	address  string
	logo     string

	version int

	isConstructed bool
}

// NewBusiness creates a new Business owned by the given vendor.
func NewBusiness(id kernel.UUID, vendorID kernel.UUID, name, email, phone, address, logo string) (*Business, error) {
	if err := errors.Join(id.Validate(), vendorID.Validate()); err != nil {
		return nil, err
	}

	var err error
	if name == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("name"))
	}
	if email == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("email"))
	}
	if phone == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("phone"))
	}
	if address == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("address"))
	}
	if err != nil {
		return nil, err
	}

	return &Business{
		id:            id,
		vendorID:      vendorID,
		name:          name,
		email:         email,
		phone:         phone,
		address:       address,
		logo:          logo,
		version:       1,
		isConstructed: true,
	}, nil
}

// RestoreBusiness reconstructs a Business aggregate from persistent storage.
func RestoreBusiness(
	id kernel.UUID, vendorID kernel.UUID,
	name, email, phone, address, logo string,
	version int,
) (*Business, error) {
	b, err := NewBusiness(id, vendorID, name, email, phone, address, logo)
	if err != nil {
		return nil, err
	}
	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause("business version")
	}

	b.version = version
	return b, nil
}

// Validate ensures the Business instance was properly constructed.
func (b *Business) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBusinessIsNotConstructed
	}
	return nil
}

// IsEqual compares two businesses by their unique identifiers.
func (b *Business) IsEqual(other *Business) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the business's unique identifier.
func (b *Business) ID() kernel.UUID { return b.id }

// VendorID returns the owning vendor's identifier.
func (b *Business) VendorID() kernel.UUID { return b.vendorID }

// Name returns the business name.
func (b *Business) Name() string { return b.name }

// Email returns the business contact email.
func (b *Business) Email() string { return b.email }

// Phone returns the business contact phone.
func (b *Business) Phone() string { return b.phone }

// Address returns the business street address.
func (b *Business) Address() string { return b.address }

// Logo returns the optional logo reference.
func (b *Business) Logo() string { return b.logo }

// Version returns the aggregate version used for optimistic concurrency.
func (b *Business) Version() int { return b.version }
