package order

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrAddressIsNotConstructed is returned when using an improperly initialized Address.
var ErrAddressIsNotConstructed = errors.New(
	"Address must be created via NewAddress constructor")

// Address is the delivery address snapshot captured at checkout.
// It is copied into the order so later edits to the customer's saved
// addresses never affect orders already placed.
type Address struct {
	street string
	city   string
	notes  string

	guard guard.ConstructorGuard
}

// NewAddress creates a validated address snapshot.
// Street and city are required; notes are optional rider instructions.
func NewAddress(street, city, notes string) (Address, error) {
	var err error
	if street == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("street"))
	}
	if city == "" {
		err = errors.Join(err, errs.NewValueIsRequiredError("city"))
	}
	if err != nil {
		return Address{}, err
	}

	return Address{
		street: street,
		city:   city,
		notes:  notes,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// Notes returns optional delivery instructions.
func (a Address) Notes() string { return a.notes }

// Validate checks if the Address was properly constructed.
func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
