package businessapp

import (
	"errors"

	"grocery/internal/pkg/errs"
	"grocery/internal/pkg/guard"
)

// ErrBusinessInfoIsNotConstructed is returned when using improperly initialized BusinessInfo.
var ErrBusinessInfoIsNotConstructed = errors.New(
	"BusinessInfo must be created via NewBusinessInfo constructor")

// BusinessInfo holds the storefront details submitted with an application.
// On approval these values are copied verbatim onto the created business.
type BusinessInfo struct {
	name    string
	email   string
	phone   string
	address string
	logo    string

	guard guard.ConstructorGuard
}

// NewBusinessInfo creates validated business details.
// Name, email, phone and address are required; logo is optional.
func NewBusinessInfo(name, email, phone, address, logo string) (BusinessInfo, error) {
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
		return BusinessInfo{}, err
	}

	return BusinessInfo{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		logo:    logo,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Name returns the business name.
func (i BusinessInfo) Name() string { return i.name }

// Email returns the business contact email.
func (i BusinessInfo) Email() string { return i.email }

// Phone returns the business contact phone.
func (i BusinessInfo) Phone() string { return i.phone }

// Address returns the business street address.
func (i BusinessInfo) Address() string { return i.address }

// Logo returns the optional logo reference.
func (i BusinessInfo) Logo() string { return i.logo }

// Validate checks if the BusinessInfo value is properly constructed.
func (i BusinessInfo) Validate() error {
	return i.guard.Validate(ErrBusinessInfoIsNotConstructed)
}
