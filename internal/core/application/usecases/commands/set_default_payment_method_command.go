package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/guard"
)

var ErrSetDefaultPaymentMethodCommandIsNotConstructed = errors.New(
	"SetDefaultPaymentMethodCommand must be created via NewSetDefaultPaymentMethodCommand constructor",
)

// SetDefaultPaymentMethodCommand represents a user choosing one of their
// saved payment methods as the default for future checkouts.
type SetDefaultPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	ownerID  kernel.UUID
	methodID kernel.UUID

	guard guard.ConstructorGuard
}

// NewSetDefaultPaymentMethodCommand creates a command to change the default method.
func NewSetDefaultPaymentMethodCommand(ownerID, methodID kernel.UUID) (SetDefaultPaymentMethodCommand, error) {
	if err := errors.Join(
		ownerID.Validate(),
		methodID.Validate(),
	); err != nil {
		return SetDefaultPaymentMethodCommand{}, err
	}

	return SetDefaultPaymentMethodCommand{
		ownerID:  ownerID,
		methodID: methodID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c SetDefaultPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrSetDefaultPaymentMethodCommandIsNotConstructed)
}

// OwnerID returns the acting user's identifier.
func (c SetDefaultPaymentMethodCommand) OwnerID() kernel.UUID { return c.ownerID }

// MethodID returns the payment method to promote.
func (c SetDefaultPaymentMethodCommand) MethodID() kernel.UUID { return c.methodID }
