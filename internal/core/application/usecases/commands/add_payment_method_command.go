package commands

import (
	"errors"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"
	"grocery/internal/pkg/guard"
)

var ErrAddPaymentMethodCommandIsNotConstructed = errors.New(
	"AddPaymentMethodCommand must be created via NewAddPaymentMethodCommand constructor",
)

// AddPaymentMethodCommand represents a customer saving a card for later use.
// The raw card details live only for the duration of the command; they are
// tokenized with the gateway and encrypted before anything is persisted.
type AddPaymentMethodCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	card        paymentmethod.CardDetails
	displayName string

	guard guard.ConstructorGuard
}

// NewAddPaymentMethodCommand creates a command to save a payment method.
// The display name is optional.
func NewAddPaymentMethodCommand(
	ownerID kernel.UUID,
	card paymentmethod.CardDetails,
	displayName string,
) (AddPaymentMethodCommand, error) {
	if err := errors.Join(
		ownerID.Validate(),
		card.Validate(),
	); err != nil {
		return AddPaymentMethodCommand{}, err
	}

	return AddPaymentMethodCommand{
		ownerID:     ownerID,
		card:        card,
		displayName: displayName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AddPaymentMethodCommand) Validate() error {
	return c.guard.Validate(ErrAddPaymentMethodCommandIsNotConstructed)
}

// OwnerID returns the saving user's identifier.
func (c AddPaymentMethodCommand) OwnerID() kernel.UUID { return c.ownerID }

// Card returns the raw card details to tokenize.
func (c AddPaymentMethodCommand) Card() paymentmethod.CardDetails { return c.card }

// DisplayName returns the optional user-chosen label.
func (c AddPaymentMethodCommand) DisplayName() string { return c.displayName }
