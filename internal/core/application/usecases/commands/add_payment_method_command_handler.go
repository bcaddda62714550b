package commands

import (
	"context"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/paymentmethod"
	"grocery/internal/core/ports"
)

// AddPaymentMethodCommandHandler handles saving a tokenized card.
// The card number is exchanged for a gateway token and stored only as
// AES-GCM ciphertext plus the last four digits; the CVV is discarded after
// tokenization. The owner's first saved method becomes the default.
type AddPaymentMethodCommandHandler struct {
	uowFactory PaymentMethodUoWFactory
	gateway    ports.PaymentGateway
	encryptor  ports.CardEncryptor
}

// NewAddPaymentMethodCommandHandler creates a handler for saving payment methods.
func NewAddPaymentMethodCommandHandler(
	uowFactory PaymentMethodUoWFactory,
	gateway ports.PaymentGateway,
	encryptor ports.CardEncryptor,
) AddPaymentMethodCommandHandler {
	return AddPaymentMethodCommandHandler{
		uowFactory: uowFactory,
		gateway:    gateway,
		encryptor:  encryptor,
	}
}

// Handle processes the save command and returns the new method's ID.
func (h AddPaymentMethodCommandHandler) Handle(ctx context.Context, cmd AddPaymentMethodCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	card := cmd.Card()

	token, brand, err := h.gateway.TokenizeCard(ctx, card)
	if err != nil {
		return kernel.UUID{}, err
	}

	encryptedNumber, err := h.encryptor.Encrypt(card.Number())
	if err != nil {
		return kernel.UUID{}, err
	}

	pm, err := paymentmethod.NewPaymentMethod(
		kernel.NewUUID(),
		cmd.OwnerID(),
		brand,
		card.LastFour(),
		token,
		encryptedNumber,
		card.HolderName(),
		card.ExpiryMonth(),
		card.ExpiryYear(),
		cmd.DisplayName(),
	)
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentMethodRepository()

	existing, err := repo.CountByOwner(ctx, cmd.OwnerID())
	if err != nil {
		return kernel.UUID{}, err
	}
	if existing == 0 {
		pm.MarkDefault()
	}

	if err = repo.Add(ctx, pm); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}
	return pm.ID(), nil
}
