package commands

import (
	"context"
	"errors"

	"grocery/internal/pkg/errs"
)

// ErrPaymentMethodOwnerMismatch is returned when the method being promoted
// does not belong to the acting user.
var ErrPaymentMethodOwnerMismatch = errors.New("payment method belongs to another user")

// SetDefaultPaymentMethodCommandHandler handles the default method switch.
// Clearing the previous default and marking the new one happen in the same
// transaction so at most one default exists per owner at any point.
type SetDefaultPaymentMethodCommandHandler struct {
	uowFactory PaymentMethodUoWFactory
}

// NewSetDefaultPaymentMethodCommandHandler creates a handler for default switch operations.
func NewSetDefaultPaymentMethodCommandHandler(uowFactory PaymentMethodUoWFactory) SetDefaultPaymentMethodCommandHandler {
	return SetDefaultPaymentMethodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the default switch command.
// Promoting the method that is already the default is a no-op.
func (h SetDefaultPaymentMethodCommandHandler) Handle(ctx context.Context, cmd SetDefaultPaymentMethodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PaymentMethodRepository()

	pm, err := repo.Get(ctx, cmd.MethodID())
	if err != nil {
		return err
	}
	if !pm.OwnerID().IsEqual(cmd.OwnerID()) {
		return ErrPaymentMethodOwnerMismatch
	}
	if pm.IsDefault() {
		return uow.Commit(ctx)
	}

	current, err := repo.GetDefaultByOwner(ctx, cmd.OwnerID())
	if err != nil && !errors.Is(err, errs.ErrObjectNotFound) {
		return err
	}
	if current != nil {
		current.ClearDefault()
		if err = repo.Update(ctx, current); err != nil {
			return err
		}
	}

	pm.MarkDefault()
	if err = repo.Update(ctx, pm); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
