package commands

import (
	"context"
	"errors"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/ports"
)

// ErrDuplicateOrderRequest is returned when an idempotency key was already
// claimed by a previous checkout request.
var ErrDuplicateOrderRequest = errors.New("order request with this idempotency key was already accepted")

// idempotencyKeyTTL is how long a claimed checkout key blocks replays.
const idempotencyKeyTTL = 24 * time.Hour

// PlaceOrderCommandHandler handles order checkout.
// For card orders it creates a payment intent with the gateway before the
// order is persisted; cash orders carry no gateway payment.
type PlaceOrderCommandHandler struct {
	uowFactory       OrderUoWFactory
	gateway          ports.PaymentGateway
	idempotencyStore ports.IdempotencyStore
	currency         string
}

// NewPlaceOrderCommandHandler creates a handler for checkout operations.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	gateway ports.PaymentGateway,
	idempotencyStore ports.IdempotencyStore,
	currency string,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory:       uowFactory,
		gateway:          gateway,
		idempotencyStore: idempotencyStore,
		currency:         currency,
	}
}

// Handle processes the checkout command.
// The idempotency key is claimed before any write; a replayed request fails
// with ErrDuplicateOrderRequest and creates nothing. When checkout fails
// after the claim, the key is released so the client can retry.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (err error) {
	if err = cmd.Validate(); err != nil {
		return err
	}

	claimed, err := h.idempotencyStore.Reserve(ctx, cmd.IdempotencyKey(), idempotencyKeyTTL)
	if err != nil {
		return err
	}
	if !claimed {
		return ErrDuplicateOrderRequest
	}

	defer func() {
		if err != nil {
			_ = h.idempotencyStore.Release(ctx, cmd.IdempotencyKey())
		}
	}()

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.CustomerID(),
		cmd.BusinessID(),
		cmd.Address(),
		cmd.Items(),
		cmd.Method(),
	)
	if err != nil {
		return err
	}

	if cmd.Method() == order.Card {
		intentID, gErr := h.gateway.CreateIntent(ctx, o.Total(), h.currency)
		if gErr != nil {
			return gErr
		}

		payment, pErr := order.NewPayment(kernel.NewUUID(), intentID)
		if pErr != nil {
			return pErr
		}
		if pErr = o.AttachPayment(payment); pErr != nil {
			return pErr
		}
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	message, err := newOutboxMessage(outbox.KindOrderPlaced, o.CustomerID(), map[string]string{
		"order_id":    o.ID().String(),
		"business_id": o.BusinessID().String(),
		"total":       o.Total().String(),
	})
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
