package commands

import (
	"context"
	"errors"

	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/ports"
)

// ErrUserIsNotRider is returned when the assignee does not hold the rider role.
var ErrUserIsNotRider = errors.New("user is not a rider")

// AssignRiderCommandHandler handles rider assignment.
// The assignee's rider role is verified against the user directory before the
// order is touched; the version check on the update ensures that of two
// concurrent assignments exactly one wins.
type AssignRiderCommandHandler struct {
	uowFactory OrderUoWFactory
	riders     ports.RiderDirectory
}

// NewAssignRiderCommandHandler creates a handler for rider assignment operations.
func NewAssignRiderCommandHandler(uowFactory OrderUoWFactory, riders ports.RiderDirectory) AssignRiderCommandHandler {
	return AssignRiderCommandHandler{
		uowFactory: uowFactory,
		riders:     riders,
	}
}

// Handle processes the rider assignment command.
func (h AssignRiderCommandHandler) Handle(ctx context.Context, cmd AssignRiderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	isRider, err := h.riders.IsRider(ctx, cmd.RiderID())
	if err != nil {
		return err
	}
	if !isRider {
		return ErrUserIsNotRider
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.AssignRider(cmd.RiderID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	message, err := newOutboxMessage(outbox.KindRiderAssigned, cmd.RiderID(), map[string]string{
		"order_id":    o.ID().String(),
		"business_id": o.BusinessID().String(),
		"street":      o.Address().Street(),
		"city":        o.Address().City(),
	})
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
