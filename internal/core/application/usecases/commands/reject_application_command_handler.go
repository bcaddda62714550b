package commands

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/outbox"
)

// RejectApplicationCommandHandler orchestrates application rejection.
// Stores the reason and review stamps, and records the rejection
// notification, all within one transaction.
type RejectApplicationCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewRejectApplicationCommandHandler creates a handler for rejection operations.
func NewRejectApplicationCommandHandler(uowFactory ReviewUoWFactory) RejectApplicationCommandHandler {
	return RejectApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the rejection command.
// The application must currently be Pending.
func (h RejectApplicationCommandHandler) Handle(ctx context.Context, cmd RejectApplicationCommand) error {
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

	appRepo := uow.ApplicationRepository()

	app, err := appRepo.Get(ctx, cmd.ApplicationID())
	if err != nil {
		return err
	}

	if err = app.Reject(cmd.ReviewerID(), cmd.Reason(), cmd.Notes(), time.Now().UTC()); err != nil {
		return err
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return err
	}

	message, err := newOutboxMessage(outbox.KindApplicationRejected, app.ApplicantID(), map[string]string{
		"application_id": app.ID().String(),
		"reason":         cmd.Reason(),
	})
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
