package commands

import (
	"context"
	"time"
)

// ResubmitApplicationCommandHandler handles application resubmission.
// Only pending or rejected applications may be resubmitted; approved
// applications are final.
type ResubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewResubmitApplicationCommandHandler creates a handler for resubmission operations.
func NewResubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) ResubmitApplicationCommandHandler {
	return ResubmitApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the resubmission command.
func (h ResubmitApplicationCommandHandler) Handle(ctx context.Context, cmd ResubmitApplicationCommand) error {
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

	if err = app.Resubmit(cmd.Info(), cmd.Documents(), time.Now().UTC()); err != nil {
		return err
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
