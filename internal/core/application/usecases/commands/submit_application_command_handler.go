package commands

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/businessapp"
)

// SubmitApplicationCommandHandler handles the business logic for application submission.
// Creates a new application in Pending status awaiting administrator review.
type SubmitApplicationCommandHandler struct {
	uowFactory ApplicationUoWFactory
}

// NewSubmitApplicationCommandHandler creates a handler for application submission.
// Requires an ApplicationUoWFactory for transactional persistence.
func NewSubmitApplicationCommandHandler(uowFactory ApplicationUoWFactory) SubmitApplicationCommandHandler {
	return SubmitApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the submission command.
// Document completeness is enforced by the application aggregate; the
// submission timestamp records when this handler ran.
func (h SubmitApplicationCommandHandler) Handle(ctx context.Context, cmd SubmitApplicationCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	app, err := businessapp.NewApplication(
		cmd.ApplicationID(),
		cmd.ApplicantID(),
		cmd.Info(),
		cmd.Documents(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ApplicationRepository().Add(ctx, app); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
