package commands

import (
	"context"
	"time"

	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/domain/services"
)

// ApproveApplicationCommandHandler orchestrates application approval.
// Within one transaction it transitions the application to Approved, creates
// the business owned by the applicant, and records the approval notification.
//
// Example:
//
//	handler := NewApproveApplicationCommandHandler(uowFactory)
//	cmd, _ := NewApproveApplicationCommand(appID, adminID, "documents verified")
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    // Application was not pending, or a concurrent review won
//	}
type ApproveApplicationCommandHandler struct {
	uowFactory ReviewUoWFactory
}

// NewApproveApplicationCommandHandler creates a handler for approval operations.
func NewApproveApplicationCommandHandler(uowFactory ReviewUoWFactory) ApproveApplicationCommandHandler {
	return ApproveApplicationCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the approval command.
// The application must currently be Pending; approving an already reviewed
// application fails without side effects. The version check on the update
// guarantees that of two concurrent approvals exactly one succeeds.
func (h ApproveApplicationCommandHandler) Handle(ctx context.Context, cmd ApproveApplicationCommand) error {
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

	b, err := services.NewApplicationApprover().Approve(
		app,
		kernel.NewUUID(),
		cmd.ReviewerID(),
		cmd.Notes(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.BusinessRepository().Add(ctx, b); err != nil {
		return err
	}

	if err = appRepo.Update(ctx, app); err != nil {
		return err
	}

	message, err := newOutboxMessage(outbox.KindApplicationApproved, app.ApplicantID(), map[string]string{
		"application_id": app.ID().String(),
		"business_id":    b.ID().String(),
		"business_name":  b.Name(),
	})
	if err != nil {
		return err
	}

	if err = uow.OutboxRepository().Add(ctx, message); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
