package commands_test

import (
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewResubmitApplicationCommand(t *testing.T) {
	t.Run("should create a valid command", func(t *testing.T) {
		applicationID := kernel.NewUUID()

		cmd, err := commands.NewResubmitApplicationCommand(
			applicationID, testBusinessInfo(t), testDocuments(t))

		require.NoError(t, err)
		assert.Equal(t, applicationID, cmd.ApplicationID())
		assert.Equal(t, "Corner Grocer", cmd.Info().Name())
	})

	t.Run("should reject incomplete documents", func(t *testing.T) {
		_, err := commands.NewResubmitApplicationCommand(
			kernel.NewUUID(), testBusinessInfo(t), businessapp.Documents{})

		require.Error(t, err)
	})

	t.Run("should reject zero-value commands", func(t *testing.T) {
		var cmd commands.ResubmitApplicationCommand

		err := cmd.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrResubmitApplicationCommandIsNotConstructed)
	})
}

func TestResubmitApplicationCommandHandler_Handle_RejectedApplication(t *testing.T) {
	ctx := t.Context()
	app := testPendingApplication(t)
	require.NoError(t, app.Reject(kernel.NewUUID(), "blurry license scan", "", time.Now()))

	cmd, err := commands.NewResubmitApplicationCommand(
		app.ID(), testBusinessInfo(t), testDocuments(t))
	require.NoError(t, err)

	appRepo := new(MockSubmitApplicationRepository)
	uow := new(MockSubmitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, app.ID()).Return(app, nil).Once(),
		appRepo.On("Update", ctx, mock.AnythingOfType("*businessapp.Application")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResubmitApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, businessapp.Pending, app.Status())
	assert.Empty(t, app.RejectionReason())

	appRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestResubmitApplicationCommandHandler_Handle_ApprovedApplication(t *testing.T) {
	ctx := t.Context()
	app := testPendingApplication(t)
	require.NoError(t, app.Approve(kernel.NewUUID(), kernel.NewUUID(), "", time.Now()))

	cmd, err := commands.NewResubmitApplicationCommand(
		app.ID(), testBusinessInfo(t), testDocuments(t))
	require.NoError(t, err)

	appRepo := new(MockSubmitApplicationRepository)
	uow := new(MockSubmitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, app.ID()).Return(app, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResubmitApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Approved is not a valid status to resubmit")
	appRepo.AssertNotCalled(t, "Update", ctx, mock.Anything)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestResubmitApplicationCommandHandler_Handle_ApplicationNotFound(t *testing.T) {
	ctx := t.Context()
	applicationID := kernel.NewUUID()
	cmd, err := commands.NewResubmitApplicationCommand(
		applicationID, testBusinessInfo(t), testDocuments(t))
	require.NoError(t, err)

	appRepo := new(MockSubmitApplicationRepository)
	uow := new(MockSubmitUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, applicationID).
			Return(nil, errs.NewObjectNotFoundError("application", applicationID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockSubmitUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewResubmitApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}
