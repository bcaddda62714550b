package commands_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/core/application/usecases/commands"
	"grocery/internal/core/domain/model/business"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/outbox"
	"grocery/internal/core/ports"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockReviewApplicationRepository struct{ mock.Mock }

func (m *MockReviewApplicationRepository) Add(ctx context.Context, a *businessapp.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockReviewApplicationRepository) Update(ctx context.Context, a *businessapp.Application) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *MockReviewApplicationRepository) Get(ctx context.Context, id kernel.UUID) (*businessapp.Application, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*businessapp.Application), args.Error(1)
}

func (m *MockReviewApplicationRepository) GetAllByApplicant(
	ctx context.Context, applicantID kernel.UUID,
) ([]*businessapp.Application, error) {
	args := m.Called(ctx, applicantID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*businessapp.Application), args.Error(1)
}

type MockReviewBusinessRepository struct{ mock.Mock }

func (m *MockReviewBusinessRepository) Add(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockReviewBusinessRepository) Update(ctx context.Context, b *business.Business) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockReviewBusinessRepository) Get(ctx context.Context, id kernel.UUID) (*business.Business, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Business), args.Error(1)
}

func (m *MockReviewBusinessRepository) GetAllByVendor(
	ctx context.Context, vendorID kernel.UUID,
) ([]*business.Business, error) {
	args := m.Called(ctx, vendorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*business.Business), args.Error(1)
}

type MockReviewOutboxRepository struct{ mock.Mock }

func (m *MockReviewOutboxRepository) Add(ctx context.Context, message *outbox.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockReviewOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]*outbox.Message, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*outbox.Message), args.Error(1)
}

func (m *MockReviewOutboxRepository) MarkPublished(ctx context.Context, messages []*outbox.Message) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

type MockReviewUoW struct{ mock.Mock }

func (m *MockReviewUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockReviewUoW) ApplicationRepository() ports.ApplicationRepository {
	args := m.Called()
	return args.Get(0).(ports.ApplicationRepository)
}

func (m *MockReviewUoW) BusinessRepository() ports.BusinessRepository {
	args := m.Called()
	return args.Get(0).(ports.BusinessRepository)
}

func (m *MockReviewUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockReviewUoWFactory struct{ mock.Mock }

func (m *MockReviewUoWFactory) Create() commands.ReviewUoW {
	args := m.Called()
	return args.Get(0).(commands.ReviewUoW)
}

func testPendingApplication(t *testing.T) *businessapp.Application {
	t.Helper()
	app, err := businessapp.NewApplication(
		kernel.NewUUID(), kernel.NewUUID(), testBusinessInfo(t), testDocuments(t),
		time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	return app
}

func TestApproveApplicationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	app := testPendingApplication(t)
	cmd, err := commands.NewApproveApplicationCommand(app.ID(), kernel.NewUUID(), "documents verified")
	require.NoError(t, err)

	appRepo := new(MockReviewApplicationRepository)
	businessRepo := new(MockReviewBusinessRepository)
	outboxRepo := new(MockReviewOutboxRepository)
	uow := new(MockReviewUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, app.ID()).Return(app, nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Add", ctx, mock.AnythingOfType("*business.Business")).Return(nil).Once(),
		appRepo.On("Update", ctx, mock.AnythingOfType("*businessapp.Application")).Return(nil).Once(),
		uow.On("OutboxRepository").Return(outboxRepo).Once(),
		outboxRepo.On("Add", ctx, mock.AnythingOfType("*outbox.Message")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, businessapp.Approved, app.Status())
	require.NotNil(t, app.BusinessID())

	// The created business belongs to the applicant and matches the submission.
	addCall := businessRepo.Calls[0]
	created := addCall.Arguments[1].(*business.Business)
	assert.Equal(t, app.ApplicantID(), created.VendorID())
	assert.Equal(t, "Corner Grocer", created.Name())
	assert.Equal(t, *app.BusinessID(), created.ID())

	// The approval notification goes to the applicant.
	messageCall := outboxRepo.Calls[0]
	message := messageCall.Arguments[1].(*outbox.Message)
	assert.Equal(t, outbox.KindApplicationApproved, message.Kind())
	assert.Equal(t, app.ApplicantID(), message.RecipientID())

	appRepo.AssertExpectations(t)
	businessRepo.AssertExpectations(t)
	outboxRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestApproveApplicationCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.ApproveApplicationCommand{} // not constructed properly

	factory := new(MockReviewUoWFactory)
	handler := commands.NewApproveApplicationCommandHandler(factory)
	err := handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrApproveApplicationCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestApproveApplicationCommandHandler_Handle_ApplicationNotFound(t *testing.T) {
	ctx := t.Context()
	applicationID := kernel.NewUUID()
	cmd, err := commands.NewApproveApplicationCommand(applicationID, kernel.NewUUID(), "")
	require.NoError(t, err)

	appRepo := new(MockReviewApplicationRepository)
	uow := new(MockReviewUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, applicationID).
			Return(nil, errs.NewObjectNotFoundError("application", applicationID)).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApproveApplicationCommandHandler_Handle_AlreadyReviewed(t *testing.T) {
	ctx := t.Context()
	app := testPendingApplication(t)
	require.NoError(t, app.Reject(kernel.NewUUID(), "blurry license scan", "", time.Now()))

	cmd, err := commands.NewApproveApplicationCommand(app.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	appRepo := new(MockReviewApplicationRepository)
	uow := new(MockReviewUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, app.ID()).Return(app, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Rejected is not a valid status to approve")
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestApproveApplicationCommandHandler_Handle_UpdateConflict(t *testing.T) {
	ctx := t.Context()
	app := testPendingApplication(t)
	cmd, err := commands.NewApproveApplicationCommand(app.ID(), kernel.NewUUID(), "")
	require.NoError(t, err)

	appRepo := new(MockReviewApplicationRepository)
	businessRepo := new(MockReviewBusinessRepository)
	uow := new(MockReviewUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ApplicationRepository").Return(appRepo).Once(),
		appRepo.On("Get", ctx, app.ID()).Return(app, nil).Once(),
		uow.On("BusinessRepository").Return(businessRepo).Once(),
		businessRepo.On("Add", ctx, mock.AnythingOfType("*business.Business")).Return(nil).Once(),
		appRepo.On("Update", ctx, mock.AnythingOfType("*businessapp.Application")).
			Return(errs.NewVersionIsInvalidErrorWithCause("application version")).
			Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockReviewUoWFactory)
	factory.On("Create").Return(uow).Once()

	handler := commands.NewApproveApplicationCommandHandler(factory)
	err = handler.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	uow.AssertNotCalled(t, "Commit", ctx)
}
