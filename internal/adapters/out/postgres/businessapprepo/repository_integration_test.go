package businessapprepo_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/businessapprepo"
	"grocery/internal/core/domain/model/businessapp"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ApplicationRepositoryIntegrationTestSuite provides integration tests for
// GormApplicationRepository using PostgreSQL containers.
type ApplicationRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *businessapprepo.GormApplicationRepository
	tracker    *MockAggregateTracker
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&businessapprepo.ApplicationDTO{}))
}

func (suite *ApplicationRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE business_applications").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = businessapprepo.NewGormApplicationRepository(suite.db, suite.tracker)
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestAdd_ValidApplication_Success() {
	ctx := context.Background()

	app := suite.createTestApplication(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", app.ID(), app).Once()

	err := suite.repository.Add(ctx, app)
	suite.Require().NoError(err)

	suite.assertApplicationCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestGet_ExistingApplication_RoundTripsDocuments() {
	ctx := context.Background()

	original := suite.createTestApplication(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.ApplicantID(), retrieved.ApplicantID())
	suite.Equal("Green Basket", retrieved.Info().Name())
	suite.Equal(businessapp.Pending, retrieved.Status())
	suite.Equal("doc://license", retrieved.Documents().License())

	// The photo list survives the JSON column round trip in order.
	suite.Equal(
		[]string{"doc://storefront-1", "doc://storefront-2"},
		retrieved.Documents().StorefrontPhotos())

	suite.WithinDuration(original.SubmittedAt(), retrieved.SubmittedAt(), time.Second)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestGet_NonExistentApplication_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestUpdate_Approval_PersistsReviewStamps() {
	ctx := context.Background()

	app := suite.createTestApplication(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", app.ID(), app).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, app))

	reviewerID := kernel.NewUUID()
	businessID := kernel.NewUUID()
	reviewedAt := time.Now().UTC()
	suite.Require().NoError(app.Approve(reviewerID, businessID, "documents verified", reviewedAt))
	suite.Require().NoError(suite.repository.Update(ctx, app))

	retrieved, err := suite.repository.Get(ctx, app.ID())
	suite.Require().NoError(err)

	suite.Equal(businessapp.Approved, retrieved.Status())
	suite.Equal("documents verified", retrieved.AdminNotes())
	suite.Require().NotNil(retrieved.ReviewerID())
	suite.Equal(reviewerID, *retrieved.ReviewerID())
	suite.Require().NotNil(retrieved.BusinessID())
	suite.Equal(businessID, *retrieved.BusinessID())
	suite.Require().NotNil(retrieved.ReviewedAt())
	suite.WithinDuration(reviewedAt, *retrieved.ReviewedAt(), time.Second)
	suite.Equal(app.Version()+1, retrieved.Version())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	app := suite.createTestApplication(kernel.NewUUID())
	suite.tracker.On("TrackAggregate", app.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, app))

	// A concurrent reviewer commits first and moves the row version on.
	suite.Require().NoError(app.Approve(
		kernel.NewUUID(), kernel.NewUUID(), "", time.Now().UTC()))
	suite.Require().NoError(suite.repository.Update(ctx, app))

	// The conditional write against the old version matches zero rows.
	err := suite.repository.Update(ctx, app)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ApplicationRepositoryIntegrationTestSuite) TestGetAllByApplicant_FiltersByApplicant() {
	ctx := context.Background()

	applicantID := kernel.NewUUID()
	first := suite.createTestApplication(applicantID)
	second := suite.createTestApplication(applicantID)
	other := suite.createTestApplication(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	applications, err := suite.repository.GetAllByApplicant(ctx, applicantID)
	suite.Require().NoError(err)

	suite.Len(applications, 2)
	for _, app := range applications {
		suite.Equal(applicantID, app.ApplicantID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

// createTestApplication creates a pending application with a full document set.
func (suite *ApplicationRepositoryIntegrationTestSuite) createTestApplication(
	applicantID kernel.UUID,
) *businessapp.Application {
	info, err := businessapp.NewBusinessInfo(
		"Green Basket", "owner@greenbasket.example", "+15550100", "12 Market Street", "")
	suite.Require().NoError(err)

	docs, err := businessapp.NewDocuments(
		"doc://license", "doc://tax", "doc://owner-id", "doc://address", "doc://health",
		[]string{"doc://storefront-1", "doc://storefront-2"})
	suite.Require().NoError(err)

	app, err := businessapp.NewApplication(
		kernel.NewUUID(), applicantID, info, docs, time.Now().UTC())
	suite.Require().NoError(err)

	return app
}

// assertApplicationCount verifies the number of applications in the database.
func (suite *ApplicationRepositoryIntegrationTestSuite) assertApplicationCount(expected int) {
	var count int64
	err := suite.db.Model(&businessapprepo.ApplicationDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestApplicationRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ApplicationRepositoryIntegrationTestSuite))
}
