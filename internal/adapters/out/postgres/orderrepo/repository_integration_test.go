package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"grocery/internal/adapters/out/postgres/orderrepo"
	"grocery/internal/core/domain/model/kernel"
	"grocery/internal/core/domain/model/order"
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

// OrderRepositoryIntegrationTestSuite provides integration tests for
// GormOrderRepository using PostgreSQL containers to verify persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.LineItemDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_line_items").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Once()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	suite.assertOrderCount(1)
	suite.assertLineItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_ExistingOrder_RoundTripsSnapshot() {
	ctx := context.Background()

	original := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(original.CustomerID(), retrieved.CustomerID())
	suite.Equal(original.BusinessID(), retrieved.BusinessID())
	suite.Equal("14 Elm Street", retrieved.Address().Street())
	suite.Equal("Springfield", retrieved.Address().City())
	suite.Equal(order.Pending, retrieved.Status())
	suite.Equal(order.Cash, retrieved.Method())
	suite.Nil(retrieved.Rider())
	suite.Equal(original.Total().Cents(), retrieved.Total().Cents())
	suite.Require().Len(retrieved.Items(), 2)
	suite.Equal("Whole milk 1L", retrieved.Items()[0].Name())
	suite.Equal(2, retrieved.Items()[0].Quantity())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AssignRider_PersistsTransition() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	riderID := kernel.NewUUID()
	suite.Require().NoError(testOrder.AssignRider(riderID))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(order.Assigned, retrieved.Status())
	suite.Require().NotNil(retrieved.Rider())
	suite.Equal(riderID, *retrieved.Rider())
	suite.Equal(testOrder.Version()+1, retrieved.Version())

	// Line items are a write-once snapshot; updates must not touch them.
	suite.assertLineItemCount(2)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersion_ReturnsVersionConflict() {
	ctx := context.Background()

	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), mock.Anything).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	// First writer wins; the row version moves past the loaded one.
	suite.Require().NoError(testOrder.AssignRider(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Update(ctx, testOrder))

	// The same aggregate still carries the old version, so the second
	// conditional write matches zero rows.
	err := suite.repository.Update(ctx, testOrder)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsVersionConflict() {
	ctx := context.Background()

	missing := suite.createTestOrder()

	err := suite.repository.Update(ctx, missing)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrVersionIsInvalid)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByBusiness_FiltersByBusiness() {
	ctx := context.Background()

	businessID := kernel.NewUUID()
	first := suite.createTestOrderForBusiness(businessID)
	second := suite.createTestOrderForBusiness(businessID)
	other := suite.createTestOrderForBusiness(kernel.NewUUID())

	suite.tracker.On("TrackAggregate", mock.AnythingOfType("kernel.UUID"), mock.Anything).Times(3)
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	orders, err := suite.repository.GetAllByBusiness(ctx, businessID)
	suite.Require().NoError(err)

	suite.Len(orders, 2)
	for _, o := range orders {
		suite.Equal(businessID, o.BusinessID())
	}

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAllByBusiness_NoOrders_ReturnsEmptySlice() {
	ctx := context.Background()

	orders, err := suite.repository.GetAllByBusiness(ctx, kernel.NewUUID())
	suite.Require().NoError(err)

	suite.Empty(orders)
	suite.tracker.AssertExpectations(suite.T())
}

// createTestOrder creates a pending cash order with two line items.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderForBusiness(kernel.NewUUID())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderForBusiness(
	businessID kernel.UUID,
) *order.Order {
	address, err := order.NewAddress("14 Elm Street", "Springfield", "ring twice")
	suite.Require().NoError(err)

	milkPrice, err := kernel.NewMoney(149)
	suite.Require().NoError(err)
	milk, err := order.NewLineItem(kernel.NewUUID(), "Whole milk 1L", milkPrice, 2)
	suite.Require().NoError(err)

	breadPrice, err := kernel.NewMoney(200)
	suite.Require().NoError(err)
	bread, err := order.NewLineItem(kernel.NewUUID(), "Sourdough loaf", breadPrice, 1)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), businessID,
		address, []order.LineItem{milk, bread}, order.Cash)
	suite.Require().NoError(err)

	return testOrder
}

// assertOrderCount verifies the number of orders in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertOrderCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.OrderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

// assertLineItemCount verifies the number of line item rows in the database.
func (suite *OrderRepositoryIntegrationTestSuite) assertLineItemCount(expected int) {
	var count int64
	err := suite.db.Model(&orderrepo.LineItemDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
