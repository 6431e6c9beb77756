package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate *order.Order) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for the order
// repository and reader using PostgreSQL containers.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	reader     *orderrepo.GormOrderReader
	tracker    *MockAggregateTracker
	now        time.Time
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.StatusHistoryDTO{}))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_status_history, orders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
	suite.reader = orderrepo.NewGormOrderReader(suite.db)
	suite.now = time.Date(2025, 5, 20, 10, 0, 0, 0, time.UTC)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_ValidOrder_Success() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), kernel.NewUUID(), suite.now)

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	suite.assertCount(&orderrepo.OrderDTO{}, 1)
	suite.assertCount(&orderrepo.StatusHistoryDTO{}, 1)
	suite.tracker.AssertCalled(suite.T(), "TrackAggregate", testOrder.ID(), testOrder)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsAlreadyExists() {
	ctx := context.Background()
	testOrder := suite.createTestOrder(kernel.NewUUID(), kernel.NewUUID(), suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	duplicate, err := order.RestoreOrder(testOrder.Snapshot())
	suite.Require().NoError(err)
	suite.Require().ErrorIs(suite.repository.Add(ctx, duplicate), errs.ErrObjectAlreadyExists)
	suite.assertCount(&orderrepo.OrderDTO{}, 1)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_RoundTripsTheWholeAggregate() {
	ctx := context.Background()
	buyer, seller := suite.actor(order.RoleBuyer), suite.actor(order.RoleSeller)
	testOrder := suite.createTestOrder(buyer.ID(), seller.ID(), suite.now)

	at := suite.now
	step := func() time.Time {
		at = at.Add(time.Hour)
		return at
	}
	suite.Require().NoError(testOrder.MarkPaid(testOrder.Pricing().TotalCharged(), step()))
	suite.Require().NoError(testOrder.Deliver(seller, "v1", []string{"media/v1.mp4", "media/v1.srt"}, step()))
	suite.Require().NoError(testOrder.RequestRevision(buyer, "Brighter colours", step()))
	suite.Require().NoError(testOrder.Deliver(seller, "v2", nil, step()))
	suite.Require().NoError(testOrder.AcceptDelivery(buyer, "Lovely", step(), 5*time.Second))

	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	want := testOrder.Snapshot()
	want.Version = 1
	suite.Equal(want, retrieved.Snapshot())
	suite.False(retrieved.HasChanges())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NonExistentOrder_ReturnsNotFoundError() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_AppendsHistoryWithVersionCheck() {
	ctx := context.Background()
	buyer := suite.actor(order.RoleBuyer)
	testOrder := suite.createTestOrder(buyer.ID(), kernel.NewUUID(), suite.now)
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	loaded, err := suite.repository.GetForUpdate(ctx, testOrder.ID())
	suite.Require().NoError(err)
	stale, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Require().NoError(loaded.Cancel(buyer, "No longer needed", suite.now.Add(time.Minute)))
	suite.Require().NoError(suite.repository.Update(ctx, loaded))
	loaded.AdvanceVersion()

	suite.assertCount(&orderrepo.StatusHistoryDTO{}, 2)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Cancelled, retrieved.Status())
	suite.Equal("No longer needed", retrieved.CancellationReason())
	suite.Equal(int64(2), retrieved.Version())
	suite.Len(retrieved.History(), 2)
	suite.Equal(testOrder.CreatedAt(), retrieved.CreatedAt())

	suite.Require().NoError(stale.Cancel(buyer, "", suite.now.Add(2*time.Minute)))
	suite.Require().ErrorIs(suite.repository.Update(ctx, stale), errs.ErrConcurrentModification)
	suite.assertCount(&orderrepo.StatusHistoryDTO{}, 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_NonExistentOrder_ReturnsNotFound() {
	testOrder := suite.createTestOrder(kernel.NewUUID(), kernel.NewUUID(), suite.now)
	err := suite.repository.Update(context.Background(), testOrder)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestListDueForCompletion() {
	ctx := context.Background()
	buyer, seller := suite.actor(order.RoleBuyer), suite.actor(order.RoleSeller)

	accept := func(delay time.Duration) *order.Order {
		o := suite.createTestOrder(buyer.ID(), seller.ID(), suite.now)
		suite.Require().NoError(o.MarkPaid(o.Pricing().TotalCharged(), suite.now))
		suite.Require().NoError(o.Deliver(seller, "done", nil, suite.now))
		suite.Require().NoError(o.AcceptDelivery(buyer, "", suite.now, delay))
		suite.Require().NoError(suite.repository.Add(ctx, o))
		return o
	}

	later := accept(time.Hour)
	sooner := accept(time.Minute)
	accept(24 * time.Hour)
	suite.Require().NoError(suite.repository.Add(ctx, suite.createTestOrder(buyer.ID(), seller.ID(), suite.now)))

	due, err := suite.repository.ListDueForCompletion(ctx, suite.now.Add(2*time.Hour), 10)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{sooner.ID(), later.ID()}, due)

	due, err = suite.repository.ListDueForCompletion(ctx, suite.now.Add(2*time.Hour), 1)
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{sooner.ID()}, due)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestReader_ListsNewestFirst() {
	ctx := context.Background()
	buyer, seller := suite.actor(order.RoleBuyer), suite.actor(order.RoleSeller)

	first := suite.createTestOrder(buyer.ID(), seller.ID(), suite.now)
	second := suite.createTestOrder(buyer.ID(), seller.ID(), suite.now.Add(time.Minute))
	suite.Require().NoError(second.MarkPaid(second.Pricing().TotalCharged(), suite.now.Add(time.Minute)))
	third := suite.createTestOrder(buyer.ID(), kernel.NewUUID(), suite.now.Add(2*time.Minute))
	for _, o := range []*order.Order{first, second, third} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	byBuyer, err := suite.reader.ListByBuyer(ctx, buyer.ID(), ports.ListOptions{})
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{third.ID(), second.ID(), first.ID()}, ids(byBuyer))

	page, err := suite.reader.ListByBuyer(ctx, buyer.ID(), ports.ListOptions{Limit: 1, Offset: 1})
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{second.ID()}, ids(page))

	bySeller, err := suite.reader.ListBySeller(ctx, seller.ID(), ports.ListOptions{})
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{second.ID(), first.ID()}, ids(bySeller))

	active, err := suite.reader.ListActiveBySeller(ctx, seller.ID(), ports.ListOptions{})
	suite.Require().NoError(err)
	suite.Equal([]kernel.UUID{second.ID()}, ids(active))
	suite.Len(active[0].History(), 2)

	none, err := suite.reader.ListBySeller(ctx, kernel.NewUUID(), ports.ListOptions{})
	suite.Require().NoError(err)
	suite.Empty(none)
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder(
	buyerID, sellerID kernel.UUID,
	createdAt time.Time,
) *order.Order {
	pkg, err := order.NewPackage("Standard", 3, 2, kernel.MustMoney(12345))
	suite.Require().NoError(err)
	policy, err := order.NewFeePolicy(decimal.RequireFromString("0.05"), decimal.RequireFromString("0.20"))
	suite.Require().NoError(err)
	pricing, err := policy.Price(pkg)
	suite.Require().NoError(err)

	o, err := order.NewOrder(kernel.NewUUID(), buyerID, sellerID, pkg, pricing, "Wedding teaser", createdAt)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) actor(role order.Role) order.Actor {
	a, err := order.NewActor(kernel.NewUUID(), role)
	suite.Require().NoError(err)
	return a
}

func (suite *OrderRepositoryIntegrationTestSuite) assertCount(model any, expected int64) {
	var count int64
	suite.Require().NoError(suite.db.Model(model).Count(&count).Error)
	suite.Equal(expected, count)
}

func ids(orders []*order.Order) []kernel.UUID {
	result := make([]kernel.UUID, 0, len(orders))
	for _, o := range orders {
		result = append(result, o.ID())
	}
	return result
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
