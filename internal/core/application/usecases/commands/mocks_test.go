package commands_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) ListDueForCompletion(
	ctx context.Context,
	now time.Time,
	limit int,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, now, limit)
	ids, _ := args.Get(0).([]kernel.UUID)
	return ids, args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

var testNow = time.Date(2025, 3, 14, 9, 0, 0, 0, time.UTC)

func fixedClock(t time.Time) kernel.Clock {
	return kernel.ClockFunc(func() time.Time { return t })
}

func testFeePolicy(t *testing.T) order.FeePolicy {
	t.Helper()
	policy, err := order.NewFeePolicy(decimal.RequireFromString("0.05"), decimal.RequireFromString("0.20"))
	require.NoError(t, err)
	return policy
}

func testPackage(t *testing.T) order.Package {
	t.Helper()
	pkg, err := order.NewPackage("Standard", 3, 2, kernel.MustMoney(10000))
	require.NoError(t, err)
	return pkg
}

func actorOf(t *testing.T, id kernel.UUID, role order.Role) order.Actor {
	t.Helper()
	actor, err := order.NewActor(id, role)
	require.NoError(t, err)
	return actor
}

// newPaidOrder returns an order that has been persisted once and is in progress.
func newPaidOrder(t *testing.T, buyerID, sellerID kernel.UUID) *order.Order {
	t.Helper()
	pkg := testPackage(t)
	pricing, err := testFeePolicy(t).Price(pkg)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), buyerID, sellerID, pkg, pricing, "", testNow)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid(pricing.TotalCharged(), testNow))

	restored, err := order.RestoreOrder(o.Snapshot())
	require.NoError(t, err)
	return restored
}
