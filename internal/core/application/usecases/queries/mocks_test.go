package queries_test

import (
	"context"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderReader struct{ mock.Mock }

func (m *MockOrderReader) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderReader) ListByBuyer(
	ctx context.Context,
	buyerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	args := m.Called(ctx, buyerID, opts)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) ListBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID, opts)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

func (m *MockOrderReader) ListActiveBySeller(
	ctx context.Context,
	sellerID kernel.UUID,
	opts ports.ListOptions,
) ([]*order.Order, error) {
	args := m.Called(ctx, sellerID, opts)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

var testNow = time.Date(2025, 4, 2, 15, 30, 0, 0, time.UTC)

type parties struct {
	buyer    order.Actor
	seller   order.Actor
	admin    order.Actor
	stranger order.Actor
}

func newParties(t *testing.T) parties {
	t.Helper()
	actor := func(role order.Role) order.Actor {
		a, err := order.NewActor(kernel.NewUUID(), role)
		require.NoError(t, err)
		return a
	}
	return parties{
		buyer:    actor(order.RoleBuyer),
		seller:   actor(order.RoleSeller),
		admin:    actor(order.RoleAdmin),
		stranger: actor(order.RoleBuyer),
	}
}

// deliveredOrder returns an order between p.buyer and p.seller awaiting review.
func deliveredOrder(t *testing.T, p parties) *order.Order {
	t.Helper()
	pkg, err := order.NewPackage("Premium", 5, 3, kernel.MustMoney(25000))
	require.NoError(t, err)
	policy, err := order.NewFeePolicy(decimal.RequireFromString("0.05"), decimal.RequireFromString("0.20"))
	require.NoError(t, err)
	pricing, err := policy.Price(pkg)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), p.buyer.ID(), p.seller.ID(), pkg, pricing, "Drone shots", testNow)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid(pricing.TotalCharged(), testNow))
	require.NoError(t, o.Deliver(p.seller, "Cut 1", []string{"media/cut-1.mp4"}, testNow))
	return o
}
