package services_test

import (
	"slices"
	"testing"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/domain/services"
	"marketplace/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDeliveredOrder(t *testing.T, buyer, seller order.Actor) *order.Order {
	t.Helper()
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	pkg, err := order.NewPackage("Basic", 2, 1, kernel.MustMoney(4000))
	require.NoError(t, err)
	policy, err := order.NewFeePolicy(decimal.Zero, decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	pricing, err := policy.Price(pkg)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), buyer.ID(), seller.ID(), pkg, pricing, "", now)
	require.NoError(t, err)
	require.NoError(t, o.MarkPaid(pricing.TotalCharged(), now))
	require.NoError(t, o.Deliver(seller, "cut", nil, now))
	return o
}

func mustActor(t *testing.T, role order.Role) order.Actor {
	t.Helper()
	a, err := order.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return a
}

func TestActionResolver_Resolve(t *testing.T) {
	buyer := mustActor(t, order.RoleBuyer)
	seller := mustActor(t, order.RoleSeller)
	o := newDeliveredOrder(t, buyer, seller)
	resolver := services.NewActionResolver()

	t.Run("buyer", func(t *testing.T) {
		res, err := resolver.Resolve(o, buyer)

		require.NoError(t, err)
		assert.Equal(t, order.RoleBuyer, res.Role)
		assert.Equal(t, []order.Action{order.ActionRequestRevision, order.ActionAccept, order.ActionOpenDispute}, res.Actions)
	})

	t.Run("seller by identity whatever the declared role", func(t *testing.T) {
		declaredBuyer, err := order.NewActor(seller.ID(), order.RoleBuyer)
		require.NoError(t, err)

		res, err := resolver.Resolve(o, declaredBuyer)

		require.NoError(t, err)
		assert.Equal(t, order.RoleSeller, res.Role)
		assert.Equal(t, []order.Action{order.ActionOpenDispute}, res.Actions)
	})

	t.Run("admin", func(t *testing.T) {
		res, err := resolver.Resolve(o, mustActor(t, order.RoleAdmin))

		require.NoError(t, err)
		assert.Equal(t, order.RoleAdmin, res.Role)
		assert.Equal(t, []order.Action{order.ActionCancel, order.ActionOpenDispute}, res.Actions)
	})

	t.Run("stranger", func(t *testing.T) {
		_, err := resolver.Resolve(o, mustActor(t, order.RoleBuyer))

		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("unconstructed order", func(t *testing.T) {
		_, err := resolver.Resolve(&order.Order{}, buyer)

		assert.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}

type consistencyParties struct {
	buyer  order.Actor
	seller order.Actor
}

func orderInStatus(t *testing.T, p consistencyParties, status order.Status, now time.Time) *order.Order {
	t.Helper()

	pkg, err := order.NewPackage("Basic", 2, 1, kernel.MustMoney(4000))
	require.NoError(t, err)
	policy, err := order.NewFeePolicy(decimal.RequireFromString("0.05"), decimal.RequireFromString("0.1"))
	require.NoError(t, err)
	pricing, err := policy.Price(pkg)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), p.buyer.ID(), p.seller.ID(), pkg, pricing, "", now)
	require.NoError(t, err)

	pay := func() error { return o.MarkPaid(pricing.TotalCharged(), now) }
	deliver := func() error { return o.Deliver(p.seller, "cut", nil, now) }
	accept := func() error { return o.AcceptDelivery(p.buyer, "", now, 0) }

	var steps []func() error
	switch status {
	case order.Pending:
	case order.Cancelled:
		steps = append(steps, func() error { return o.Cancel(p.buyer, "", now) })
	case order.InProgress:
		steps = append(steps, pay)
	case order.Disputed:
		steps = append(steps, pay, func() error { return o.OpenDispute(p.buyer, "", now) })
	case order.Delivered:
		steps = append(steps, pay, deliver)
	case order.RevisionRequested:
		steps = append(steps, pay, deliver, func() error { return o.RequestRevision(p.buyer, "shorter", now) })
	case order.Accepted:
		steps = append(steps, pay, deliver, accept)
	case order.Completed:
		steps = append(steps, pay, deliver, accept, func() error { return o.CompleteAfterAcceptance(now) })
	}

	for _, step := range steps {
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	return o
}

// invokeAction runs the operation behind action the way the application layer
// does; the system completes orders through the deferred completion.
func invokeAction(o *order.Order, action order.Action, caller order.Actor, now time.Time) error {
	switch action {
	case order.ActionMarkPaid:
		return o.MarkPaid(o.Pricing().TotalCharged(), now)
	case order.ActionDeliver:
		return o.Deliver(caller, "cut", nil, now)
	case order.ActionAccept:
		return o.AcceptDelivery(caller, "", now, 0)
	case order.ActionRequestRevision:
		return o.RequestRevision(caller, "shorter", now)
	case order.ActionCancel:
		return o.Cancel(caller, "", now)
	case order.ActionOpenDispute:
		return o.OpenDispute(caller, "", now)
	case order.ActionComplete:
		if caller.IsSystem() {
			return o.CompleteAfterAcceptance(now)
		}
		return o.Complete(caller, "", now)
	default:
		return nil
	}
}

func TestActionResolver_ActionsMatchOperations(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	p := consistencyParties{buyer: mustActor(t, order.RoleBuyer), seller: mustActor(t, order.RoleSeller)}
	buyerAsSeller, err := order.NewActor(p.buyer.ID(), order.RoleSeller)
	require.NoError(t, err)
	sellerAsBuyer, err := order.NewActor(p.seller.ID(), order.RoleBuyer)
	require.NoError(t, err)

	callers := map[string]order.Actor{
		"buyer":                       p.buyer,
		"seller":                      p.seller,
		"buyer declaring seller role": buyerAsSeller,
		"seller declaring buyer role": sellerAsBuyer,
		"admin":                       mustActor(t, order.RoleAdmin),
		"system":                      order.SystemActor(),
	}
	statuses := []order.Status{
		order.Pending, order.InProgress, order.Delivered, order.RevisionRequested,
		order.Accepted, order.Completed, order.Cancelled, order.Disputed,
	}
	allActions := []order.Action{
		order.ActionMarkPaid, order.ActionDeliver, order.ActionAccept, order.ActionRequestRevision,
		order.ActionCancel, order.ActionOpenDispute, order.ActionComplete,
	}
	resolver := services.NewActionResolver()

	for name, caller := range callers {
		for _, status := range statuses {
			t.Run(name+"/"+status.String(), func(t *testing.T) {
				res, err := resolver.Resolve(orderInStatus(t, p, status, now), caller)
				require.NoError(t, err)

				for _, action := range allActions {
					target, ok := action.TargetOf()
					require.True(t, ok)

					err := invokeAction(orderInStatus(t, p, status, now), action, caller, now)

					switch {
					case slices.Contains(res.Actions, action):
						assert.NoError(t, err, "offered %s rejected", action)
					case target == status:
						// same-status requests are no-ops
					case action == order.ActionMarkPaid:
						// payment signals are authorized by the transport
					default:
						assert.Error(t, err, "%s not offered but accepted", action)
					}
				}
			})
		}
	}
}
