package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrGetAvailableActionsQueryIsNotConstructed = errors.New(
		"GetAvailableActionsQuery must be created via NewGetAvailableActionsQuery constructor",
	)
)

// GetAvailableActionsQuery asks which operations the caller may invoke on an
// order right now.
type GetAvailableActionsQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	caller  order.Actor

	guard guard.ConstructorGuard
}

func NewGetAvailableActionsQuery(orderID kernel.UUID, caller order.Actor) (GetAvailableActionsQuery, error) {
	if err := errors.Join(validateID("order id", orderID), validateCaller(caller)); err != nil {
		return GetAvailableActionsQuery{}, err
	}
	return GetAvailableActionsQuery{orderID: orderID, caller: caller, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAvailableActionsQuery) Validate() error {
	return q.guard.Validate(ErrGetAvailableActionsQueryIsNotConstructed)
}

func (q GetAvailableActionsQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetAvailableActionsQuery) Caller() order.Actor {
	return q.caller
}

// GetAvailableActionsQueryResponse is the caller's role on the order and the
// actions open to it. Actions is empty, never nil, for terminal orders.
type GetAvailableActionsQueryResponse struct {
	OrderID kernel.UUID
	Status  order.Status
	Role    order.Role
	Actions []order.Action
}
