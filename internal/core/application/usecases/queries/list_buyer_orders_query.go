package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListBuyerOrdersQueryIsNotConstructed = errors.New(
		"ListBuyerOrdersQuery must be created via NewListBuyerOrdersQuery constructor",
	)
)

// ListBuyerOrdersQuery pages through a buyer's orders, newest first.
type ListBuyerOrdersQuery struct { //nolint:recvcheck //using for validation
	buyerID kernel.UUID
	caller  order.Actor
	page    ports.ListOptions

	guard guard.ConstructorGuard
}

// NewListBuyerOrdersQuery normalizes the page: a non-positive limit becomes
// ports.DefaultListLimit and larger limits are capped at ports.MaxListLimit.
func NewListBuyerOrdersQuery(
	buyerID kernel.UUID,
	caller order.Actor,
	page ports.ListOptions,
) (ListBuyerOrdersQuery, error) {
	if err := errors.Join(validateID("buyer id", buyerID), validateCaller(caller)); err != nil {
		return ListBuyerOrdersQuery{}, err
	}
	return ListBuyerOrdersQuery{
		buyerID: buyerID,
		caller:  caller,
		page:    page.Normalized(),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q ListBuyerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListBuyerOrdersQueryIsNotConstructed)
}

func (q ListBuyerOrdersQuery) BuyerID() kernel.UUID {
	return q.buyerID
}

func (q ListBuyerOrdersQuery) Caller() order.Actor {
	return q.caller
}

func (q ListBuyerOrdersQuery) Page() ports.ListOptions {
	return q.page
}
