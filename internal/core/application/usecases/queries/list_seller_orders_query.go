package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/guard"
)

var (
	ErrListSellerOrdersQueryIsNotConstructed = errors.New(
		"ListSellerOrdersQuery must be created via NewListSellerOrdersQuery constructor",
	)
)

// ListSellerOrdersQuery pages through a seller's orders, newest first. With
// activeOnly it returns only the seller's workload: orders in progress,
// delivered or sent back for revision.
type ListSellerOrdersQuery struct { //nolint:recvcheck //using for validation
	sellerID   kernel.UUID
	caller     order.Actor
	activeOnly bool
	page       ports.ListOptions

	guard guard.ConstructorGuard
}

func NewListSellerOrdersQuery(
	sellerID kernel.UUID,
	caller order.Actor,
	activeOnly bool,
	page ports.ListOptions,
) (ListSellerOrdersQuery, error) {
	if err := errors.Join(validateID("seller id", sellerID), validateCaller(caller)); err != nil {
		return ListSellerOrdersQuery{}, err
	}
	return ListSellerOrdersQuery{
		sellerID:   sellerID,
		caller:     caller,
		activeOnly: activeOnly,
		page:       page.Normalized(),
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (q ListSellerOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListSellerOrdersQueryIsNotConstructed)
}

func (q ListSellerOrdersQuery) SellerID() kernel.UUID {
	return q.sellerID
}

func (q ListSellerOrdersQuery) Caller() order.Actor {
	return q.caller
}

func (q ListSellerOrdersQuery) ActiveOnly() bool {
	return q.activeOnly
}

func (q ListSellerOrdersQuery) Page() ports.ListOptions {
	return q.page
}
