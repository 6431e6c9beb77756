package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

type ListSellerOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListSellerOrdersQueryHandler(reader ports.OrderReader) ListSellerOrdersQueryHandler {
	return ListSellerOrdersQueryHandler{reader: reader}
}

// Handle returns the seller's orders. Only the seller and admins may list them.
func (h ListSellerOrdersQueryHandler) Handle(ctx context.Context, query ListSellerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeListing(query.Caller(), query.SellerID(), "seller "+query.SellerID().String()); err != nil {
		return nil, err
	}

	var (
		orders []*order.Order
		err    error
	)
	if query.ActiveOnly() {
		orders, err = h.reader.ListActiveBySeller(ctx, query.SellerID(), query.Page())
	} else {
		orders, err = h.reader.ListBySeller(ctx, query.SellerID(), query.Page())
	}
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
