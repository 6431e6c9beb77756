package queries

import (
	"context"

	"marketplace/internal/core/ports"
)

type ListBuyerOrdersQueryHandler struct {
	reader ports.OrderReader
}

func NewListBuyerOrdersQueryHandler(reader ports.OrderReader) ListBuyerOrdersQueryHandler {
	return ListBuyerOrdersQueryHandler{reader: reader}
}

// Handle returns the buyer's orders. Only the buyer and admins may list them.
func (h ListBuyerOrdersQueryHandler) Handle(ctx context.Context, query ListBuyerOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := authorizeListing(query.Caller(), query.BuyerID(), "buyer "+query.BuyerID().String()); err != nil {
		return nil, err
	}

	orders, err := h.reader.ListByBuyer(ctx, query.BuyerID(), query.Page())
	if err != nil {
		return nil, err
	}
	return newOrderResponses(orders), nil
}
