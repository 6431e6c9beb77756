package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// GetOrderQueryHandler returns an order to its buyer, its seller, an admin or
// the system actor. Anyone else gets an UnauthorizedError.
type GetOrderQueryHandler struct {
	reader   ports.OrderReader
	resolver services.ActionResolver
}

func NewGetOrderQueryHandler(reader ports.OrderReader) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: reader, resolver: services.NewActionResolver()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return OrderResponse{}, err
	}

	if _, err = h.resolver.RoleOf(o, query.Caller()); err != nil {
		return OrderResponse{}, err
	}

	return newOrderResponse(o), nil
}
