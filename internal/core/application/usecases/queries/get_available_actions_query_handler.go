package queries

import (
	"context"

	"marketplace/internal/core/domain/services"
	"marketplace/internal/core/ports"
)

// GetAvailableActionsQueryHandler derives the caller's role from the order and
// delegates to the rule engine for the legal next steps.
//
// Example:
//
//	handler := NewGetAvailableActionsQueryHandler(reader)
//	resp, err := handler.Handle(ctx, query)
//	// resp.Role == order.RoleBuyer, resp.Actions == [accept request_revision open_dispute]
type GetAvailableActionsQueryHandler struct {
	reader   ports.OrderReader
	resolver services.ActionResolver
}

func NewGetAvailableActionsQueryHandler(reader ports.OrderReader) GetAvailableActionsQueryHandler {
	return GetAvailableActionsQueryHandler{reader: reader, resolver: services.NewActionResolver()}
}

func (h GetAvailableActionsQueryHandler) Handle(
	ctx context.Context,
	query GetAvailableActionsQuery,
) (GetAvailableActionsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAvailableActionsQueryResponse{}, err
	}

	o, err := h.reader.Get(ctx, query.OrderID())
	if err != nil {
		return GetAvailableActionsQueryResponse{}, err
	}

	resolution, err := h.resolver.Resolve(o, query.Caller())
	if err != nil {
		return GetAvailableActionsQueryResponse{}, err
	}

	return GetAvailableActionsQueryResponse{
		OrderID: o.ID(),
		Status:  o.Status(),
		Role:    resolution.Role,
		Actions: resolution.Actions,
	}, nil
}
