package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// RequestRevisionCommandHandler increments the revision counter and stores the request.
type RequestRevisionCommandHandler struct {
	mutator orderMutator
}

func NewRequestRevisionCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) RequestRevisionCommandHandler {
	return RequestRevisionCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h RequestRevisionCommandHandler) Handle(ctx context.Context, cmd RequestRevisionCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.RequestRevision(cmd.Actor(), cmd.Instructions(), now)
	})
}
