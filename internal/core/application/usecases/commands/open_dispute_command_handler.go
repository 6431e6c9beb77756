package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OpenDisputeCommandHandler opens a dispute. A dispute on an accepted order
// cancels its pending completion.
type OpenDisputeCommandHandler struct {
	mutator orderMutator
}

func NewOpenDisputeCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) OpenDisputeCommandHandler {
	return OpenDisputeCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h OpenDisputeCommandHandler) Handle(ctx context.Context, cmd OpenDisputeCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.OpenDispute(cmd.Actor(), cmd.Reason(), now)
	})
}
