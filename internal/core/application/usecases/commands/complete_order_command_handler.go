package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type CompleteOrderCommandHandler struct {
	mutator orderMutator
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Complete(cmd.Actor(), cmd.Note(), now)
	})
}
