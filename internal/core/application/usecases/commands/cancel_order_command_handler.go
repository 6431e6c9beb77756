package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type CancelOrderCommandHandler struct {
	mutator orderMutator
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Cancel(cmd.Actor(), cmd.Reason(), now)
	})
}
