package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler attaches the seller's delivery and moves the order
// to delivered in one atomic write.
//
// Example:
//
//	handler := NewDeliverOrderCommandHandler(uowFactory, kernel.SystemClock{})
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // order does not exist
//	case errors.Is(err, errs.ErrUnauthorized):
//	    // not the seller
//	case errors.Is(err, order.ErrInvalidStateTransition):
//	    // nothing to deliver in the current status
//	}
type DeliverOrderCommandHandler struct {
	mutator orderMutator
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.Deliver(cmd.Actor(), cmd.Message(), cmd.Files(), now)
	})
}
