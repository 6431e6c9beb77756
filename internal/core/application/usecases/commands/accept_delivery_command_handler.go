package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// AcceptDeliveryCommandHandler accepts a delivery and schedules the deferred
// completion: the order records a completion due time completionDelay after
// acceptance, and the completion sweep completes it once due unless the order
// left the accepted state in between.
type AcceptDeliveryCommandHandler struct {
	mutator         orderMutator
	completionDelay time.Duration
}

func NewAcceptDeliveryCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
	completionDelay time.Duration,
) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		mutator:         orderMutator{uowFactory: uowFactory, clock: clock},
		completionDelay: completionDelay,
	}
}

func (h AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.AcceptDelivery(cmd.Actor(), cmd.Feedback(), now, h.completionDelay)
	})
}
