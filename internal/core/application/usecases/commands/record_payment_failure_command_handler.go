package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

type RecordPaymentFailureCommandHandler struct {
	mutator orderMutator
}

func NewRecordPaymentFailureCommandHandler(
	uowFactory OrderUoWFactory,
	clock kernel.Clock,
) RecordPaymentFailureCommandHandler {
	return RecordPaymentFailureCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

func (h RecordPaymentFailureCommandHandler) Handle(ctx context.Context, cmd RecordPaymentFailureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.RecordPaymentFailure(cmd.Reason(), now)
	})
}
