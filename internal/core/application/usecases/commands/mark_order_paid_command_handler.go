package commands

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// MarkOrderPaidCommandHandler moves a pending order to in_progress as the
// system actor once payment is confirmed.
type MarkOrderPaidCommandHandler struct {
	mutator orderMutator
}

func NewMarkOrderPaidCommandHandler(uowFactory OrderUoWFactory, clock kernel.Clock) MarkOrderPaidCommandHandler {
	return MarkOrderPaidCommandHandler{mutator: orderMutator{uowFactory: uowFactory, clock: clock}}
}

// Handle is idempotent: a repeated signal for an order already in progress succeeds.
func (h MarkOrderPaidCommandHandler) Handle(ctx context.Context, cmd MarkOrderPaidCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return h.mutator.mutate(ctx, cmd.OrderID(), func(o *order.Order, now time.Time) error {
		return o.MarkPaid(cmd.Amount(), now)
	})
}
