package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrMarkOrderPaidCommandIsNotConstructed = errors.New(
	"MarkOrderPaidCommand must be created via NewMarkOrderPaidCommand constructor",
)

// MarkOrderPaidCommand carries the payment collaborator's "payment completed"
// signal for one order.
type MarkOrderPaidCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	amount  kernel.Money

	guard guard.ConstructorGuard
}

func NewMarkOrderPaidCommand(orderID kernel.UUID, amount kernel.Money) (MarkOrderPaidCommand, error) {
	cmd := MarkOrderPaidCommand{amount: amount, guard: guard.NewConstructorGuard()}
	if err := cmd.setOrderID(orderID); err != nil {
		return MarkOrderPaidCommand{}, err
	}
	return cmd, nil
}

func (c MarkOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderPaidCommandIsNotConstructed)
}

func (c MarkOrderPaidCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Amount is the amount the payment provider captured.
func (c MarkOrderPaidCommand) Amount() kernel.Money {
	return c.amount
}

func (c *MarkOrderPaidCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
