package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrRecordPaymentFailureCommandIsNotConstructed = errors.New(
	"RecordPaymentFailureCommand must be created via NewRecordPaymentFailureCommand constructor",
)

// RecordPaymentFailureCommand stores why a payment attempt for an order failed.
type RecordPaymentFailureCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	reason  string

	guard guard.ConstructorGuard
}

func NewRecordPaymentFailureCommand(orderID kernel.UUID, reason string) (RecordPaymentFailureCommand, error) {
	cmd := RecordPaymentFailureCommand{guard: guard.NewConstructorGuard()}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setReason(reason)); err != nil {
		return RecordPaymentFailureCommand{}, err
	}
	return cmd, nil
}

func (c RecordPaymentFailureCommand) Validate() error {
	return c.guard.Validate(ErrRecordPaymentFailureCommandIsNotConstructed)
}

func (c RecordPaymentFailureCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RecordPaymentFailureCommand) Reason() string {
	return c.reason
}

func (c *RecordPaymentFailureCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RecordPaymentFailureCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}
	c.reason = reason
	return nil
}
