package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrAcceptDeliveryCommandIsNotConstructed = errors.New(
	"AcceptDeliveryCommand must be created via NewAcceptDeliveryCommand constructor",
)

// AcceptDeliveryCommand is the buyer accepting the current delivery.
type AcceptDeliveryCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	actor    order.Actor
	feedback string

	guard guard.ConstructorGuard
}

func NewAcceptDeliveryCommand(orderID kernel.UUID, actor order.Actor, feedback string) (AcceptDeliveryCommand, error) {
	cmd := AcceptDeliveryCommand{feedback: feedback, guard: guard.NewConstructorGuard()}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setActor(actor)); err != nil {
		return AcceptDeliveryCommand{}, err
	}
	return cmd, nil
}

func (c AcceptDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAcceptDeliveryCommandIsNotConstructed)
}

func (c AcceptDeliveryCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AcceptDeliveryCommand) Actor() order.Actor {
	return c.actor
}

// Feedback is the buyer's optional comment, kept on the order.
func (c AcceptDeliveryCommand) Feedback() string {
	return c.feedback
}

func (c *AcceptDeliveryCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AcceptDeliveryCommand) setActor(actor order.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
