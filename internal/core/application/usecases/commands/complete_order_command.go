package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand is an admin completing an accepted order ahead of its
// deferred completion, or resolving a dispute in the seller's favour.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	note    string

	guard guard.ConstructorGuard
}

func NewCompleteOrderCommand(orderID kernel.UUID, actor order.Actor, note string) (CompleteOrderCommand, error) {
	cmd := CompleteOrderCommand{note: note, guard: guard.NewConstructorGuard()}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setActor(actor)); err != nil {
		return CompleteOrderCommand{}, err
	}
	return cmd, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CompleteOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c CompleteOrderCommand) Note() string {
	return c.note
}

func (c *CompleteOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CompleteOrderCommand) setActor(actor order.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
