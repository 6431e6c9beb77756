package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrRequestRevisionCommandIsNotConstructed = errors.New(
	"RequestRevisionCommand must be created via NewRequestRevisionCommand constructor",
)

// RequestRevisionCommand is the buyer sending a delivery back with instructions.
type RequestRevisionCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	actor        order.Actor
	instructions string

	guard guard.ConstructorGuard
}

func NewRequestRevisionCommand(orderID kernel.UUID, actor order.Actor, instructions string) (RequestRevisionCommand, error) {
	cmd := RequestRevisionCommand{instructions: instructions, guard: guard.NewConstructorGuard()}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setActor(actor)); err != nil {
		return RequestRevisionCommand{}, err
	}
	return cmd, nil
}

func (c RequestRevisionCommand) Validate() error {
	return c.guard.Validate(ErrRequestRevisionCommandIsNotConstructed)
}

func (c RequestRevisionCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RequestRevisionCommand) Actor() order.Actor {
	return c.actor
}

func (c RequestRevisionCommand) Instructions() string {
	return c.instructions
}

func (c *RequestRevisionCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RequestRevisionCommand) setActor(actor order.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
