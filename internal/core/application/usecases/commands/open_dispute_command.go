package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrOpenDisputeCommandIsNotConstructed = errors.New(
	"OpenDisputeCommand must be created via NewOpenDisputeCommand constructor",
)

// OpenDisputeCommand escalates an order to an admin.
type OpenDisputeCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	reason  string

	guard guard.ConstructorGuard
}

func NewOpenDisputeCommand(orderID kernel.UUID, actor order.Actor, reason string) (OpenDisputeCommand, error) {
	cmd := OpenDisputeCommand{reason: reason, guard: guard.NewConstructorGuard()}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setActor(actor)); err != nil {
		return OpenDisputeCommand{}, err
	}
	return cmd, nil
}

func (c OpenDisputeCommand) Validate() error {
	return c.guard.Validate(ErrOpenDisputeCommandIsNotConstructed)
}

func (c OpenDisputeCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c OpenDisputeCommand) Actor() order.Actor {
	return c.actor
}

func (c OpenDisputeCommand) Reason() string {
	return c.reason
}

func (c *OpenDisputeCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *OpenDisputeCommand) setActor(actor order.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
