package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

// DeliverOrderCommand is the seller submitting work for an order.
//
// Example:
//
//	cmd, err := NewDeliverOrderCommand(orderID, seller, "final cut", []string{"media/final.mp4"})
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // caller is not the seller of this order
//	}
type DeliverOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   order.Actor
	message string
	files   []string

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand validates identifiers only; the content rules of a
// delivery are enforced by the order.
func NewDeliverOrderCommand(
	orderID kernel.UUID,
	actor order.Actor,
	message string,
	files []string,
) (DeliverOrderCommand, error) {
	cmd := DeliverOrderCommand{
		message: message,
		files:   append([]string(nil), files...),
		guard:   guard.NewConstructorGuard(),
	}
	if err := errors.Join(cmd.setOrderID(orderID), cmd.setActor(actor)); err != nil {
		return DeliverOrderCommand{}, err
	}
	return cmd, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}

func (c DeliverOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeliverOrderCommand) Actor() order.Actor {
	return c.actor
}

func (c DeliverOrderCommand) Message() string {
	return c.message
}

func (c DeliverOrderCommand) Files() []string {
	return append([]string(nil), c.files...)
}

func (c *DeliverOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *DeliverOrderCommand) setActor(actor order.Actor) error {
	if err := validateActor(actor); err != nil {
		return err
	}
	c.actor = actor
	return nil
}
