package commands

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand is the buyer's checkout: a new order for a package of a seller.
// The package terms are a snapshot taken by the caller from the catalog.
//
// Example:
//
//	pkg, _ := order.NewPackage("Standard", 3, 2, kernel.MustMoney(10000))
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), buyerID, sellerID, pkg, "Wedding highlights, 3 min")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory, clock, feePolicy)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	buyerID      kernel.UUID
	sellerID     kernel.UUID
	pkg          order.Package
	requirements string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the checkout request.
func NewCreateOrderCommand(
	orderID, buyerID, sellerID kernel.UUID,
	pkg order.Package,
	requirements string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		requirements: strings.TrimSpace(requirements),
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setParties(buyerID, sellerID),
		cmd.setPackage(pkg),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

func (c CreateOrderCommand) Package() order.Package {
	return c.pkg
}

func (c CreateOrderCommand) Requirements() string {
	return c.requirements
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := validateOrderID(orderID); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setParties(buyerID, sellerID kernel.UUID) error {
	if err := errors.Join(
		wrapRequired("buyer id", buyerID.Validate()),
		wrapRequired("seller id", sellerID.Validate()),
	); err != nil {
		return err
	}
	c.buyerID = buyerID
	c.sellerID = sellerID
	return nil
}

func (c *CreateOrderCommand) setPackage(pkg order.Package) error {
	if pkg.Name() == "" {
		return errs.NewValueIsRequiredError("package")
	}
	c.pkg = pkg
	return nil
}

func wrapRequired(param string, err error) error {
	if err == nil {
		return nil
	}
	return errs.NewValueIsRequiredErrorWithCause(param, err)
}
