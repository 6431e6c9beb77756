package services

import (
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"
)

// Resolution is what a caller may do with an order right now.
type Resolution struct {
	Role    order.Role
	Actions []order.Action
}

// ActionResolver answers "what can this caller do with this order" so a UI
// only offers legal actions.
//
// Role derivation:
//   - a caller declaring the admin or system role keeps it
//   - otherwise the caller is the buyer or the seller by identity
//   - anyone else is not a party and gets an UnauthorizedError
//
// Example usage:
//
//	resolver := services.NewActionResolver()
//	res, err := resolver.Resolve(o, caller)
//	if errors.Is(err, errs.ErrUnauthorized) {
//	    // "this isn't your order"
//	}
//	// res.Actions lists e.g. [accept request_revision open_dispute]
type ActionResolver struct{}

func NewActionResolver() ActionResolver {
	return ActionResolver{}
}

// RoleOf returns the role caller holds on o.
func (r ActionResolver) RoleOf(o *order.Order, caller order.Actor) (order.Role, error) {
	if err := o.Validate(); err != nil {
		return order.RoleUnknown, err
	}

	switch {
	case caller.Role() == order.RoleAdmin || caller.Role() == order.RoleSystem:
		return caller.Role(), nil
	case o.BuyerID().IsEqual(caller.ID()):
		return order.RoleBuyer, nil
	case o.SellerID().IsEqual(caller.ID()):
		return order.RoleSeller, nil
	default:
		return order.RoleUnknown, errs.NewUnauthorizedError(caller.ID().String(), "order "+o.ID().String(),
			"actor is not a party to the order")
	}
}

// Resolve returns the caller's role and the actions available to it in the
// order's current status.
func (r ActionResolver) Resolve(o *order.Order, caller order.Actor) (Resolution, error) {
	role, err := r.RoleOf(o, caller)
	if err != nil {
		return Resolution{}, err
	}
	return Resolution{Role: role, Actions: order.AvailableActions(o.Status(), role)}, nil
}
