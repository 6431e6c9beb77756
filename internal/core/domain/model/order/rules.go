package order

import "slices"

// transitions maps a source status to its reachable targets and, per target,
// the roles allowed to request it. A missing entry means no transition.
// The table is never written after package initialisation.
var transitions = map[Status]map[Status][]Role{
	Pending: {
		InProgress: {RoleSystem},
		Cancelled:  {RoleBuyer, RoleSeller, RoleAdmin},
	},
	InProgress: {
		Delivered: {RoleSeller},
		Cancelled: {RoleBuyer, RoleSeller, RoleAdmin},
		Disputed:  {RoleBuyer, RoleSeller},
	},
	Delivered: {
		RevisionRequested: {RoleBuyer},
		Accepted:          {RoleBuyer},
		Cancelled:         {RoleAdmin},
		Disputed:          {RoleBuyer, RoleSeller},
	},
	RevisionRequested: {
		Delivered: {RoleSeller},
		Cancelled: {RoleAdmin},
		Disputed:  {RoleBuyer, RoleSeller},
	},
	Accepted: {
		Completed: {RoleSystem, RoleAdmin},
		Disputed:  {RoleBuyer, RoleSeller},
	},
	Completed: {
		Disputed: {RoleBuyer, RoleSeller, RoleAdmin},
	},
	Disputed: {
		Completed: {RoleAdmin},
		Cancelled: {RoleAdmin},
	},
}

// IsValidTransition reports whether role may move an order from one status to another.
//
// A same-status request is always valid and is treated by the aggregate as a no-op.
// Otherwise to must be a mapped target of from and role must be listed for it,
// except that an admin may request any mapped target.
//
// Example:
//
//	order.IsValidTransition(order.Delivered, order.Accepted, order.RoleBuyer)  // true
//	order.IsValidTransition(order.Delivered, order.Accepted, order.RoleSeller) // false
//	order.IsValidTransition(order.Delivered, order.Accepted, order.RoleAdmin)  // true (override)
//	order.IsValidTransition(order.Cancelled, order.Cancelled, order.RoleBuyer) // true (no-op)
func IsValidTransition(from, to Status, role Role) bool {
	if from == to {
		return true
	}

	roles, ok := transitions[from][to]
	if !ok {
		return false
	}
	if role == RoleAdmin {
		return true
	}
	return slices.Contains(roles, role)
}

// ValidNextStates returns the statuses role may move an order in from to,
// in lifecycle order. An admin sees every mapped target. The result never
// includes from itself.
func ValidNextStates(from Status, role Role) []Status {
	next := make([]Status, 0, len(transitions[from]))
	for to := range transitions[from] {
		if IsValidTransition(from, to, role) {
			next = append(next, to)
		}
	}
	slices.Sort(next)
	return next
}
