package order

import "slices"

// Action names an operation a caller can invoke on an order.
type Action string

const (
	ActionMarkPaid        Action = "mark_paid"
	ActionDeliver         Action = "deliver"
	ActionAccept          Action = "accept"
	ActionRequestRevision Action = "request_revision"
	ActionCancel          Action = "cancel"
	ActionOpenDispute     Action = "open_dispute"
	ActionComplete        Action = "complete"
)

// actionByTarget maps the status an operation moves to onto the operation.
var actionByTarget = map[Status]Action{
	InProgress:        ActionMarkPaid,
	Delivered:         ActionDeliver,
	RevisionRequested: ActionRequestRevision,
	Accepted:          ActionAccept,
	Cancelled:         ActionCancel,
	Disputed:          ActionOpenDispute,
	Completed:         ActionComplete,
}

// actionRoles lists the roles an operation can be invoked in. It narrows the
// admin override of the rule engine: deliver and accept stay with the parties.
// Payment signals come from the payment system or an admin.
var actionRoles = map[Action][]Role{
	ActionMarkPaid:        {RoleSystem, RoleAdmin},
	ActionDeliver:         {RoleSeller},
	ActionAccept:          {RoleBuyer},
	ActionRequestRevision: {RoleBuyer},
	ActionCancel:          {RoleBuyer, RoleSeller, RoleAdmin},
	ActionOpenDispute:     {RoleBuyer, RoleSeller, RoleAdmin},
	ActionComplete:        {RoleAdmin, RoleSystem},
}

// TargetOf returns the status the action moves an order to.
func (a Action) TargetOf() (Status, bool) {
	for status, action := range actionByTarget {
		if action == a {
			return status, true
		}
	}
	return Unknown, false
}

// AvailableActions lists, in lifecycle order of their target, the operations
// role may invoke on an order currently in status.
func AvailableActions(status Status, role Role) []Action {
	next := ValidNextStates(status, role)
	actions := make([]Action, 0, len(next))
	for _, to := range next {
		action := actionByTarget[to]
		if slices.Contains(actionRoles[action], role) {
			actions = append(actions, action)
		}
	}
	return actions
}
