package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
)

// Actor is the caller of a lifecycle operation: the identity supplied by the
// authentication collaborator together with the role the caller declares.
//
// The system actor has no identity; it is used for payment signals and for
// deferred completion.
type Actor struct {
	id   kernel.UUID
	role Role
}

// NewActor validates a caller identity. Use SystemActor for the system role.
func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := errors.Join(id.Validate(), role.Validate()); err != nil {
		return Actor{}, err
	}
	return Actor{id: id, role: role}, nil
}

// SystemActor returns the identity-less actor for automated transitions.
func SystemActor() Actor {
	return Actor{role: RoleSystem}
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsSystem() bool {
	return a.role == RoleSystem
}

// as returns the same identity acting in another role.
func (a Actor) as(role Role) Actor {
	return Actor{id: a.id, role: role}
}
