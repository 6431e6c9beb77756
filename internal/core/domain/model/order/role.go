package order

import (
	"fmt"

	"marketplace/internal/pkg/errs"
)

// Role is the capacity in which a transition is requested.
type Role int

const (
	RoleUnknown Role = iota
	RoleBuyer
	RoleSeller
	RoleAdmin
	RoleSystem
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "unknown",
		RoleBuyer:   "buyer",
		RoleSeller:  "seller",
		RoleAdmin:   "admin",
		RoleSystem:  "system",
	}
}

// AllRoles lists every valid role.
func AllRoles() []Role {
	return []Role{RoleBuyer, RoleSeller, RoleAdmin, RoleSystem}
}

// ParseRole converts a role claim or stored value to a Role.
func ParseRole(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

func (r Role) Validate() error {
	if r <= RoleUnknown || r > RoleSystem {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
