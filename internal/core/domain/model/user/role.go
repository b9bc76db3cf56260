package user

import (
	"ecobazaar/internal/pkg/errs"
)

// Role enumerates the access levels a user can hold.
type Role int

const (
	// RoleUnknown is the zero value and is not a valid role.
	RoleUnknown Role = iota

	// RoleBuyer can place and cancel their own orders.
	RoleBuyer

	// RoleSeller can view incoming orders and advance their status.
	RoleSeller

	// RoleAdmin has unrestricted access.
	RoleAdmin
)

// ErrInvalidRoleValue is returned when a string does not name a known role.
var ErrInvalidRoleValue = errs.NewValueIsInvalidError("role value is not recognized")

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown: "UNKNOWN",
		RoleBuyer:   "BUYER",
		RoleSeller:  "SELLER",
		RoleAdmin:   "ADMIN",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(value string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == value {
			return role, nil
		}
	}

	return RoleUnknown, ErrInvalidRoleValue
}

// String returns the wire representation of the role.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return getRoleStrings()[RoleUnknown]
}

// Validate checks that the role is one of the known values.
func (r Role) Validate() error {
	switch r {
	case RoleBuyer, RoleSeller, RoleAdmin:
		return nil
	default:
		return ErrInvalidRoleValue
	}
}
