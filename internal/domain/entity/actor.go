package entity

import "github.com/google/uuid"

// Actor is the authenticated identity performing a request. It is produced by
// the authentication middleware and passed explicitly into every usecase call;
// business code never reads identity out of ambient request state.
type Actor struct {
	ID   uuid.UUID
	Role Role
}

// IsCustomer reports whether the actor holds the customer role.
func (a Actor) IsCustomer() bool {
	return a.Role == RoleCustomer
}

// IsVendor reports whether the actor holds the vendor role.
func (a Actor) IsVendor() bool {
	return a.Role == RoleVendor
}
