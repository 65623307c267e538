// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role an account can have in the system.
// A role is fixed at account creation and never changes afterwards.
type Role string

const (
	// RoleCustomer indicates an account that browses meals and places orders.
	RoleCustomer Role = "CUSTOMER"
	// RoleVendor indicates an account that lists meals and fulfils orders.
	RoleVendor Role = "VENDOR"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleCustomer, RoleVendor:
		return true
	default:
		return false
	}
}
