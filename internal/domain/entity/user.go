// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. Customers and vendors share the same
// identity shape; vendor accounts additionally carry a VendorProfile.
// The order engine only ever reads ID, Role and Email.
type User struct {
	ID            uuid.UUID      // The unique identifier for the account.
	Email         string         // Primary contact email, also the login identifier.
	Name          string         // Display name.
	Phone         string         // Contact phone number.
	Location      string         // Free-form location string.
	Role          Role           // CUSTOMER or VENDOR, immutable after creation.
	PasswordHash  string         // Bcrypt hash of the account password.
	VendorProfile *VendorProfile // Nil unless Role is RoleVendor.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// VendorProfile holds data specific to vendor accounts.
type VendorProfile struct {
	RestaurantName string // The vendor's public restaurant name.
	BusinessID     string // The vendor's registered business identifier.
}
