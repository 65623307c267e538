package entity

import (
	"time"

	"github.com/google/uuid"
)

// OrderStatus is the lifecycle state of an order. The intended progression
// is ORDERED -> PROCESSING -> DELIVERED.
type OrderStatus string

const (
	// StatusOrdered is the initial status of every order.
	StatusOrdered OrderStatus = "ORDERED"
	// StatusProcessing means the vendor has started preparing the order.
	StatusProcessing OrderStatus = "PROCESSING"
	// StatusDelivered means the order reached the customer.
	StatusDelivered OrderStatus = "DELIVERED"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case StatusOrdered, StatusProcessing, StatusDelivered:
		return true
	default:
		return false
	}
}

// Order is the central entity of the lifecycle engine. VendorID is
// denormalized from the meal at creation time and TotalPrice is frozen at
// creation; neither is ever recomputed, even if the meal changes later.
type Order struct {
	ID         uuid.UUID
	MealID     uuid.UUID
	CustomerID uuid.UUID
	VendorID   uuid.UUID // Always equals the meal's vendor at creation time.
	Quantity   int       // Positive integer, validated at the request boundary.
	TotalPrice float64   // Meal price at creation time multiplied by quantity.
	Status     OrderStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Resolved relations, populated by the persistence layer or the
	// lifecycle engine for the caller to render.
	Meal     *Meal
	Customer *User
	Vendor   *User
}
