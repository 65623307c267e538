// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"mealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateOrderInput defines the data required to place a new order.
// Quantity is validated at the request boundary; the engine assumes a
// positive integer.
type CreateOrderInput struct {
	MealID   uuid.UUID
	Quantity int
}

// OrderUsecase is the order lifecycle engine: it enforces who may create,
// view and transition an order, computes derived order state, and
// coordinates email notifications around state transitions.
type OrderUsecase interface {
	// Create places a new order for the acting customer against a meal.
	// The total price is frozen at creation time and invoice emails go to
	// both the customer and the vendor after the write succeeds.
	Create(ctx context.Context, actor entity.Actor, input CreateOrderInput) (*entity.Order, error)

	// List returns all orders in which the actor participates, as customer
	// or vendor depending on the actor's role, most recent first.
	List(ctx context.Context, actor entity.Actor) ([]*entity.Order, error)

	// Get returns a single order, provided the actor is its customer or its
	// vendor.
	Get(ctx context.Context, actor entity.Actor, orderID uuid.UUID) (*entity.Order, error)

	// UpdateStatus is the sole transition entry point of the order state
	// machine. Transition-specific notification emails fire after the
	// status write succeeds.
	UpdateStatus(ctx context.Context, actor entity.Actor, orderID uuid.UUID, target entity.OrderStatus) (*entity.Order, error)
}
