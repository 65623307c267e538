package repository

import (
	"context"

	"mealhub/internal/domain/entity"
	"mealhub/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when an order is not found.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository defines the interface for order-related database
// operations. Orders are never deleted; the only mutation after creation is
// the status update.
type OrderRepository interface {
	// Create persists a new order.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order by its unique ID, resolving the referenced
	// meal, customer and vendor.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindByCustomer retrieves all orders placed by a customer, most recent
	// first, resolving related meal and vendor detail.
	FindByCustomer(ctx context.Context, customerID uuid.UUID) ([]*entity.Order, error)

	// FindByVendor retrieves all orders addressed to a vendor, most recent
	// first, resolving related meal and customer detail.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Order, error)

	// UpdateStatus sets the status of an order. Returns ErrOrderNotFound when
	// the ID does not resolve.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error
}
