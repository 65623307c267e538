package repository

import (
	"context"

	"mealhub/internal/domain/entity"
	"mealhub/internal/errors"

	"github.com/google/uuid"
)

// ErrMealNotFound is returned when a meal is not found.
var ErrMealNotFound = errors.New("meal not found")

// MealRepository defines the interface for meal-related database operations.
type MealRepository interface {
	// Create persists a new meal listing.
	Create(ctx context.Context, meal *entity.Meal) error

	// FindByID retrieves a meal by its unique ID, resolving the owning vendor.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Meal, error)

	// FindAll retrieves all meal listings, newest first.
	FindAll(ctx context.Context) ([]*entity.Meal, error)

	// FindByVendor retrieves all meals owned by a specific vendor, newest first.
	FindByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error)

	// Update persists changes to an existing meal listing. The vendor ID of
	// a meal is immutable and must never be rewritten by an update.
	Update(ctx context.Context, meal *entity.Meal) error

	// Delete removes a meal listing by its ID.
	Delete(ctx context.Context, id uuid.UUID) error
}
