package usecase

import (
	"context"

	"mealhub/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateMealInput defines the data required to create a meal listing.
type CreateMealInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Categories  []entity.MealCategory
	StockStatus entity.StockStatus
}

// UpdateMealInput defines the data required to update a meal listing. The
// vendor ID of a listing is immutable and intentionally absent here.
type UpdateMealInput struct {
	Name        string
	Description string
	Price       float64
	ImageURL    string
	Categories  []entity.MealCategory
	StockStatus entity.StockStatus
}

// MealUsecase defines the business operations on the meal catalog. Every
// mutation consults the authorization policy before touching persistence.
type MealUsecase interface {
	// Create adds a new listing owned by the acting vendor.
	Create(ctx context.Context, actor entity.Actor, input CreateMealInput) (*entity.Meal, error)

	// Update modifies an existing listing owned by the acting vendor.
	Update(ctx context.Context, actor entity.Actor, mealID uuid.UUID, input UpdateMealInput) (*entity.Meal, error)

	// Delete removes a listing owned by the acting vendor.
	Delete(ctx context.Context, actor entity.Actor, mealID uuid.UUID) error

	// Get returns a single listing. No authentication required.
	Get(ctx context.Context, mealID uuid.UUID) (*entity.Meal, error)

	// List returns all listings, newest first. No authentication required.
	List(ctx context.Context) ([]*entity.Meal, error)

	// ListByVendor returns all listings owned by a vendor, newest first.
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]*entity.Meal, error)
}
