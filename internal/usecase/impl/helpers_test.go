package impl

import (
	"io"
	"log/slog"
	"time"

	"mealhub/internal/domain/entity"

	"github.com/google/uuid"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestVendor() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "vendor@example.com",
		Name:  "Vendor",
		Role:  entity.RoleVendor,
		VendorProfile: &entity.VendorProfile{
			RestaurantName: "Test Kitchen",
			BusinessID:     "BIZ-001",
		},
	}
}

func newTestCustomer() *entity.User {
	return &entity.User{
		ID:    uuid.New(),
		Email: "customer@example.com",
		Name:  "Customer",
		Role:  entity.RoleCustomer,
	}
}

func newTestMeal(vendor *entity.User) *entity.Meal {
	now := time.Now()

	return &entity.Meal{
		ID:          uuid.New(),
		VendorID:    vendor.ID,
		Name:        "Beef Noodles",
		Description: "Braised beef noodle soup",
		Price:       10.0,
		Categories:  []entity.MealCategory{entity.CategoryLunch, entity.CategoryDinner},
		StockStatus: entity.StockStatusInStock,
		CreatedAt:   now,
		UpdatedAt:   now,
		Vendor:      vendor,
	}
}

func newTestOrder(meal *entity.Meal, customer *entity.User, vendor *entity.User) *entity.Order {
	now := time.Now()

	return &entity.Order{
		ID:         uuid.New(),
		MealID:     meal.ID,
		CustomerID: customer.ID,
		VendorID:   vendor.ID,
		Quantity:   2,
		TotalPrice: 20.0,
		Status:     entity.StatusOrdered,
		CreatedAt:  now,
		UpdatedAt:  now,
		Meal:       meal,
		Customer:   customer,
		Vendor:     vendor,
	}
}
