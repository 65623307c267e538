package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// MealCategory classifies a meal listing. A meal carries between one and
// three categories.
type MealCategory string

const (
	CategoryBreakfast MealCategory = "BREAKFAST"
	CategoryLunch     MealCategory = "LUNCH"
	CategoryDinner    MealCategory = "DINNER"
	CategorySnack     MealCategory = "SNACK"
	CategoryDrink     MealCategory = "DRINK"
	CategoryDessert   MealCategory = "DESSERT"
)

// String returns the string representation of the MealCategory.
func (c MealCategory) String() string {
	return string(c)
}

// IsValid checks if the MealCategory is a valid value.
func (c MealCategory) IsValid() bool {
	switch c {
	case CategoryBreakfast, CategoryLunch, CategoryDinner,
		CategorySnack, CategoryDrink, CategoryDessert:
		return true
	default:
		return false
	}
}

// StockStatus is the point-in-time availability of a meal. It gates order
// creation but does not reserve stock.
type StockStatus string

const (
	// StockStatusInStock means the meal can currently be ordered.
	StockStatusInStock StockStatus = "IN_STOCK"
	// StockStatusOutOfStock means order creation against the meal is rejected.
	StockStatusOutOfStock StockStatus = "OUT_OF_STOCK"
)

// String returns the string representation of the StockStatus.
func (s StockStatus) String() string {
	return string(s)
}

// IsValid checks if the StockStatus is a valid value.
func (s StockStatus) IsValid() bool {
	return s == StockStatusInStock || s == StockStatusOutOfStock
}

// Meal is a vendor-owned listing. VendorID never changes after creation;
// only the owning vendor may mutate or delete the listing.
type Meal struct {
	ID          uuid.UUID
	VendorID    uuid.UUID
	Name        string
	Description string
	Price       float64 // Positive unit price, snapshotted into orders at creation time.
	ImageURL    string  // Reference to the listing image, storage is out of band.
	Categories  []MealCategory
	StockStatus StockStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Vendor *User // Resolved owning vendor, populated by the persistence layer.
}

// HasCategory reports whether the meal is listed under the given category.
func (m *Meal) HasCategory(category MealCategory) bool {
	return slices.Contains(m.Categories, category)
}

// InStock reports whether the meal can currently be ordered.
func (m *Meal) InStock() bool {
	return m.StockStatus == StockStatusInStock
}
