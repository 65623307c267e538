package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. VendorID duplicates the meal's
// vendor at creation time and TotalPrice is the frozen creation-time price;
// neither column is ever rewritten.
type OrderModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key"`
	MealID     uuid.UUID `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index"`
	VendorID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity   int       `gorm:"not null"`
	TotalPrice float64   `gorm:"not null"`
	Status     string    `gorm:"type:varchar(16);not null;default:'ORDERED'"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Meal     *MealModel `gorm:"foreignKey:MealID"`
	Customer *UserModel `gorm:"foreignKey:CustomerID"`
	Vendor   *UserModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}
