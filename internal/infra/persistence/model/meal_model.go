package model

import (
	"time"

	"github.com/google/uuid"
)

// MealModel mirrors the 'meals' table. Categories are stored as a JSONB
// array through GORM's JSON serializer.
type MealModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	VendorID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(100);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"not null"`
	ImageURL    string    `gorm:"type:varchar(512)"`
	Categories  []string  `gorm:"serializer:json;type:jsonb"`
	StockStatus string    `gorm:"type:varchar(16);not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Vendor *UserModel `gorm:"foreignKey:VendorID"`
}

// TableName explicitly sets the table name for GORM.
func (MealModel) TableName() string {
	return "meals"
}
