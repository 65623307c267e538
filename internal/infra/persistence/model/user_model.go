// Package model contains the GORM persistence models mirroring the database
// tables. They are mapped to and from pure domain entities at the
// repository boundary.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. Customer and vendor accounts share
// the table; the vendor-only columns stay empty for customers.
type UserModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Email          string    `gorm:"type:varchar(255);unique;not null"`
	Name           string    `gorm:"type:varchar(100);not null"`
	Phone          string    `gorm:"type:varchar(32)"`
	Location       string    `gorm:"type:varchar(255)"`
	Role           string    `gorm:"type:varchar(16);not null"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	RestaurantName string    `gorm:"type:varchar(100)"`
	BusinessID     string    `gorm:"type:varchar(64)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
