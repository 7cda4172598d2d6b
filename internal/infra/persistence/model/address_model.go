package model

import (
	"time"

	"github.com/google/uuid"
)

// AddressModel is the GORM-specific struct for the 'addresses' table.
type AddressModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Phone       string    `gorm:"type:varchar(15);not null"`
	HouseNo     string    `gorm:"type:varchar(100);not null"`
	Street      string    `gorm:"type:varchar(255);not null"`
	Landmark    string    `gorm:"type:varchar(255)"`
	City        string    `gorm:"type:varchar(100);not null"`
	State       string    `gorm:"type:varchar(100);not null"`
	Country     string    `gorm:"type:varchar(100);not null;default:'India'"`
	Pincode     string    `gorm:"type:varchar(6);not null"`
	AddressType string    `gorm:"type:varchar(10);not null"`
	IsPrimary   bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AddressModel) TableName() string {
	return "addresses"
}
