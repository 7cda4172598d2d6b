package model

import (
	"time"

	"github.com/google/uuid"
)

// ServiceablePincodeModel mirrors the 'serviceable_pincodes' table.
type ServiceablePincodeModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Pincode        string    `gorm:"type:varchar(6);unique;not null"`
	City           string    `gorm:"type:varchar(100);not null"`
	State          string    `gorm:"type:varchar(100);not null"`
	DeliveryDays   int       `gorm:"not null;default:1"`
	DeliveryCharge float64   `gorm:"type:decimal(10,2);not null;default:0"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (ServiceablePincodeModel) TableName() string {
	return "serviceable_pincodes"
}
