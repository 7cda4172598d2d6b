package model

import (
	"time"

	"github.com/google/uuid"
)

// EnquiryModel mirrors the 'enquiries' table.
type EnquiryModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	CompanyName   string    `gorm:"type:varchar(255);not null"`
	ContactPerson string    `gorm:"type:varchar(100);not null"`
	Email         string    `gorm:"type:varchar(255);not null"`
	Phone         string    `gorm:"type:varchar(15);not null"`
	BusinessNeed  string    `gorm:"type:text;not null"`
	Responded     bool      `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (EnquiryModel) TableName() string {
	return "enquiries"
}
