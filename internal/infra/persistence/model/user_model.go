// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PhoneNumber  *string   `gorm:"type:varchar(15);unique"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null;default:'USER'"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Verification *VerificationModel `gorm:"foreignKey:UserID"`
	Preference   *PreferenceModel   `gorm:"foreignKey:UserID"`
	Addresses    []*AddressModel    `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// VerificationModel mirrors the 'verifications' table, one row per user.
type VerificationModel struct {
	UserID uuid.UUID `gorm:"type:uuid;primaryKey"`

	EmailStatus      string `gorm:"type:varchar(20);not null;default:'PENDING'"`
	EmailVerifyToken *string `gorm:"type:varchar(64)"`
	EmailVerifiedAt  *time.Time

	PhoneStatus     string  `gorm:"type:varchar(20);not null;default:'PENDING'"`
	PhoneOTP        *string `gorm:"type:varchar(10)"`
	OTPExpiry       *time.Time
	PhoneVerifiedAt *time.Time

	PasswordResetToken *string `gorm:"type:varchar(64)"`
	ResetTokenExpiry   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VerificationModel) TableName() string {
	return "verifications"
}

// PreferenceModel mirrors the 'preferences' table, one row per user.
type PreferenceModel struct {
	UserID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	NotifyProductUpdates bool      `gorm:"not null;default:true"`
	UpdatedAt            time.Time
}

// TableName explicitly sets the table name for GORM.
func (PreferenceModel) TableName() string {
	return "preferences"
}
