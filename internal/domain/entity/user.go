// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core account entity. A user owns zero or more addresses,
// at most one cart, one verification record and one preference record.
type User struct {
	ID           uuid.UUID
	Name         string
	Email        string  // Unique login identifier.
	PhoneNumber  *string // Unique when present; users may register without a phone.
	PasswordHash string
	Role         Role
	Verification *Verification
	Preference   *Preference
	Addresses    []*Address
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Preference holds per-user notification settings.
type Preference struct {
	UserID               uuid.UUID
	NotifyProductUpdates bool
	UpdatedAt            time.Time
}
