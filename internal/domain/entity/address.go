// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AddressType categorizes a delivery address.
type AddressType string

const (
	// AddressHome marks a residential address.
	AddressHome AddressType = "HOME"
	// AddressWork marks a workplace address.
	AddressWork AddressType = "WORK"
	// AddressOther marks any other kind of address.
	AddressOther AddressType = "OTHER"
)

// IsValid checks if the AddressType is a valid value.
func (t AddressType) IsValid() bool {
	switch t {
	case AddressHome, AddressWork, AddressOther:
		return true
	default:
		return false
	}
}

// Address is a delivery address owned by a user.
// Invariant: at most one address per user has IsPrimary set.
type Address struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Phone       string
	HouseNo     string
	Street      string
	Landmark    string
	City        string
	State       string
	Country     string
	Pincode     string
	AddressType AddressType
	IsPrimary   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
