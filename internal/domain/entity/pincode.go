// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ServiceablePincode is an area the store delivers to. Pincode is unique.
type ServiceablePincode struct {
	ID             uuid.UUID
	Pincode        string
	City           string
	State          string
	DeliveryDays   int
	DeliveryCharge float64
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// PincodeArea is one post-office area resolved from the public postal
// directory during address autofill.
type PincodeArea struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	DeliveryStatus string `json:"delivery_status"`
	District       string `json:"district"`
	State          string `json:"state"`
	Country        string `json:"country"`
	Block          string `json:"block"`
	Region         string `json:"region"`
}
