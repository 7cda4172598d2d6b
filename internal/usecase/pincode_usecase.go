package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// CreatePincodeInput registers one serviceable pincode.
type CreatePincodeInput struct {
	Pincode        string  `json:"pincode" validate:"required,len=6,numeric"`
	City           string  `json:"city" validate:"required"`
	State          string  `json:"state" validate:"required"`
	DeliveryDays   int     `json:"delivery_days" validate:"required,min=1"`
	DeliveryCharge float64 `json:"delivery_charge" validate:"gte=0"`
}

// UpdatePincodeInput adjusts delivery terms for a serviceable pincode.
type UpdatePincodeInput struct {
	City           *string  `json:"city" validate:"omitempty,min=1"`
	State          *string  `json:"state" validate:"omitempty,min=1"`
	DeliveryDays   *int     `json:"delivery_days" validate:"omitempty,min=1"`
	DeliveryCharge *float64 `json:"delivery_charge" validate:"omitempty,gte=0"`
}

// ServiceabilityOutput answers a public delivery check.
type ServiceabilityOutput struct {
	Serviceable    bool    `json:"serviceable"`
	City           string  `json:"city,omitempty"`
	State          string  `json:"state,omitempty"`
	DeliveryDays   int     `json:"delivery_days,omitempty"`
	DeliveryCharge float64 `json:"delivery_charge,omitempty"`
}

// PincodeUsecase maintains the set of pincodes the store delivers to.
// Checks are public; management is admin-only.
type PincodeUsecase interface {
	// CheckServiceability reports whether delivery covers the pincode. An
	// unknown pincode is a negative answer, not an error.
	CheckServiceability(ctx context.Context, pincode string) (*ServiceabilityOutput, error)

	CreatePincode(ctx context.Context, input *CreatePincodeInput) (*entity.ServiceablePincode, error)
	UpdatePincode(ctx context.Context, pincodeID uuid.UUID, input *UpdatePincodeInput) (*entity.ServiceablePincode, error)
	DeletePincode(ctx context.Context, pincodeID uuid.UUID) error
	ListPincodes(ctx context.Context) ([]*entity.ServiceablePincode, error)
}
