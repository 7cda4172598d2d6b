package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateAddressInput represents the input for adding a new address.
type CreateAddressInput struct {
	Phone       string             `json:"phone" validate:"required,len=10,numeric"`
	HouseNo     string             `json:"house_no" validate:"required"`
	Street      string             `json:"street" validate:"required"`
	Landmark    string             `json:"landmark"`
	City        string             `json:"city" validate:"required"`
	State       string             `json:"state" validate:"required"`
	Country     string             `json:"country"`
	Pincode     string             `json:"pincode" validate:"required,len=6,numeric"`
	AddressType entity.AddressType `json:"address_type" validate:"required,oneof=HOME WORK OTHER"`
	IsPrimary   bool               `json:"is_primary"`
}

// UpdateAddressInput represents a partial address update.
type UpdateAddressInput struct {
	Phone       *string             `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	HouseNo     *string             `json:"house_no,omitempty"`
	Street      *string             `json:"street,omitempty"`
	Landmark    *string             `json:"landmark,omitempty"`
	City        *string             `json:"city,omitempty"`
	State       *string             `json:"state,omitempty"`
	Country     *string             `json:"country,omitempty"`
	Pincode     *string             `json:"pincode,omitempty" validate:"omitempty,len=6,numeric"`
	AddressType *entity.AddressType `json:"address_type,omitempty" validate:"omitempty,oneof=HOME WORK OTHER"`
	IsPrimary   *bool               `json:"is_primary,omitempty"`
}

// PincodeLookupOutput is the address-autofill result for a pincode.
type PincodeLookupOutput struct {
	Pincode string               `json:"pincode"`
	Areas   []entity.PincodeArea `json:"areas"`
}

// AddressUsecase manages a user's address book under the single-primary
// invariant: at most one of a user's addresses is primary at any time, and
// every mutation touching the flag runs in one transaction.
type AddressUsecase interface {
	// List returns the user's addresses, primary first.
	List(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// Create adds an address. A user's first address is always promoted to
	// primary; otherwise the flag is honored from the input, clearing any
	// existing primary in the same transaction.
	Create(ctx context.Context, userID uuid.UUID, input *CreateAddressInput) (*entity.Address, error)

	// Update applies a partial update, clearing other primaries first when
	// the input promotes this address.
	Update(ctx context.Context, userID, addressID uuid.UUID, input *UpdateAddressInput) (*entity.Address, error)

	// SetPrimary atomically clears every primary flag for the user and
	// sets it on the target. Fails with ErrNotFound when the address does
	// not exist or is not owned by the user.
	SetPrimary(ctx context.Context, userID, addressID uuid.UUID) (*entity.Address, error)

	// Delete removes an owned address. When the deleted address was
	// primary, the most recently created remaining address is promoted;
	// a user left with no addresses has no primary.
	Delete(ctx context.Context, userID, addressID uuid.UUID) error

	// LookupPincode resolves a pincode to its post-office areas for
	// address autofill.
	LookupPincode(ctx context.Context, pincode string) (*PincodeLookupOutput, error)
}
