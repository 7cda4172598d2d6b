package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrPincodeNotFound is returned when a serviceable pincode is not found.
var ErrPincodeNotFound = errors.New("serviceable pincode not found")

// PincodeRepository defines the interface for serviceable pincode persistence.
type PincodeRepository interface {
	// Create persists a new serviceable pincode.
	Create(ctx context.Context, pincode *entity.ServiceablePincode) error

	// FindByID retrieves a serviceable pincode by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ServiceablePincode, error)

	// FindByPincode retrieves the record for an exact pincode value.
	FindByPincode(ctx context.Context, pincode string) (*entity.ServiceablePincode, error)

	// List retrieves a page of serviceable pincodes, newest first, and the
	// total match count. Search filters on the pincode value.
	List(ctx context.Context, params ListParams) ([]*entity.ServiceablePincode, int64, error)

	// Update saves an existing record.
	Update(ctx context.Context, pincode *entity.ServiceablePincode) error

	// Delete removes a record by ID. Returns ErrPincodeNotFound when no row
	// was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
