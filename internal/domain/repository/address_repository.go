package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrAddressNotFound is returned when an address is not found.
var ErrAddressNotFound = errors.New("address not found")

// AddressRepository defines the interface for address-related database operations.
type AddressRepository interface {
	// Create persists a new address for a user.
	Create(ctx context.Context, address *entity.Address) error

	// FindByID retrieves an address by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Address, error)

	// FindByUser retrieves all addresses for a user, primary first, then
	// most recently updated.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Address, error)

	// FindLatestByUser retrieves the user's most recently created address.
	// Returns ErrAddressNotFound when the user has no addresses.
	FindLatestByUser(ctx context.Context, userID uuid.UUID) (*entity.Address, error)

	// CountByUser returns the number of addresses a user owns.
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// ClearPrimary resets is_primary on all of a user's addresses.
	ClearPrimary(ctx context.Context, userID uuid.UUID) error

	// Update saves an existing address record.
	Update(ctx context.Context, address *entity.Address) error

	// Delete removes an address by its ID. Returns ErrAddressNotFound when
	// no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
