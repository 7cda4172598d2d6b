// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID, preloading the
	// verification and preference records.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByEmail retrieves a single user by their email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByPhone retrieves a single user by their phone number.
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)

	// FindByLogin retrieves a user whose email or phone number equals login.
	FindByLogin(ctx context.Context, login string) (*entity.User, error)

	// Create persists a new user together with its associated verification
	// and preference rows.
	Create(ctx context.Context, user *entity.User) error

	// Update modifies an existing user entity in the storage.
	Update(ctx context.Context, user *entity.User) error

	// ListByRole retrieves a page of users with the given role, newest
	// first, preloading addresses and verification records, and the total
	// match count. Search filters across name, email and phone.
	ListByRole(ctx context.Context, role entity.Role, params ListParams) ([]*entity.User, int64, error)
}
