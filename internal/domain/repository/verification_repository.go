package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrVerificationNotFound is returned when a user has no verification record.
var ErrVerificationNotFound = errors.New("verification record not found")

// VerificationRepository defines persistence operations for per-user
// verification state (email tokens, phone OTPs, password-reset tokens).
type VerificationRepository interface {
	// FindByUserID retrieves the verification record for a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Verification, error)

	// Create persists a new verification record.
	Create(ctx context.Context, verification *entity.Verification) error

	// Update saves the full verification record. Token/OTP fields and their
	// expiries are persisted exactly as set on the entity, so callers clear
	// or replace them together.
	Update(ctx context.Context, verification *entity.Verification) error
}
