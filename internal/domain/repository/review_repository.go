package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrReviewNotFound is returned when a review is not found.
var ErrReviewNotFound = errors.New("review not found")

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	// Create persists a new review.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// FindByUserAndProduct retrieves the unique review a user left on a
	// product, if any.
	FindByUserAndProduct(ctx context.Context, userID, productID uuid.UUID) (*entity.Review, error)

	// ListByProduct retrieves a page of reviews for a product, newest
	// first, with the reviewing user preloaded, and the total match count.
	// Search filters on the comment text.
	ListByProduct(ctx context.Context, productID uuid.UUID, params ListParams) ([]*entity.Review, int64, error)

	// Update saves an existing review.
	Update(ctx context.Context, review *entity.Review) error

	// Delete removes a review by ID. Returns ErrReviewNotFound when no row
	// was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
