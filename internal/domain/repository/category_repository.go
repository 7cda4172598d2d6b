package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrCategoryNotFound is returned when a category is not found.
var ErrCategoryNotFound = errors.New("category not found")

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	// Create persists a new category.
	Create(ctx context.Context, category *entity.Category) error

	// FindByID retrieves a category by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Category, error)

	// FindBySlug retrieves a category by its unique slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Category, error)

	// FindByNameOrSlug retrieves any category matching the name or slug,
	// excluding excludeID when non-nil. Used for uniqueness checks.
	FindByNameOrSlug(ctx context.Context, name, slug string, excludeID *uuid.UUID) (*entity.Category, error)

	// List retrieves all categories.
	List(ctx context.Context) ([]*entity.Category, error)

	// Update saves an existing category.
	Update(ctx context.Context, category *entity.Category) error

	// Delete removes a category by ID. Returns ErrCategoryNotFound when no
	// row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
