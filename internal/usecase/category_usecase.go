package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCategoryInput names a new category. The slug is derived from the name.
type CreateCategoryInput struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"omitempty"`
}

// UpdateCategoryInput renames or redescribes a category.
type UpdateCategoryInput struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description"`
}

// CategoryUsecase manages product categories. Names and slugs are unique;
// a create or rename that collides with either fails with a conflict.
type CategoryUsecase interface {
	CreateCategory(ctx context.Context, input *CreateCategoryInput) (*entity.Category, error)
	UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *UpdateCategoryInput) (*entity.Category, error)
	DeleteCategory(ctx context.Context, categoryID uuid.UUID) error
	GetCategory(ctx context.Context, slug string) (*entity.Category, error)
	ListCategories(ctx context.Context) ([]*entity.Category, error)
}
