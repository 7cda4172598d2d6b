package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/repository"

	"github.com/google/uuid"
)

// CreateReviewInput rates a product. A user holds one review per product, so
// submitting again replaces the earlier rating and comment.
type CreateReviewInput struct {
	ProductSlug string `json:"product_slug" validate:"required"`
	Rating      int    `json:"rating" validate:"required,min=1,max=5"`
	Comment     string `json:"comment" validate:"omitempty,max=1000"`
}

// UpdateReviewInput edits the caller's own review.
type UpdateReviewInput struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=1,max=5"`
	Comment *string `json:"comment" validate:"omitempty,max=1000"`
}

// ReviewListOutput is one page of reviews for a product.
type ReviewListOutput struct {
	Reviews []*entity.Review `json:"reviews"`
	Total   int64            `json:"total"`
	Page    int              `json:"page"`
	PerPage int              `json:"per_page"`
}

// ReviewUsecase manages product reviews. A user holds at most one review per
// product; a second create for the same pair overwrites the existing review.
// Updates and deletes are owner-only except admins may delete any review.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, userID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	UpdateReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, userID uuid.UUID, isAdmin bool, reviewID uuid.UUID) error
	ListProductReviews(ctx context.Context, productSlug string, params repository.ListParams) (*ReviewListOutput, error)
}
