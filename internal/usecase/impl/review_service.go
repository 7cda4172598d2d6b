package impl

import (
	"context"
	"log/slog"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager   repository.TransactionManager
	reviewRepo  repository.ReviewRepository
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ReviewRepo  repository.ReviewRepository
	ProductRepo repository.ProductRepository
	Logger      *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		txManager:   params.TxManager,
		reviewRepo:  params.ReviewRepo,
		productRepo: params.ProductRepo,
		logger:      params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview stores a user's review of a product. A second submission by
// the same user overwrites the rating and comment of the existing review.
func (srv *reviewService) CreateReview(ctx context.Context, userID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Creating review", slog.Any("userID", userID), slog.String("slug", input.ProductSlug))

	var review *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		product, findErr := repoFactory.ProductRepo().FindBySlug(ctx, input.ProductSlug)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product for review")
		}

		existing, findErr := reviewRepo.FindByUserAndProduct(ctx, userID, product.ID)
		if findErr == nil {
			existing.Rating = input.Rating
			existing.Comment = input.Comment

			if updateErr := reviewRepo.Update(ctx, existing); updateErr != nil {
				return errors.Wrap(updateErr, "failed to overwrite review")
			}
			review = existing

			return nil
		} else if !errors.Is(findErr, repository.ErrReviewNotFound) {
			return errors.Wrap(findErr, "failed to check existing review")
		}

		review = &entity.Review{
			UserID:    userID,
			ProductID: product.ID,
			Rating:    input.Rating,
			Comment:   input.Comment,
		}

		return errors.Wrap(reviewRepo.Create(ctx, review), "failed to create review")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create review", slog.String("slug", input.ProductSlug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review create transaction")
	}

	return review, nil
}

// UpdateReview edits the caller's own review.
func (srv *reviewService) UpdateReview(ctx context.Context, userID uuid.UUID, reviewID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Info("Updating review", slog.Any("userID", userID), slog.Any("reviewID", reviewID))

	var updated *entity.Review
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, findErr := reviewRepo.FindByID(ctx, reviewID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(findErr, "failed to load review")
		}

		if review.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "review not owned by user")
		}

		if input.Rating != nil {
			review.Rating = *input.Rating
		}
		if input.Comment != nil {
			review.Comment = *input.Comment
		}

		if updateErr := reviewRepo.Update(ctx, review); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update review")
		}
		updated = review

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute review update transaction")
	}

	return updated, nil
}

// DeleteReview removes a review. Owners delete their own; admins delete any.
func (srv *reviewService) DeleteReview(ctx context.Context, userID uuid.UUID, isAdmin bool, reviewID uuid.UUID) error {
	srv.log(ctx).Info("Deleting review", slog.Any("userID", userID), slog.Any("reviewID", reviewID), slog.Bool("isAdmin", isAdmin))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reviewRepo := repoFactory.ReviewRepo()

		review, findErr := reviewRepo.FindByID(ctx, reviewID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrReviewNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "review not found")
			}

			return errors.Wrap(findErr, "failed to load review")
		}

		if !isAdmin && review.UserID != userID {
			return errors.Wrap(domainerrors.ErrForbidden, "review not owned by user")
		}

		return errors.Wrap(reviewRepo.Delete(ctx, reviewID), "failed to delete review")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to delete review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute review delete transaction")
	}

	return nil
}

// ListProductReviews returns one page of a product's reviews, newest first.
func (srv *reviewService) ListProductReviews(ctx context.Context, productSlug string, params repository.ListParams) (*usecase.ReviewListOutput, error) {
	product, err := srv.productRepo.FindBySlug(ctx, productSlug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to load product for reviews", slog.String("slug", productSlug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product for reviews")
	}

	reviews, total, err := srv.reviewRepo.ListByProduct(ctx, product.ID, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews", slog.String("slug", productSlug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &usecase.ReviewListOutput{
		Reviews: reviews,
		Total:   total,
		Page:    page,
		PerPage: params.Limit(),
	}, nil
}
