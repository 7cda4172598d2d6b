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

// categoryService implements the CategoryUsecase interface.
type categoryService struct {
	txManager    repository.TransactionManager
	categoryRepo repository.CategoryRepository
	logger       *slog.Logger
}

// CategoryServiceParams holds dependencies for categoryService, injected by Fx.
type CategoryServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	CategoryRepo repository.CategoryRepository
	Logger       *slog.Logger
}

// NewCategoryService is the constructor for categoryService.
func NewCategoryService(params CategoryServiceParams) usecase.CategoryUsecase {
	return &categoryService{
		txManager:    params.TxManager,
		categoryRepo: params.CategoryRepo,
		logger:       params.Logger,
	}
}

func (srv *categoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateCategory stores a category after checking both name and slug are
// free.
func (srv *categoryService) CreateCategory(ctx context.Context, input *usecase.CreateCategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Creating category", slog.String("name", input.Name))

	category := &entity.Category{
		Name:        input.Name,
		Slug:        entity.Slugify(input.Name),
		Description: input.Description,
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		if conflictErr := srv.checkNameConflict(ctx, categoryRepo, category.Name, category.Slug, nil); conflictErr != nil {
			return conflictErr
		}

		return errors.Wrap(categoryRepo.Create(ctx, category), "failed to create category")
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to create category", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category create transaction")
	}

	return category, nil
}

// UpdateCategory renames or redescribes a category. A rename rederives the
// slug from the new name.
func (srv *categoryService) UpdateCategory(ctx context.Context, categoryID uuid.UUID, input *usecase.UpdateCategoryInput) (*entity.Category, error) {
	srv.log(ctx).Info("Updating category", slog.Any("categoryID", categoryID))

	var updated *entity.Category
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		categoryRepo := repoFactory.CategoryRepo()

		category, findErr := categoryRepo.FindByID(ctx, categoryID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "category not found")
			}

			return errors.Wrap(findErr, "failed to load category")
		}

		if input.Name != nil && *input.Name != category.Name {
			newSlug := entity.Slugify(*input.Name)
			if conflictErr := srv.checkNameConflict(ctx, categoryRepo, *input.Name, newSlug, &categoryID); conflictErr != nil {
				return conflictErr
			}
			category.Name = *input.Name
			category.Slug = newSlug
		}
		if input.Description != nil {
			category.Description = *input.Description
		}

		if updateErr := categoryRepo.Update(ctx, category); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update category")
		}
		updated = category

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update category", slog.Any("categoryID", categoryID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute category update transaction")
	}

	return updated, nil
}

// DeleteCategory removes a category.
func (srv *categoryService) DeleteCategory(ctx context.Context, categoryID uuid.UUID) error {
	srv.log(ctx).Info("Deleting category", slog.Any("categoryID", categoryID))

	if err := srv.categoryRepo.Delete(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "category not found")
		}
		srv.log(ctx).Error("Failed to delete category", slog.Any("categoryID", categoryID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete category")
	}

	return nil
}

// GetCategory fetches one category by slug.
func (srv *categoryService) GetCategory(ctx context.Context, slug string) (*entity.Category, error) {
	category, err := srv.categoryRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "category not found")
		}
		srv.log(ctx).Error("Failed to load category", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load category")
	}

	return category, nil
}

// ListCategories returns every category.
func (srv *categoryService) ListCategories(ctx context.Context) ([]*entity.Category, error) {
	categories, err := srv.categoryRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list categories", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list categories")
	}

	return categories, nil
}

func (srv *categoryService) checkNameConflict(ctx context.Context, categoryRepo repository.CategoryRepository, name, slug string, excludeID *uuid.UUID) error {
	existing, err := categoryRepo.FindByNameOrSlug(ctx, name, slug, excludeID)
	if err != nil {
		if errors.Is(err, repository.ErrCategoryNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to check category name")
	}
	if existing != nil {
		return errors.Wrap(domainerrors.ErrConflict, "category name already taken")
	}

	return nil
}
