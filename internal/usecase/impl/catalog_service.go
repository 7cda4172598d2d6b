package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/domain/entity"
	domainerrors "ayurfresh/internal/domain/errors"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/domain/service"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	txManager   repository.TransactionManager
	productRepo repository.ProductRepository
	imageStore  service.ImageStore
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for catalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	ProductRepo repository.ProductRepository
	ImageStore  service.ImageStore
	Logger      *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		txManager:   params.TxManager,
		productRepo: params.ProductRepo,
		imageStore:  params.ImageStore,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct stores a new product. Images are uploaded to blob storage
// before the database transaction so a storage failure never leaves a
// product row pointing at missing objects.
func (srv *catalogService) CreateProduct(ctx context.Context, adminID uuid.UUID, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.String("name", input.Name), slog.Any("adminID", adminID))

	now := time.Now()
	product := &entity.Product{
		Name:         input.Name,
		Slug:         entity.ProductSlug(input.Name, now),
		Description:  input.Description,
		Price:        input.Price,
		OfferType:    input.OfferType,
		OfferValue:   input.OfferValue,
		OfferedPrice: entity.OfferedPrice(input.Price, input.OfferType, input.OfferValue),
		Stocks:       input.Stocks,
		Contents:     input.Contents,
		DealTypes:    input.DealTypes,
		CategoryID:   input.CategoryID,
		CreatedByID:  adminID,
		CreatedAt:    now,
	}

	images, err := srv.uploadImages(ctx, product.Slug, input.Images)
	if err != nil {
		return nil, err
	}
	product.Images = images

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, findErr := repoFactory.CategoryRepo().FindByID(ctx, input.CategoryID); findErr != nil {
			if errors.Is(findErr, repository.ErrCategoryNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "category not found")
			}

			return errors.Wrap(findErr, "failed to check category")
		}

		return errors.Wrap(repoFactory.ProductRepo().Create(ctx, product), "failed to create product")
	})

	if err != nil {
		srv.log(ctx).Error("Failed to create product", slog.String("name", input.Name), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product create transaction")
	}

	srv.log(ctx).Debug("Product created", slog.Any("productID", product.ID), slog.String("slug", product.Slug))

	return product, nil
}

// UpdateProduct applies non-nil fields and recomputes the offered price when
// anything feeding it changed.
func (srv *catalogService) UpdateProduct(ctx context.Context, productID uuid.UUID, input *usecase.UpdateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Updating product", slog.Any("productID", productID))

	var newImages []*entity.ProductImage
	var updated *entity.Product
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		productRepo := repoFactory.ProductRepo()

		product, findErr := productRepo.FindByID(ctx, productID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrProductNotFound) {
				return errors.Wrap(domainerrors.ErrNotFound, "product not found")
			}

			return errors.Wrap(findErr, "failed to load product")
		}

		if input.CategoryID != nil {
			if _, catErr := repoFactory.CategoryRepo().FindByID(ctx, *input.CategoryID); catErr != nil {
				if errors.Is(catErr, repository.ErrCategoryNotFound) {
					return errors.Wrap(domainerrors.ErrNotFound, "category not found")
				}

				return errors.Wrap(catErr, "failed to check category")
			}
			product.CategoryID = *input.CategoryID
		}

		applyProductUpdate(product, input)
		product.OfferedPrice = entity.OfferedPrice(product.Price, product.OfferType, product.OfferValue)

		if updateErr := productRepo.Update(ctx, product); updateErr != nil {
			return errors.Wrap(updateErr, "failed to update product")
		}

		if len(input.Images) > 0 {
			uploaded, uploadErr := srv.uploadImages(ctx, product.Slug, input.Images)
			if uploadErr != nil {
				return uploadErr
			}
			newImages = uploaded

			if replaceErr := productRepo.ReplaceImages(ctx, product.ID, uploaded); replaceErr != nil {
				return errors.Wrap(replaceErr, "failed to replace product images")
			}
			product.Images = uploaded
		}
		updated = product

		return nil
	})

	if err != nil {
		srv.log(ctx).Warn("Failed to update product", slog.Any("productID", productID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute product update transaction")
	}

	if len(newImages) > 0 {
		srv.log(ctx).Debug("Product images replaced", slog.Any("productID", productID), slog.Int("count", len(newImages)))
	}

	return updated, nil
}

// DeleteProduct removes a product and its images.
func (srv *catalogService) DeleteProduct(ctx context.Context, productID uuid.UUID) error {
	srv.log(ctx).Info("Deleting product", slog.Any("productID", productID))

	if err := srv.productRepo.Delete(ctx, productID); err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	return nil
}

// GetProduct fetches one product by slug.
func (srv *catalogService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := srv.productRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotFound, "product not found")
		}
		srv.log(ctx).Error("Failed to load product", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load product")
	}

	return product, nil
}

// ListProducts returns one filtered page of the catalog.
func (srv *catalogService) ListProducts(ctx context.Context, input *usecase.ListProductsInput) (*usecase.ProductListOutput, error) {
	params := repository.ProductListParams{
		ListParams: repository.ListParams{
			Page:    input.Page,
			PerPage: input.PerPage,
			Search:  input.Search,
		},
		CategoryID: input.CategoryID,
		DealType:   input.DealType,
	}

	products, total, err := srv.productRepo.List(ctx, params)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	return &usecase.ProductListOutput{
		Products: products,
		Total:    total,
		Page:     page,
		PerPage:  params.Limit(),
	}, nil
}

// uploadImages pushes product images to blob storage and builds image rows.
// The first image is flagged primary.
func (srv *catalogService) uploadImages(ctx context.Context, slug string, uploads []service.ImageUpload) ([]*entity.ProductImage, error) {
	if len(uploads) == 0 {
		return nil, nil
	}

	urls, err := srv.imageStore.Store(ctx, fmt.Sprintf("products/%s", slug), uploads)
	if err != nil {
		srv.log(ctx).Error("Failed to upload product images", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to upload product images")
	}

	images := make([]*entity.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, &entity.ProductImage{
			URL:       url,
			IsPrimary: i == 0,
			Position:  i,
		})
	}

	return images, nil
}

func applyProductUpdate(product *entity.Product, input *usecase.UpdateProductInput) {
	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.Description != nil {
		product.Description = *input.Description
	}
	if input.Price != nil {
		product.Price = *input.Price
	}
	if input.ClearOffer {
		product.OfferType = nil
		product.OfferValue = nil
	} else {
		if input.OfferType != nil {
			product.OfferType = input.OfferType
		}
		if input.OfferValue != nil {
			product.OfferValue = input.OfferValue
		}
	}
	if input.Stocks != nil {
		product.Stocks = *input.Stocks
	}
	if input.Contents != nil {
		product.Contents = input.Contents
	}
	if input.DealTypes != nil {
		product.DealTypes = input.DealTypes
	}
}
