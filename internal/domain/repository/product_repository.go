package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ProductListParams narrows and paginates catalog listings.
type ProductListParams struct {
	ListParams
	CategoryID *uuid.UUID
	DealType   *entity.DealType
}

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	// Create persists a new product together with its images.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product with its images.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a product by its unique slug, with images.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// List retrieves a page of products with images, newest first, and the
	// total match count.
	List(ctx context.Context, params ProductListParams) ([]*entity.Product, int64, error)

	// Update saves product fields (not images).
	Update(ctx context.Context, product *entity.Product) error

	// ReplaceImages swaps the product's image set atomically.
	ReplaceImages(ctx context.Context, productID uuid.UUID, images []*entity.ProductImage) error

	// Delete removes a product and its images. Returns ErrProductNotFound
	// when no row was deleted.
	Delete(ctx context.Context, id uuid.UUID) error
}
