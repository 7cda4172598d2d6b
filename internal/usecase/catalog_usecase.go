package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/service"

	"github.com/google/uuid"
)

// CreateProductInput carries a new product plus its uploaded images. The
// slug is derived server-side from the name, so it is not part of the input.
type CreateProductInput struct {
	Name        string                  `json:"name" validate:"required"`
	Description string                  `json:"description" validate:"required"`
	Price       float64                 `json:"price" validate:"required,gt=0"`
	OfferType   *entity.OfferType       `json:"offer_type" validate:"omitempty,oneof=PERCENTAGE PRICE_OFF"`
	OfferValue  *float64                `json:"offer_value" validate:"omitempty,gte=0,required_with=OfferType"`
	Stocks      int                     `json:"stocks" validate:"gte=0"`
	Contents    []entity.ProductContent `json:"contents" validate:"omitempty,dive"`
	DealTypes   []entity.DealType       `json:"deal_types" validate:"omitempty,dive,oneof=HOT_DEAL NEW_ARRIVAL SEASONAL COMBO"`
	CategoryID  uuid.UUID               `json:"category_id" validate:"required"`
	Images      []service.ImageUpload   `json:"-" validate:"omitempty,max=6"`
}

// UpdateProductInput updates a product in place. Nil fields are left
// untouched; offer fields are applied together so pricing stays coherent.
type UpdateProductInput struct {
	Name        *string                 `json:"name" validate:"omitempty,min=1"`
	Description *string                 `json:"description" validate:"omitempty,min=1"`
	Price       *float64                `json:"price" validate:"omitempty,gt=0"`
	OfferType   *entity.OfferType       `json:"offer_type" validate:"omitempty,oneof=PERCENTAGE PRICE_OFF"`
	OfferValue  *float64                `json:"offer_value" validate:"omitempty,gte=0"`
	ClearOffer  bool                    `json:"clear_offer"`
	Stocks      *int                    `json:"stocks" validate:"omitempty,gte=0"`
	Contents    []entity.ProductContent `json:"contents" validate:"omitempty,dive"`
	DealTypes   []entity.DealType       `json:"deal_types" validate:"omitempty,dive,oneof=HOT_DEAL NEW_ARRIVAL SEASONAL COMBO"`
	CategoryID  *uuid.UUID              `json:"category_id"`
	Images      []service.ImageUpload   `json:"-" validate:"omitempty,max=6"`
}

// ListProductsInput filters and paginates the public catalog listing.
type ListProductsInput struct {
	Page       int              `query:"page" validate:"omitempty,min=1"`
	PerPage    int              `query:"per_page" validate:"omitempty,min=1,max=100"`
	Search     string           `query:"search"`
	CategoryID *uuid.UUID       `query:"category_id"`
	DealType   *entity.DealType `query:"deal_type" validate:"omitempty,oneof=HOT_DEAL NEW_ARRIVAL SEASONAL COMBO"`
}

// ProductListOutput is one page of products with the total match count.
type ProductListOutput struct {
	Products []*entity.Product `json:"products"`
	Total    int64             `json:"total"`
	Page     int               `json:"page"`
	PerPage  int               `json:"per_page"`
}

// CatalogUsecase manages the product catalog. Mutations are admin-only at
// the delivery layer; reads are public.
type CatalogUsecase interface {
	// CreateProduct stores the product with a slug derived from its name
	// and creation time, computes the offered price, and uploads images.
	CreateProduct(ctx context.Context, adminID uuid.UUID, input *CreateProductInput) (*entity.Product, error)

	// UpdateProduct applies the non-nil fields and recomputes the offered
	// price whenever price or offer fields change. New images replace the
	// existing set.
	UpdateProduct(ctx context.Context, productID uuid.UUID, input *UpdateProductInput) (*entity.Product, error)

	// DeleteProduct removes the product and its images.
	DeleteProduct(ctx context.Context, productID uuid.UUID) error

	// GetProduct fetches a product by slug with images and category loaded.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)

	// ListProducts returns a filtered page of the catalog.
	ListProducts(ctx context.Context, input *ListProductsInput) (*ProductListOutput, error)
}
