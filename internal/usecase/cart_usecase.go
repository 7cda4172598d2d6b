package usecase

import (
	"context"

	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
)

// AddItemInput represents the input for adding a product to the cart.
type AddItemInput struct {
	Slug     string `json:"slug" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// UpdateQuantityInput represents a single-step quantity adjustment.
type UpdateQuantityInput struct {
	Slug      string                   `json:"slug" validate:"required"`
	Direction entity.QuantityDirection `json:"type" validate:"required,oneof=INCREMENT DECREMENT"`
}

// CartItemOutput identifies the product a cart mutation touched.
type CartItemOutput struct {
	ProductName string `json:"product_name"`
	Slug        string `json:"slug"`
}

// CartLineView is one rendered cart line with pricing applied.
type CartLineView struct {
	ID       uuid.UUID       `json:"id"`
	Quantity int             `json:"quantity"`
	Product  CartProductView `json:"product"`
}

// CartProductView is the product summary embedded in a cart line.
type CartProductView struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Image        string    `json:"image,omitempty"`
	Price        float64   `json:"price"`
	OfferedPrice float64   `json:"offered_price"`
}

// CartView is the full cart with raw and offered totals accumulated across
// lines. An absent cart renders as zero totals and an empty item list.
type CartView struct {
	Items           []CartLineView `json:"items"`
	TotalPrice      float64        `json:"total_price"`
	TotalOfferPrice float64        `json:"total_offer_price"`
}

// CartUsecase maintains per-user cart lines keyed by (cart, product).
// Quantity never persists at zero: a decrement that would reach zero deletes
// the line instead.
type CartUsecase interface {
	// AddItem resolves the product by slug, lazily creates the user's cart,
	// and upserts the line: existing lines accumulate quantity.
	AddItem(ctx context.Context, userID uuid.UUID, input *AddItemInput) (*CartItemOutput, error)

	// UpdateQuantity increments or decrements a line by one. A decrement on
	// a quantity-1 line removes it.
	UpdateQuantity(ctx context.Context, userID uuid.UUID, input *UpdateQuantityInput) (*CartItemOutput, error)

	// RemoveItem deletes the line unconditionally.
	RemoveItem(ctx context.Context, userID uuid.UUID, slug string) (*CartItemOutput, error)

	// GetCart renders the cart with per-line offered prices and totals.
	GetCart(ctx context.Context, userID uuid.UUID) (*CartView, error)
}
