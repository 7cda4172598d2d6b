package repository

import (
	"context"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for cart persistence.
var (
	// ErrCartNotFound is returned when a user has no cart yet.
	ErrCartNotFound = errors.New("cart not found")
	// ErrCartItemNotFound is returned when a cart has no line for a product.
	ErrCartItemNotFound = errors.New("cart item not found")
)

// CartRepository defines the interface for cart persistence. Lines are keyed
// by (cart_id, product_id); quantity reconciliation relies on the surrounding
// transaction plus the atomic upsert in AddItemQuantity.
type CartRepository interface {
	// FindByUser retrieves the user's cart without items.
	FindByUser(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// FindByUserWithItems retrieves the user's cart with items and their
	// products (including images) preloaded.
	FindByUserWithItems(ctx context.Context, userID uuid.UUID) (*entity.Cart, error)

	// Create persists a new empty cart for a user.
	Create(ctx context.Context, cart *entity.Cart) error

	// FindItem retrieves a single cart line.
	FindItem(ctx context.Context, cartID, productID uuid.UUID) (*entity.CartItem, error)

	// AddItemQuantity upserts a cart line: inserts with quantity=delta or
	// atomically adds delta to the existing line's quantity.
	AddItemQuantity(ctx context.Context, cartID, productID uuid.UUID, delta int) error

	// SetItemQuantity sets an existing line's quantity.
	SetItemQuantity(ctx context.Context, cartID, productID uuid.UUID, quantity int) error

	// DeleteItem removes a cart line. Returns ErrCartItemNotFound when no
	// row was deleted.
	DeleteItem(ctx context.Context, cartID, productID uuid.UUID) error
}
