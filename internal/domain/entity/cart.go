// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuantityDirection is the direction of a cart quantity adjustment.
type QuantityDirection string

const (
	// QuantityIncrement adds one to the line quantity.
	QuantityIncrement QuantityDirection = "INCREMENT"
	// QuantityDecrement subtracts one; the line is removed when it would reach zero.
	QuantityDecrement QuantityDirection = "DECREMENT"
)

// IsValid checks if the QuantityDirection is a valid value.
func (d QuantityDirection) IsValid() bool {
	return d == QuantityIncrement || d == QuantityDecrement
}

// Cart is a user's shopping cart, created lazily on the first add.
type Cart struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Items     []*CartItem
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CartItem is a single cart line, unique per (cart, product).
// Quantity is always at least one; a line that would reach zero is deleted.
type CartItem struct {
	ID        uuid.UUID
	CartID    uuid.UUID
	ProductID uuid.UUID
	Quantity  int
	Product   *Product
	CreatedAt time.Time
	UpdatedAt time.Time
}
