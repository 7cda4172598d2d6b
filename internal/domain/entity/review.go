// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Review is a user's rating and comment on a product. Unique per
// (user, product): submitting again overwrites rating and comment instead of
// creating a duplicate.
type Review struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	ProductID uuid.UUID
	Rating    int // 1 to 5.
	Comment   string
	User      *User
	CreatedAt time.Time
	UpdatedAt time.Time
}
