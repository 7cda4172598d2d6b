package usecase

import (
	"context"
	"time"

	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/repository"

	"github.com/google/uuid"
)

// UpdateProfileInput edits the caller's own account fields. A phone change
// resets phone verification.
type UpdateProfileInput struct {
	Name                 *string `json:"name" validate:"omitempty,min=2"`
	PhoneNumber          *string `json:"phone_number" validate:"omitempty,len=10,numeric"`
	NotifyProductUpdates *bool   `json:"notify_product_updates"`
}

// ProfileOutput is the authenticated user's own view of their account.
type ProfileOutput struct {
	ID                   uuid.UUID        `json:"id"`
	Name                 string           `json:"name"`
	Email                string           `json:"email"`
	PhoneNumber          *string          `json:"phone_number"`
	Role                 entity.Role      `json:"role"`
	EmailVerified        bool             `json:"email_verified"`
	PhoneVerified        bool             `json:"phone_verified"`
	NotifyProductUpdates bool             `json:"notify_product_updates"`
	Addresses            []entity.Address `json:"addresses"`
	CreatedAt            time.Time        `json:"created_at"`
}

// CustomerListOutput is one admin page of customer accounts.
type CustomerListOutput struct {
	Customers []*entity.User `json:"customers"`
	Total     int64          `json:"total"`
	Page      int            `json:"page"`
	PerPage   int            `json:"per_page"`
}

// ProfileUsecase serves account self-service and the admin customer list.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *UpdateProfileInput) (*ProfileOutput, error)

	// ListCustomers pages through accounts with the USER role.
	ListCustomers(ctx context.Context, params repository.ListParams) (*CustomerListOutput, error)
}
