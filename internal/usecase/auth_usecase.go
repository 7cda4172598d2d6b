// Package usecase defines the application's use case interfaces and their
// input/output DTOs. Implementations live in usecase/impl.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// RegisterInput represents the input for user registration.
type RegisterInput struct {
	Name        string  `json:"name" validate:"required,min=2,max=100"`
	Email       string  `json:"email" validate:"required,email"`
	PhoneNumber *string `json:"phone_number" validate:"omitempty,len=10,numeric"`
	Password    string  `json:"password" validate:"required,min=8,max=72"`
}

// LoginInput represents the input for login by email or phone number.
type LoginInput struct {
	Login    string `json:"login" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginOutput carries the issued access token and basic identity.
type LoginOutput struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Token string `json:"token"`
}

// ChangePasswordInput represents the input for an authenticated password change.
type ChangePasswordInput struct {
	OldPassword string `json:"old_password" validate:"required"`
	NewPassword string `json:"new_password" validate:"required,min=8,max=72"`
}

// ForgotPasswordInput represents the input for requesting a reset link.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordInput represents the input for consuming a reset token.
type ResetPasswordInput struct {
	Email    string `json:"email" validate:"required,email"`
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// RegisterOutput reports the created account.
type RegisterOutput struct {
	UserID uuid.UUID `json:"user_id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
}

// AuthUsecase defines the authentication and credential-management use cases.
type AuthUsecase interface {
	// Register creates a user with a PENDING verification record and
	// dispatches the verification mail after the transaction commits.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates by email or phone plus password. It fails with
	// ErrEmailNotVerified until the email channel is verified.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// ChangePassword rotates the password after checking the old one.
	ChangePassword(ctx context.Context, userID uuid.UUID, input *ChangePasswordInput) error

	// ForgotPassword issues a fresh single-use reset token and mails the
	// reset link.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetForgottenPassword consumes a valid, unexpired reset token and
	// sets the new password. The token and its expiry are cleared together.
	ResetForgottenPassword(ctx context.Context, input *ResetPasswordInput) error
}
