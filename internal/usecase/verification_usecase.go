package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// VerifyEmailOutput reports a successful email verification.
type VerifyEmailOutput struct {
	Email      string    `json:"email"`
	VerifiedAt time.Time `json:"verified_at"`
}

// VerificationUsecase drives the per-channel verification state machines.
// Both channels move PENDING to VERIFIED exactly once; re-verifying a
// terminal channel yields ErrAlreadyVerified, which callers treat as benign.
type VerificationUsecase interface {
	// VerifyEmail matches the submitted token verbatim against the stored
	// one. On success the token is cleared and the verified timestamp set,
	// so a second attempt with the same token fails.
	VerifyEmail(ctx context.Context, email, token string) (*VerifyEmailOutput, error)

	// ResendEmailVerification issues a fresh token, invalidating the old
	// one; only the latest token is ever valid.
	ResendEmailVerification(ctx context.Context, email string) error

	// SendPhoneOTP generates a 6-digit OTP with an expiry window and
	// dispatches it over SMS after the transaction commits.
	SendPhoneOTP(ctx context.Context, userID uuid.UUID) error

	// VerifyPhoneOTP distinguishes three failures the caller can branch
	// on: ErrOTPNotSent (nothing stored), ErrInvalidToken (mismatch) and
	// ErrExpiredToken (past expiry, even when the value matches).
	VerifyPhoneOTP(ctx context.Context, userID uuid.UUID, otp string) error
}
