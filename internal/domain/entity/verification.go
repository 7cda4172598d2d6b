// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChannelStatus is the verification state of a contact channel (email or phone).
// PENDING transitions to VERIFIED exactly once; VERIFIED is terminal.
type ChannelStatus string

const (
	// ChannelPending means the channel has not been verified yet.
	ChannelPending ChannelStatus = "PENDING"
	// ChannelVerified means the channel has been verified.
	ChannelVerified ChannelStatus = "VERIFIED"
)

// Verification tracks the email/phone verification and password-reset state
// for a single user. A token or OTP and its expiry are always written and
// cleared together: after a successful check both are nulled, and a reissue
// replaces both in the same update.
type Verification struct {
	UserID uuid.UUID

	EmailStatus      ChannelStatus
	EmailVerifyToken *string
	EmailVerifiedAt  *time.Time

	PhoneStatus     ChannelStatus
	PhoneOTP        *string
	OTPExpiry       *time.Time
	PhoneVerifiedAt *time.Time

	PasswordResetToken *string
	ResetTokenExpiry   *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// EmailVerified reports whether the email channel reached its terminal state.
func (v *Verification) EmailVerified() bool {
	return v != nil && v.EmailStatus == ChannelVerified
}

// PhoneVerified reports whether the phone channel reached its terminal state.
func (v *Verification) PhoneVerified() bool {
	return v != nil && v.PhoneStatus == ChannelVerified
}
