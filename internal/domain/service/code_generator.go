package service

// CodeGenerator produces the opaque secrets used by the verification flows:
// UUID-style tokens for email verification and password reset, and 6-digit
// numeric OTPs for phone verification.
type CodeGenerator interface {
	// Token returns a new unguessable token string.
	Token() string

	// OTP returns a new 6-digit numeric one-time password.
	OTP() string
}
