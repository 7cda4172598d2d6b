// Package errors defines the application's error taxonomy. Every error the
// service layer returns to the delivery layer satisfies AppError so handlers
// never leak raw database or provider errors to clients.
package errors

import (
	"net/http"

	"ayurfresh/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// ErrValidationFailed covers malformed or missing input. Field-level
	// detail travels in a FieldErrors value wrapped around this error.
	ErrValidationFailed = NewBaseError(
		http.StatusUnprocessableEntity,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// ErrNotFound covers an absent entity or one not owned by the caller.
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	// ErrConflict covers uniqueness violations (duplicate email, phone,
	// slug or pincode).
	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource already exists",
		"",
	)

	// ErrUnauthorized covers missing, invalid or expired credentials.
	ErrUnauthorized = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Invalid credentials",
		"",
	)

	// ErrForbidden covers authenticated callers with insufficient role.
	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"Access denied",
		"",
	)

	// ErrEmailNotVerified blocks login until the email channel is verified.
	ErrEmailNotVerified = NewBaseError(
		http.StatusForbidden,
		"EMAIL_NOT_VERIFIED",
		"Email not verified. Please verify your email first",
		"",
	)

	// ErrInvalidToken covers a verification or reset token that does not
	// match the stored one, and an OTP that mismatches.
	ErrInvalidToken = NewBaseError(
		http.StatusBadRequest,
		"INVALID_TOKEN",
		"Invalid verification token",
		"",
	)

	// ErrExpiredToken is distinct from ErrInvalidToken so clients can offer
	// "resend" instead of "retry".
	ErrExpiredToken = NewBaseError(
		http.StatusGone,
		"EXPIRED_TOKEN",
		"Token has expired",
		"",
	)

	// ErrOTPNotSent means no OTP is on record for the user.
	ErrOTPNotSent = NewBaseError(
		http.StatusBadRequest,
		"OTP_NOT_SENT",
		"No OTP found for this user",
		"",
	)

	// ErrAlreadyVerified is the benign outcome of re-verifying a terminal
	// channel. Handlers map it to a 200 rather than an error body.
	ErrAlreadyVerified = NewBaseError(
		http.StatusOK,
		"ALREADY_VERIFIED",
		"Already verified",
		"",
	)

	// ErrInternalError covers anything unanticipated, including downstream
	// mail/SMS/image provider outages. The cause is logged, never returned.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "Database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
