package errors

import (
	"net/http"
	"sort"
	"strings"
)

// FieldErrors is a validation error carrying a field name to message map,
// e.g. {"email": "Email already exists"}. It implements AppError with a
// 422 status so the delivery layer can render the map as structured detail.
type FieldErrors struct {
	Fields map[string]string
}

// NewFieldErrors creates a FieldErrors from a field to message map.
func NewFieldErrors(fields map[string]string) *FieldErrors {
	return &FieldErrors{Fields: fields}
}

// NewFieldError creates a FieldErrors for a single field.
func NewFieldError(field, message string) *FieldErrors {
	return &FieldErrors{Fields: map[string]string{field: message}}
}

// Error implements the error interface
func (e *FieldErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	sort.Strings(parts)

	return "validation failed: " + strings.Join(parts, "; ")
}

// HTTPCode returns the HTTP status code
func (e *FieldErrors) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

// ErrorCode returns the business error code
func (e *FieldErrors) ErrorCode() string {
	return "VALIDATION_FAILED"
}

// Message returns the user-friendly error message
func (e *FieldErrors) Message() string {
	return "Input validation failed"
}

// Details returns detailed error information
func (e *FieldErrors) Details() string {
	return e.Error()
}
