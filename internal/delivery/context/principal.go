// Package context provides helpers for propagating request-scoped values
// between the HTTP layer and the rest of the application.
package context

import (
	"ayurfresh/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// KeyPrincipal is the key for storing the authenticated principal in
// echo.Context.
const KeyPrincipal ContextKey = "principal"

// Principal is the authenticated caller of a request, resolved from the
// access token by the auth middleware. Handlers read it through GetPrincipal
// instead of re-parsing the token.
type Principal struct {
	UserID uuid.UUID
	Role   entity.Role
}

// IsAdmin reports whether the principal carries the admin role.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == entity.RoleAdmin
}

// SetPrincipal stores the authenticated principal in echo.Context.
func SetPrincipal(c echo.Context, p *Principal) {
	c.Set(string(KeyPrincipal), p)
}

// GetPrincipal extracts the authenticated principal from echo.Context.
// Returns nil when the request is unauthenticated.
func GetPrincipal(c echo.Context) *Principal {
	if p, ok := c.Get(string(KeyPrincipal)).(*Principal); ok {
		return p
	}

	return nil
}
