package middleware

import (
	"strings"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/domain/entity"
	"ayurfresh/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token and stores the resolved principal
// on the request context for handlers to read.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid or expired token")
		}

		deliverycontext.SetPrincipal(c, &deliverycontext.Principal{
			UserID: claims.UserID,
			Role:   entity.Role(claims.Role),
		})

		return next(c)
	}
}

// RequireAdmin gates a route on the ADMIN role. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if !principal.IsAdmin() {
			return response.Forbidden(c, "FORBIDDEN", "Admin access required")
		}

		return next(c)
	}
}
