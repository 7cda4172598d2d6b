package handler

import (
	"net/http"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/domain/repository"
	"ayurfresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProfileHandler holds dependencies for profile handlers.
type ProfileHandler struct {
	uc usecase.ProfileUsecase
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase) *ProfileHandler {
	return &ProfileHandler{uc: uc}
}

// GetProfile returns the authenticated user's profile with addresses.
func (h *ProfileHandler) GetProfile(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	output, err := h.uc.GetProfile(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile retrieved successfully")
}

// UpdateProfile applies a partial profile update. Changing the phone number
// resets its verification status.
func (h *ProfileHandler) UpdateProfile(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.UpdateProfileInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateProfile(c.Request().Context(), principal.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Profile updated successfully")
}

// ListCustomers pages through USER-role accounts. Admin only.
func (h *ProfileHandler) ListCustomers(c echo.Context) error {
	params := bindListParams(c)

	output, err := h.uc.ListCustomers(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Customers retrieved successfully")
}

// bindListParams reads the shared page/per_page/search query parameters.
func bindListParams(c echo.Context) repository.ListParams {
	var params repository.ListParams
	echo.QueryParamsBinder(c).
		Int("page", &params.Page).
		Int("per_page", &params.PerPage).
		String("search", &params.Search)

	return params
}
