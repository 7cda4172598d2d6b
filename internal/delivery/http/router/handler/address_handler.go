package handler

import (
	"net/http"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AddressHandler holds dependencies for address book handlers.
type AddressHandler struct {
	uc usecase.AddressUsecase
}

// NewAddressHandler is the constructor for AddressHandler, injected by Fx.
func NewAddressHandler(uc usecase.AddressUsecase) *AddressHandler {
	return &AddressHandler{uc: uc}
}

// List returns the user's addresses, primary first.
func (h *AddressHandler) List(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	addresses, err := h.uc.List(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, addresses, "Addresses retrieved successfully")
}

// Create adds an address to the user's address book.
func (h *AddressHandler) Create(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.CreateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Create(c.Request().Context(), principal.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, address, "Address added successfully")
}

// Update applies a partial update to an owned address.
func (h *AddressHandler) Update(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	var input *usecase.UpdateAddressInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid address input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	address, err := h.uc.Update(c.Request().Context(), principal.UserID, addressID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Address updated successfully")
}

// SetPrimary promotes one address to be the delivery default.
func (h *AddressHandler) SetPrimary(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	address, err := h.uc.SetPrimary(c.Request().Context(), principal.UserID, addressID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, address, "Primary address updated successfully")
}

// Delete removes an owned address.
func (h *AddressHandler) Delete(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	addressID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid address ID")
	}

	if err := h.uc.Delete(c.Request().Context(), principal.UserID, addressID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Address deleted successfully")
}

// LookupPincode resolves a pincode to post-office areas for autofill.
func (h *AddressHandler) LookupPincode(c echo.Context) error {
	pincode := c.Param("pincode")
	if len(pincode) != 6 {
		return response.BadRequest(c, "INVALID_INPUT", "Pincode must be 6 digits")
	}

	output, err := h.uc.LookupPincode(c.Request().Context(), pincode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Pincode resolved successfully")
}
