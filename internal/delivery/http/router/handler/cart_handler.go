package handler

import (
	"net/http"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart handlers.
type CartHandler struct {
	uc usecase.CartUsecase
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

// GetCart renders the cart with per-line offered prices and totals.
func (h *CartHandler) GetCart(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	view, err := h.uc.GetCart(c.Request().Context(), principal.UserID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, view, "Cart retrieved successfully")
}

// AddItem upserts a cart line for a product.
func (h *CartHandler) AddItem(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.AddItem(c.Request().Context(), principal.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Item added to cart")
}

// UpdateQuantity increments or decrements a line by one.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var input *usecase.UpdateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.UpdateQuantity(c.Request().Context(), principal.UserID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Cart updated")
}

// RemoveItem deletes a line unconditionally.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	slug := c.Param("slug")
	if slug == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Product slug is required")
	}

	output, err := h.uc.RemoveItem(c.Request().Context(), principal.UserID, slug)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Item removed from cart")
}
