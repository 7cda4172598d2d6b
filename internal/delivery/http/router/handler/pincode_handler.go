package handler

import (
	"net/http"

	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PincodeHandler holds dependencies for serviceable pincode handlers.
type PincodeHandler struct {
	uc usecase.PincodeUsecase
}

// NewPincodeHandler is the constructor for PincodeHandler, injected by Fx.
func NewPincodeHandler(uc usecase.PincodeUsecase) *PincodeHandler {
	return &PincodeHandler{uc: uc}
}

// CheckServiceability reports whether delivery covers a pincode. An unknown
// pincode is a negative answer, not a 404.
func (h *PincodeHandler) CheckServiceability(c echo.Context) error {
	pincode := c.Param("pincode")
	if len(pincode) != 6 {
		return response.BadRequest(c, "INVALID_INPUT", "Pincode must be 6 digits")
	}

	output, err := h.uc.CheckServiceability(c.Request().Context(), pincode)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Serviceability checked")
}

// List returns every serviceable pincode. Admin only.
func (h *PincodeHandler) List(c echo.Context) error {
	pincodes, err := h.uc.ListPincodes(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pincodes, "Pincodes retrieved successfully")
}

// Create adds a serviceable pincode. Admin only.
func (h *PincodeHandler) Create(c echo.Context) error {
	var input *usecase.CreatePincodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pincode input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pincode, err := h.uc.CreatePincode(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, pincode, "Pincode added successfully")
}

// Update edits a serviceable pincode. Admin only.
func (h *PincodeHandler) Update(c echo.Context) error {
	pincodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pincode ID")
	}

	var input *usecase.UpdatePincodeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid pincode input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	pincode, err := h.uc.UpdatePincode(c.Request().Context(), pincodeID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, pincode, "Pincode updated successfully")
}

// Delete removes a serviceable pincode. Admin only.
func (h *PincodeHandler) Delete(c echo.Context) error {
	pincodeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid pincode ID")
	}

	if err := h.uc.DeletePincode(c.Request().Context(), pincodeID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Pincode deleted successfully")
}
