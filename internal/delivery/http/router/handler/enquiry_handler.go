package handler

import (
	"net/http"

	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// EnquiryHandler holds dependencies for business enquiry handlers.
type EnquiryHandler struct {
	uc usecase.EnquiryUsecase
}

// NewEnquiryHandler is the constructor for EnquiryHandler, injected by Fx.
func NewEnquiryHandler(uc usecase.EnquiryUsecase) *EnquiryHandler {
	return &EnquiryHandler{uc: uc}
}

// Submit accepts a business enquiry from the public site.
func (h *EnquiryHandler) Submit(c echo.Context) error {
	var input *usecase.CreateEnquiryInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enquiry input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	enquiry, err := h.uc.SubmitEnquiry(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, enquiry, "Enquiry submitted successfully")
}

// List pages through enquiries, unanswered first. Admin only.
func (h *EnquiryHandler) List(c echo.Context) error {
	params := bindListParams(c)

	output, err := h.uc.ListEnquiries(c.Request().Context(), params)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Enquiries retrieved successfully")
}

// Get returns one enquiry. Admin only.
func (h *EnquiryHandler) Get(c echo.Context) error {
	enquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enquiry ID")
	}

	enquiry, err := h.uc.GetEnquiry(c.Request().Context(), enquiryID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enquiry, "Enquiry retrieved successfully")
}

type markRespondedRequest struct {
	Responded bool `json:"responded"`
}

// MarkResponded toggles the responded flag. Admin only.
func (h *EnquiryHandler) MarkResponded(c echo.Context) error {
	enquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enquiry ID")
	}

	var req markRespondedRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid enquiry input")
	}

	enquiry, err := h.uc.MarkResponded(c.Request().Context(), enquiryID, req.Responded)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, enquiry, "Enquiry updated successfully")
}

// Delete removes an enquiry. Admin only.
func (h *EnquiryHandler) Delete(c echo.Context) error {
	enquiryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid enquiry ID")
	}

	if err := h.uc.DeleteEnquiry(c.Request().Context(), enquiryID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Enquiry deleted successfully")
}
