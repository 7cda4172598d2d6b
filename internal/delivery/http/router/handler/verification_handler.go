package handler

import (
	"net/http"

	deliverycontext "ayurfresh/internal/delivery/context"
	"ayurfresh/internal/delivery/http/response"
	"ayurfresh/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for email and phone verification.
type VerificationHandler struct {
	uc usecase.VerificationUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

type verifyEmailRequest struct {
	Email string `json:"email" query:"email" validate:"required,email"`
	Token string `json:"token" query:"token" validate:"required"`
}

type resendEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type verifyOTPRequest struct {
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// VerifyEmail consumes the token from the verification mail. It accepts both
// the GET link and a JSON body so clients can confirm from either flow.
func (h *VerificationHandler) VerifyEmail(c echo.Context) error {
	var req verifyEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.VerifyEmail(c.Request().Context(), req.Email, req.Token)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, output, "Email verified successfully")
}

// ResendEmailVerification issues a fresh verification token.
func (h *VerificationHandler) ResendEmailVerification(c echo.Context) error {
	var req resendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid resend input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ResendEmailVerification(c.Request().Context(), req.Email); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification email sent")
}

// SendPhoneOTP dispatches a one-time code to the user's phone.
func (h *VerificationHandler) SendPhoneOTP(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	if err := h.uc.SendPhoneOTP(c.Request().Context(), principal.UserID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "OTP sent")
}

// VerifyPhoneOTP checks the submitted code against the stored one.
func (h *VerificationHandler) VerifyPhoneOTP(c echo.Context) error {
	principal := deliverycontext.GetPrincipal(c)
	if principal == nil {
		return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
	}

	var req verifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid OTP input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.VerifyPhoneOTP(c.Request().Context(), principal.UserID, req.OTP); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Phone number verified successfully")
}
