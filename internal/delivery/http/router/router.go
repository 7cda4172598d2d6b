// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ayurfresh/internal/delivery/http/middleware"
	"ayurfresh/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	VerificationHandler *handler.VerificationHandler
	ProfileHandler      *handler.ProfileHandler
	AddressHandler      *handler.AddressHandler
	ProductHandler      *handler.ProductHandler
	CategoryHandler     *handler.CategoryHandler
	CartHandler         *handler.CartHandler
	ReviewHandler       *handler.ReviewHandler
	EnquiryHandler      *handler.EnquiryHandler
	PincodeHandler      *handler.PincodeHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimit           *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	p := r.params
	authenticate := p.AuthMiddleware.Authenticate
	requireAdmin := p.AuthMiddleware.RequireAdmin

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api/v1")

	// Auth routes, rate limited to slow brute force attempts
	authGroup := api.Group("/auth", p.RateLimit.Limit)
	{
		authGroup.POST("/register", p.AuthHandler.Register)
		authGroup.POST("/login", p.AuthHandler.Login)
		authGroup.POST("/change-password", p.AuthHandler.ChangePassword, authenticate)
		authGroup.POST("/forgot-password", p.AuthHandler.ForgotPassword)
		authGroup.POST("/reset-password", p.AuthHandler.ResetPassword)

		authGroup.GET("/verify-email", p.VerificationHandler.VerifyEmail)
		authGroup.POST("/verify-email", p.VerificationHandler.VerifyEmail)
		authGroup.POST("/resend-verification", p.VerificationHandler.ResendEmailVerification)
		authGroup.POST("/send-otp", p.VerificationHandler.SendPhoneOTP, authenticate)
		authGroup.POST("/verify-otp", p.VerificationHandler.VerifyPhoneOTP, authenticate)
	}

	// Profile and address book
	profileGroup := api.Group("/profile", authenticate)
	{
		profileGroup.GET("", p.ProfileHandler.GetProfile)
		profileGroup.PATCH("", p.ProfileHandler.UpdateProfile)

		profileGroup.GET("/addresses", p.AddressHandler.List)
		profileGroup.POST("/addresses", p.AddressHandler.Create)
		profileGroup.PATCH("/addresses/:id", p.AddressHandler.Update)
		profileGroup.PUT("/addresses/:id/primary", p.AddressHandler.SetPrimary)
		profileGroup.DELETE("/addresses/:id", p.AddressHandler.Delete)
	}

	// Public catalog reads
	api.GET("/products", p.ProductHandler.List)
	api.GET("/products/:slug", p.ProductHandler.Get)
	api.GET("/products/:slug/reviews", p.ReviewHandler.ListForProduct)
	api.GET("/categories", p.CategoryHandler.List)
	api.GET("/categories/:slug", p.CategoryHandler.Get)

	// Public pincode surface
	api.GET("/pincodes/:pincode/serviceability", p.PincodeHandler.CheckServiceability)
	api.GET("/pincodes/:pincode/areas", p.AddressHandler.LookupPincode)

	// Public enquiry submission, rate limited
	api.POST("/enquiries", p.EnquiryHandler.Submit, p.RateLimit.Limit)

	// Cart, always per authenticated user
	cartGroup := api.Group("/cart", authenticate)
	{
		cartGroup.GET("", p.CartHandler.GetCart)
		cartGroup.POST("/items", p.CartHandler.AddItem)
		cartGroup.PATCH("/items", p.CartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:slug", p.CartHandler.RemoveItem)
	}

	// Reviews require a logged-in user
	reviewGroup := api.Group("/reviews", authenticate)
	{
		reviewGroup.POST("", p.ReviewHandler.Create)
		reviewGroup.PATCH("/:id", p.ReviewHandler.Update)
		reviewGroup.DELETE("/:id", p.ReviewHandler.Delete)
	}

	// Admin surface, role gated after authentication
	adminGroup := api.Group("/admin", authenticate, requireAdmin)
	{
		adminGroup.POST("/products", p.ProductHandler.Create)
		adminGroup.PATCH("/products/:id", p.ProductHandler.Update)
		adminGroup.DELETE("/products/:id", p.ProductHandler.Delete)

		adminGroup.POST("/categories", p.CategoryHandler.Create)
		adminGroup.PATCH("/categories/:id", p.CategoryHandler.Update)
		adminGroup.DELETE("/categories/:id", p.CategoryHandler.Delete)

		adminGroup.GET("/pincodes", p.PincodeHandler.List)
		adminGroup.POST("/pincodes", p.PincodeHandler.Create)
		adminGroup.PATCH("/pincodes/:id", p.PincodeHandler.Update)
		adminGroup.DELETE("/pincodes/:id", p.PincodeHandler.Delete)

		adminGroup.GET("/enquiries", p.EnquiryHandler.List)
		adminGroup.GET("/enquiries/:id", p.EnquiryHandler.Get)
		adminGroup.PATCH("/enquiries/:id", p.EnquiryHandler.MarkResponded)
		adminGroup.DELETE("/enquiries/:id", p.EnquiryHandler.Delete)

		adminGroup.GET("/customers", p.ProfileHandler.ListCustomers)
	}
}
