// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"boutique/internal/delivery/http/middleware"
	"boutique/internal/delivery/http/router/handler"
	"boutique/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RouterParams holds the handlers and middleware, injected by Fx.
type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProductHandler    *handler.ProductHandler
	CartHandler       *handler.CartHandler
	WishlistHandler   *handler.WishlistHandler
	NewsletterHandler *handler.NewsletterHandler
	UploadHandler     *handler.UploadHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	productHandler    *handler.ProductHandler
	cartHandler       *handler.CartHandler
	wishlistHandler   *handler.WishlistHandler
	newsletterHandler *handler.NewsletterHandler
	uploadHandler     *handler.UploadHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		productHandler:    params.ProductHandler,
		cartHandler:       params.CartHandler,
		wishlistHandler:   params.WishlistHandler,
		newsletterHandler: params.NewsletterHandler,
		uploadHandler:     params.UploadHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
		authGroup.POST("/role", r.userHandler.Role, r.authMiddleware.Authenticate)
	}

	// Public storefront routes. The optional authentication lets admins use
	// the is_draft listing filter without a separate endpoint.
	productGroup := e.Group("/products")
	productGroup.Use(r.authMiddleware.AuthenticateOptional)
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
	}

	newsletterGroup := e.Group("/newsletter")
	{
		newsletterGroup.GET("/available", r.newsletterHandler.CheckAvailable)
		newsletterGroup.POST("/subscribe", r.newsletterHandler.Subscribe)
	}

	// Cart and wishlist require a signed-in user.
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.Authenticate)
	{
		cartGroup.GET("", r.cartHandler.Get)
		cartGroup.POST("", r.cartHandler.Add)
		cartGroup.PUT("/:id", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/:id", r.cartHandler.Remove)
	}

	wishlistGroup := e.Group("/wishlist")
	wishlistGroup.Use(r.authMiddleware.Authenticate)
	{
		wishlistGroup.GET("", r.wishlistHandler.Get)
		wishlistGroup.POST("", r.wishlistHandler.Add)
		wishlistGroup.DELETE("/:productId", r.wishlistHandler.Remove)
	}

	// Admin routes require authentication and the "admin" role.
	adminGroup := e.Group("/admin/products")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(string(entity.RoleAdmin)))
	{
		adminGroup.POST("", r.productHandler.Create)
		adminGroup.PUT("/:id", r.productHandler.Update)
		adminGroup.DELETE("/:id", r.productHandler.Delete)
		adminGroup.POST("/:id/publish", r.productHandler.Publish)
		adminGroup.GET("/:id/qr", r.productHandler.QRCode)
		adminGroup.POST("/upload-image", r.uploadHandler.UploadImage)
	}
}
