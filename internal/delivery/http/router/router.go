// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
	AddressHandler *handler.AddressHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
	addressHandler *handler.AddressHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
		addressHandler: params.AddressHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	authn := r.authMiddleware.Authenticate

	// User and session routes
	userGroup := e.Group("/users")
	{
		userGroup.POST("/register", r.userHandler.Register)
		userGroup.POST("/login", r.userHandler.Login)
		userGroup.POST("/refresh", r.userHandler.RefreshToken)
		userGroup.POST("/logout", r.userHandler.Logout, authn)
		userGroup.GET("/:id", r.userHandler.GetUser, authn)
	}

	// Catalog routes; reads are public, mutations require the owner's token
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, authn)
		productGroup.PUT("/:id", r.productHandler.Update, authn)
		productGroup.DELETE("/:id", r.productHandler.Delete, authn)
		productGroup.POST("/:id/reviews", r.productHandler.AddReview, authn)
	}

	// Address book routes, always scoped to the authenticated user
	addressGroup := e.Group("/addresses")
	addressGroup.Use(authn)
	{
		addressGroup.POST("", r.addressHandler.Create)
		addressGroup.GET("", r.addressHandler.List)
		addressGroup.PUT("/:id", r.addressHandler.Update)
		addressGroup.DELETE("/:id", r.addressHandler.Delete)
	}

	// Order lifecycle routes
	orderGroup := e.Group("/orders")
	orderGroup.Use(authn)
	{
		orderGroup.POST("", r.orderHandler.Create)
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PUT("/:id", r.orderHandler.UpdateStatus)
		orderGroup.POST("/:id/pay", r.orderHandler.Pay)
		orderGroup.POST("/:id/complete", r.orderHandler.Complete)
		orderGroup.POST("/:id/return", r.orderHandler.Return)
		orderGroup.POST("/:id/cancel", r.orderHandler.Cancel)
	}
}
