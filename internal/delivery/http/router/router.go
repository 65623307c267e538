// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"mealhub/internal/delivery/http/middleware"
	"mealhub/internal/delivery/http/router/handler"
	"mealhub/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	MealHandler    *handler.MealHandler
	OrderHandler   *handler.OrderHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	mealHandler    *handler.MealHandler
	orderHandler   *handler.OrderHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		mealHandler:    params.MealHandler,
		orderHandler:   params.OrderHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog reads are public; mutations require a logged-in vendor.
	mealGroup := e.Group("/meals")
	{
		mealGroup.GET("", r.mealHandler.List)
		mealGroup.GET("/:id", r.mealHandler.Get)

		vendorOnly := []echo.MiddlewareFunc{
			r.authMiddleware.Authenticate,
			r.authMiddleware.RequireRole(entity.RoleVendor),
		}
		mealGroup.POST("", r.mealHandler.Create, vendorOnly...)
		mealGroup.PUT("/:id", r.mealHandler.Update, vendorOnly...)
		mealGroup.DELETE("/:id", r.mealHandler.Delete, vendorOnly...)
	}

	// Order routes all require authentication; role-specific rules live in
	// the authorization policy, not here.
	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.POST("", r.orderHandler.Create, r.authMiddleware.RequireRole(entity.RoleCustomer))
		orderGroup.GET("", r.orderHandler.List)
		orderGroup.GET("/:id", r.orderHandler.Get)
		orderGroup.PATCH("/:id/status", r.orderHandler.UpdateStatus)
	}
}
