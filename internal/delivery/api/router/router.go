// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tableplay/internal/delivery/api/middleware"
	"tableplay/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	RestaurantHandler *handler.RestaurantHandler
	FavoriteHandler   *handler.FavoriteHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	restaurantHandler *handler.RestaurantHandler
	favoriteHandler   *handler.FavoriteHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		restaurantHandler: params.RestaurantHandler,
		favoriteHandler:   params.FavoriteHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	e.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)

	e.GET("/restaurants", r.restaurantHandler.List)

	favoritesGroup := e.Group("/favorites")
	favoritesGroup.Use(r.authMiddleware.Authenticate)
	{
		favoritesGroup.GET("", r.favoriteHandler.List)
		favoritesGroup.POST("", r.favoriteHandler.Add)
		favoritesGroup.DELETE("/:restaurant_id", r.favoriteHandler.Remove)
	}
}
