// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"shop/internal/delivery/http/middleware"
	"shop/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProviderHandler *handler.ProviderHandler
	ProductHandler  *handler.ProductHandler
	CategoryHandler *handler.CategoryHandler
	BrandHandler    *handler.BrandHandler
	CommentHandler  *handler.CommentHandler
	AuthMiddleware  *middleware.AuthMiddleware
	AuthzMiddleware *middleware.AuthzMiddleware
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

// RegisterRoutes sets up all the API routes for the application. Every
// protected route names its capability here; handlers carry no permission
// checks of their own.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	// Public routes
	api.GET("/health", handler.HealthCheck)
	api.POST("/register", r.params.UserHandler.Register)
	api.POST("/login", r.params.UserHandler.Login)

	// Everything below requires a resolvable bearer token.
	authed := api.Group("", r.params.AuthMiddleware.Authenticate)
	require := r.params.AuthzMiddleware.Require

	authed.POST("/changePassword", r.params.UserHandler.ChangePassword, require("changepassword-post"))

	authed.GET("/users", r.params.UserHandler.ListUsers, require("users-get"))
	authed.GET("/person/:id", r.params.UserHandler.GetPerson, require("user-get"))
	authed.PUT("/person/:phone", r.params.UserHandler.UpdatePerson, require("person-put"))

	authed.GET("/providers", r.params.ProviderHandler.List, require("providers-get"))
	authed.GET("/providers/:id", r.params.ProviderHandler.Get, require("providers-get"))
	authed.POST("/providers", r.params.ProviderHandler.Create, require("providers-post"))
	authed.PUT("/providers/:id", r.params.ProviderHandler.Update, require("providers-put-delete"))
	authed.DELETE("/providers/:id", r.params.ProviderHandler.Delete, require("providers-put-delete"))
	authed.GET("/providers/:id/products", r.params.ProductHandler.ListByProvider, require("products-get-by-provider"))

	authed.GET("/products", r.params.ProductHandler.List, require("products-get"))
	authed.GET("/products/:id", r.params.ProductHandler.Get, require("products-get"))
	authed.POST("/products", r.params.ProductHandler.Create, require("products-post"))
	authed.PUT("/products/:id", r.params.ProductHandler.Update, require("products-put-delete"))
	authed.DELETE("/products/:id", r.params.ProductHandler.Delete, require("products-put-delete"))

	authed.GET("/categories", r.params.CategoryHandler.List, require("categories-get"))
	authed.GET("/categories/:id", r.params.CategoryHandler.Get, require("categories-get"))
	authed.POST("/categories", r.params.CategoryHandler.Create, require("categories-post"))
	authed.PUT("/categories/:id", r.params.CategoryHandler.Update, require("categories-put-delete"))
	authed.DELETE("/categories/:id", r.params.CategoryHandler.Delete, require("categories-put-delete"))

	authed.GET("/brands", r.params.BrandHandler.List, require("brands-get"))
	authed.GET("/brands/:id", r.params.BrandHandler.Get, require("brands-get"))
	authed.POST("/brands", r.params.BrandHandler.Create, require("brands-post"))
	authed.PUT("/brands/:id", r.params.BrandHandler.Update, require("brands-put-delete"))
	authed.DELETE("/brands/:id", r.params.BrandHandler.Delete, require("brands-put-delete"))

	authed.GET("/comments", r.params.CommentHandler.List, require("comments-get"))
	authed.GET("/comments/:id", r.params.CommentHandler.Get, require("comments-get"))
	authed.POST("/comments", r.params.CommentHandler.Create, require("comments-post"))
	authed.PUT("/comments/:id", r.params.CommentHandler.Update, require("comments-put-delete"))
	authed.DELETE("/comments/:id", r.params.CommentHandler.Delete, require("comments-put-delete"))
}
