// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pagecast/internal/delivery/http/middleware"
	"pagecast/internal/delivery/http/router/handler"
	"pagecast/internal/domain/service"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PageHandler         *handler.PageHandler
	ExpirationHandler   *handler.ExpirationHandler
	ServeHandler        *handler.ServeHandler
	AuthMiddleware      *middleware.AuthMiddleware
	RateLimitMiddleware *middleware.RateLimitMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pageHandler       *handler.PageHandler
	expirationHandler *handler.ExpirationHandler
	serveHandler      *handler.ServeHandler
	authMiddleware    *middleware.AuthMiddleware
	rateLimit         *middleware.RateLimitMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pageHandler:       params.PageHandler,
		expirationHandler: params.ExpirationHandler,
		serveHandler:      params.ServeHandler,
		authMiddleware:    params.AuthMiddleware,
		rateLimit:         params.RateLimitMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	pages := e.Group("/api/pages")
	{
		pages.POST("/generate", r.pageHandler.Generate,
			r.authMiddleware.RequireScope(service.ScopeGenerate),
			r.rateLimit.Limit,
		)
		pages.GET("/:id/preview", r.pageHandler.Preview, r.authMiddleware.RequireScope(service.ScopeGenerate))

		pages.POST("/publish", r.pageHandler.Publish, r.authMiddleware.RequireScope(service.ScopePublish))
		pages.POST("/unpublish", r.pageHandler.Unpublish, r.authMiddleware.RequireScope(service.ScopePublish))
		pages.DELETE("", r.pageHandler.Delete, r.authMiddleware.RequireScope(service.ScopePublish))

		pages.POST("/expire", r.expirationHandler.Expire, r.authMiddleware.RequireScope(service.ScopeExpire))
	}

	// Everything else is content.
	e.GET("/*", r.serveHandler.Serve)
	e.HEAD("/*", r.serveHandler.Serve)
}
