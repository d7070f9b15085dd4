// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"sitter/internal/delivery/http/middleware"
	"sitter/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler      *handler.UserHandler
	JobHandler       *handler.JobHandler
	AuthMiddleware   *middleware.AuthMiddleware
	LoggerMiddleware *middleware.LoggerMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler      *handler.UserHandler
	jobHandler       *handler.JobHandler
	authMiddleware   *middleware.AuthMiddleware
	loggerMiddleware *middleware.LoggerMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:      params.UserHandler,
		jobHandler:       params.JobHandler,
		authMiddleware:   params.AuthMiddleware,
		loggerMiddleware: params.LoggerMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.loggerMiddleware.Handle)

	// Liveness endpoint
	e.GET("/", handler.Root)

	// Public routes
	e.POST("/register", r.userHandler.Register)
	e.POST("/login", r.userHandler.Login)
	e.GET("/jobs", r.jobHandler.ListJobs)

	// Routes that require a verified bearer token
	e.POST("/jobs", r.jobHandler.PostJob, r.authMiddleware.Authenticate)
	e.POST("/apply", r.jobHandler.Apply, r.authMiddleware.Authenticate)
}
