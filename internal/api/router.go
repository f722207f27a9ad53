package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/Error160/blog-api/docs"
	"github.com/Error160/blog-api/internal/api/handler"
	"github.com/Error160/blog-api/internal/api/middleware"
	"github.com/Error160/blog-api/internal/core/ports"
	"github.com/Error160/blog-api/internal/infrastructure/http/handlers"
)

// Dependencies are the services and probes the router exposes.
type Dependencies struct {
	Auth       ports.AuthService
	Categories ports.CategoryService
	Posts      ports.PostService
	Comments   ports.CommentService

	// Checks feed the readiness probe, keyed by dependency name.
	Checks map[string]handlers.Check

	Logger zerolog.Logger

	// Registerer and Gatherer back the HTTP metrics and /metrics. They
	// default to the global Prometheus registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	if deps.Registerer == nil {
		deps.Registerer = prometheus.DefaultRegisterer
	}
	if deps.Gatherer == nil {
		deps.Gatherer = prometheus.DefaultGatherer
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Pre(echomiddleware.RemoveTrailingSlash())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	// Metrics wrap the request logger, whose HandleError commits the final
	// status before the request is counted.
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Namespace:  "blog",
		Registerer: deps.Registerer,
	}))
	e.Use(middleware.RequestLogger(deps.Logger))

	// --- Operational endpoints (no auth) ---
	health := handlers.NewHealthHandler()
	readiness := handlers.NewReadinessHandler(deps.Checks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: deps.Gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Blog API: identity is resolved once per request ---
	authn := middleware.Authenticate(deps.Auth)
	requireAuth := middleware.RequireAuth()
	requireAdmin := middleware.RequireAdmin()

	authH := handler.NewAuthHandler(deps.Auth)
	auth := e.Group("/auth", authn)
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/logout", authH.Logout, requireAuth)
	auth.GET("/profile", authH.Profile, requireAuth)

	postH := handler.NewPostHandler(deps.Posts)
	posts := e.Group("/posts", authn)
	posts.GET("", postH.List)
	posts.POST("", postH.Create, requireAuth)
	posts.GET("/:id", postH.Get)
	posts.PUT("/:id", postH.Replace, requireAuth)
	posts.PATCH("/:id", postH.Patch, requireAuth)
	posts.DELETE("/:id", postH.Delete, requireAuth)
	posts.GET("/:id/comments", postH.Comments)

	commentH := handler.NewCommentHandler(deps.Comments)
	comments := e.Group("/comments", authn)
	comments.GET("", commentH.List)
	comments.POST("", commentH.Create, requireAuth)
	comments.GET("/:id", commentH.Get)
	comments.PUT("/:id", commentH.Replace, requireAuth)
	comments.PATCH("/:id", commentH.Patch, requireAuth)
	comments.DELETE("/:id", commentH.Delete, requireAuth)

	categoryH := handler.NewCategoryHandler(deps.Categories)
	categories := e.Group("/categories", authn)
	categories.GET("", categoryH.List)
	categories.POST("", categoryH.Create, requireAdmin)
	categories.GET("/:id", categoryH.Get)
	categories.PUT("/:id", categoryH.Replace, requireAdmin)
	categories.PATCH("/:id", categoryH.Patch, requireAdmin)
	categories.DELETE("/:id", categoryH.Delete, requireAdmin)

	return e
}
