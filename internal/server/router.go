package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"churchconnect/internal/handlers"
	"churchconnect/internal/middleware"
	"churchconnect/internal/screens"
	"churchconnect/internal/services"
)

// Handlers groups everything the router dispatches to.
type Handlers struct {
	Sessions *handlers.SessionHandler
	Settings *handlers.SettingsHandler
	Health   *handlers.HealthCheckHandler
}

// Options configures the shared middleware chain.
type Options struct {
	CORSAllowOrigins []string
	RateLimiter      *middleware.RateLimiter
	// Gatherer backs /metrics. Nil serves the default registry.
	Gatherer prometheus.Gatherer
}

// NewHandlers builds the handler set around one session registry.
func NewHandlers(registry *screens.Registry, settings services.SettingsServiceInterface, db handlers.HealthChecker) Handlers {
	return Handlers{
		Sessions: handlers.NewSessionHandler(registry, nil),
		Settings: handlers.NewSettingsHandler(settings),
		Health:   handlers.NewHealthCheckHandler(db, registry.Len),
	}
}

// New returns an echo instance with the middleware chain and every route
// registered.
func New(h Handlers, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	e.Use(middleware.RequestID())
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: opts.CORSAllowOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders:  []string{echo.HeaderContentType, middleware.TraceIDHeader},
		ExposeHeaders: []string{echo.HeaderContentDisposition, echo.HeaderLocation, middleware.TraceIDHeader},
	}))
	if opts.RateLimiter != nil {
		e.Use(opts.RateLimiter.Middleware())
	}

	gatherer := opts.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	e.GET("/health", h.Health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := e.Group("/api/v1")
	v1.GET("/health", h.Health.HealthCheck)
	v1.GET("/settings", h.Settings.GetSettings)
	v1.PATCH("/settings", h.Settings.UpdateSettings)

	v1.GET("/screens", h.Sessions.ListScreens)
	v1.POST("/screens/:screen/sessions", h.Sessions.Mount)

	sessions := v1.Group("/sessions/:id")
	sessions.GET("", h.Sessions.GetView)
	sessions.DELETE("", h.Sessions.Unmount)
	sessions.POST("/reload", h.Sessions.Reload)
	sessions.PUT("/search", h.Sessions.SetSearch)
	sessions.PUT("/filters/:key", h.Sessions.SetFilter)
	sessions.DELETE("/filters", h.Sessions.ClearFilters)
	sessions.PUT("/sort", h.Sessions.SetSort)
	sessions.PUT("/page", h.Sessions.GotoPage)
	sessions.PUT("/selection", h.Sessions.SelectAll)
	sessions.PUT("/selection/:entityId", h.Sessions.SelectEntity)
	sessions.POST("/entities", h.Sessions.AddEntity)
	sessions.PATCH("/entities/:entityId", h.Sessions.EditEntity)
	sessions.DELETE("/entities/:entityId", h.Sessions.DeleteEntity)
	sessions.GET("/export", h.Sessions.Export)
	sessions.GET("/calendar", h.Sessions.Calendar)
	sessions.POST("/bulk-emails", h.Sessions.SendBulkEmail)
	sessions.GET("/bulk-emails/:jobId", h.Sessions.GetBulkEmail)

	return e
}
