package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"churchconnect/internal/errors"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthCheckHandler handles the health check endpoint
type HealthCheckHandler struct {
	db       HealthChecker
	sessions func() int
}

// NewHealthCheckHandler creates a health handler. db may be nil when no seed
// database is configured.
func NewHealthCheckHandler(db HealthChecker, sessions func() int) *HealthCheckHandler {
	return &HealthCheckHandler{db: db, sessions: sessions}
}

// HealthCheck reports liveness and, when configured, database connectivity
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	database := "disabled"
	if h.db != nil {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := h.db.HealthCheck(ctx); err != nil {
			return SendError(c, errors.SystemServiceUnavailable, errors.WithDetails("Database connection failed"))
		}
		database = "ok"
	}

	body := map[string]interface{}{
		"status":   "healthy",
		"database": database,
		"time":     time.Now().UTC().Format(time.RFC3339),
	}
	if h.sessions != nil {
		body["sessions"] = h.sessions()
	}
	return c.JSON(http.StatusOK, body)
}
