package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"churchconnect/internal/dto"
	"churchconnect/internal/errors"
	"churchconnect/internal/models"
	"churchconnect/internal/screens"
	"churchconnect/internal/view"
)

type calendarScreen interface {
	Calendar(month time.Time) (view.CalendarMonth, error)
}

type bulkEmailScreen interface {
	SendBulkEmail(ctx context.Context, req models.BulkEmailRequest) (models.BulkEmailJob, error)
	BulkEmailJob(id uuid.UUID) (models.BulkEmailJob, error)
}

// SessionHandler exposes mounted screen sessions over HTTP
type SessionHandler struct {
	registry *screens.Registry
	now      func() time.Time
}

// NewSessionHandler creates a session handler. now defaults to time.Now.
func NewSessionHandler(registry *screens.Registry, now func() time.Time) *SessionHandler {
	if now == nil {
		now = time.Now
	}
	return &SessionHandler{registry: registry, now: now}
}

func (h *SessionHandler) controller(c echo.Context) (screens.Controller, error) {
	id, err := parseSessionID(c)
	if err != nil {
		return nil, err
	}
	return h.registry.Get(id)
}

// respondView writes the current derived view of a session
func respondView(c echo.Context, ctrl screens.Controller, status int) error {
	snapshot, err := ctrl.Snapshot()
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(status, snapshot)
}

// ListScreens returns the screens that can be mounted
func (h *SessionHandler) ListScreens(c echo.Context) error {
	return c.JSON(http.StatusOK, SuccessResponse{Data: h.registry.Screens()})
}

// Mount starts a session for :screen. With ?wait=true the response is held
// until the initial fetch settles.
func (h *SessionHandler) Mount(c echo.Context) error {
	session, err := h.registry.Mount(c.Request().Context(), c.Param("screen"))
	if err != nil {
		return SendScreenError(c, err)
	}

	if c.QueryParam("wait") == "true" {
		// A failed load still answers 201; the view carries load_state "failed".
		if err := session.Controller.WaitLoaded(c.Request().Context()); err != nil {
			return SendScreenError(c, err)
		}
	}

	snapshot, err := session.Controller.Snapshot()
	if err != nil {
		return SendScreenError(c, err)
	}
	c.Response().Header().Set(echo.HeaderLocation, "/api/v1/sessions/"+session.ID.String())
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: snapshot,
		Meta: dto.MountResponse{SessionID: session.ID, Screen: session.Screen},
	})
}

// GetView returns the derived view of a session
func (h *SessionHandler) GetView(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// Unmount disposes a session
func (h *SessionHandler) Unmount(c echo.Context) error {
	id, err := parseSessionID(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	if err := h.registry.Unmount(c.Request().Context(), id); err != nil {
		return SendScreenError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Reload retries the initial fetch
func (h *SessionHandler) Reload(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	if err := ctrl.Reload(c.Request().Context()); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// SetSearch records search input. The filter follows after the quiet period
// unless immediate is set.
func (h *SessionHandler) SetSearch(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.SearchRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := ctrl.SetSearch(req.Text); err != nil {
		return SendScreenError(c, err)
	}
	if req.Immediate {
		if err := ctrl.FlushSearch(); err != nil {
			return SendScreenError(c, err)
		}
	}
	return respondView(c, ctrl, http.StatusOK)
}

// SetFilter sets the filter named by :key
func (h *SessionHandler) SetFilter(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.FilterRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := ctrl.SetFilter(c.Param("key"), req.Value); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// ClearFilters resets search and filters
func (h *SessionHandler) ClearFilters(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	if err := ctrl.ClearFilters(); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// SetSort applies an explicit ordering
func (h *SessionHandler) SetSort(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.SortRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendScreenError(c, err)
	}

	if err := ctrl.SetSort(req.Key, req.Direction); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// GotoPage moves to a page, clamped to the available range
func (h *SessionHandler) GotoPage(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.PageRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if _, err := ctrl.GotoPage(req.Page); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// SelectAll selects or clears every entity in the filtered view
func (h *SessionHandler) SelectAll(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.SelectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if _, err := ctrl.SelectAll(req.Selected); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// SelectEntity toggles one entity in the selection
func (h *SessionHandler) SelectEntity(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	entityID, err := parseEntityID(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	var req dto.SelectRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	if err := ctrl.SelectEntity(entityID, req.Selected); err != nil {
		return SendScreenError(c, err)
	}
	return respondView(c, ctrl, http.StatusOK)
}

// AddEntity validates a form and adds the entity
func (h *SessionHandler) AddEntity(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	body, err := readBody(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	added, err := ctrl.AddJSON(c.Request().Context(), body)
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusCreated, SuccessResponse{Data: added})
}

// EditEntity merges a partial form into an existing entity
func (h *SessionHandler) EditEntity(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	entityID, err := parseEntityID(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	body, err := readBody(c)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}

	updated, err := ctrl.EditJSON(c.Request().Context(), entityID, body)
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: updated})
}

// DeleteEntity removes an entity
func (h *SessionHandler) DeleteEntity(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	entityID, err := parseEntityID(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	if err := ctrl.DeleteEntity(c.Request().Context(), entityID); err != nil {
		return SendScreenError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Export downloads the filtered view as CSV
func (h *SessionHandler) Export(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	file, err := ctrl.ExportVisible(c.Request().Context(), h.now())
	if err != nil {
		return SendScreenError(c, err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.Name))
	return c.Blob(http.StatusOK, file.ContentType, file.Body)
}

// Calendar lays out the filtered events of ?month=YYYY-MM, defaulting to the
// current month
func (h *SessionHandler) Calendar(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	events, ok := ctrl.(calendarScreen)
	if !ok {
		return SendScreenError(c, screens.ErrUnsupported)
	}

	month := h.now()
	if raw := c.QueryParam("month"); raw != "" {
		month, err = view.ParseMonth(raw)
		if err != nil {
			return SendError(c, errors.ValidationInvalidDate, errors.WithDetails(err.Error()))
		}
	}

	calendar, err := events.Calendar(month)
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: calendar})
}

// SendBulkEmail starts an asynchronous bulk email job
func (h *SessionHandler) SendBulkEmail(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	members, ok := ctrl.(bulkEmailScreen)
	if !ok {
		return SendScreenError(c, screens.ErrUnsupported)
	}

	var req dto.BulkEmailRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return SendScreenError(c, err)
	}

	job, err := members.SendBulkEmail(c.Request().Context(), req.ToModel())
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusAccepted, SuccessResponse{Data: job})
}

// GetBulkEmail reports the status of a bulk email job
func (h *SessionHandler) GetBulkEmail(c echo.Context) error {
	ctrl, err := h.controller(c)
	if err != nil {
		return SendScreenError(c, err)
	}
	members, ok := ctrl.(bulkEmailScreen)
	if !ok {
		return SendScreenError(c, screens.ErrUnsupported)
	}
	jobID, err := parseJobID(c)
	if err != nil {
		return SendScreenError(c, err)
	}

	job, err := members.BulkEmailJob(jobID)
	if err != nil {
		return SendScreenError(c, err)
	}
	return c.JSON(http.StatusOK, SuccessResponse{Data: job})
}
