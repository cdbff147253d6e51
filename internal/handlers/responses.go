package handlers

import (
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"churchconnect/internal/collection"
	"churchconnect/internal/errors"
	"churchconnect/internal/models"
	"churchconnect/internal/screens"
	"churchconnect/internal/services"
	"churchconnect/internal/view"
)

// ERROR RESPONSES
//
// Handlers answer failures through one of three helpers:
//
// 1. SendError - a known error code (4xx and upstream 5xx)
//    SendError(c, errors.SessionInvalidID, errors.WithDetails("..."))
//
// 2. SendSystemError - an unexpected internal error (500). The cause is
//    logged, never returned to the client.
//
// 3. SendScreenError - any error returned by a screen session, the registry
//    or the members API. It picks the code from the error chain.
//
// Never return echo.NewHTTPError or write error JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// SuccessResponse wraps successful payloads
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)
	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"error", cause,
	)
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError answers a *models.ValidationError with its field details
func SendValidationError(c echo.Context, verr *models.ValidationError) error {
	errorResponse := errors.NewValidationError(verr.Fields, getTraceID(c))
	return c.JSON(http.StatusBadRequest, errorResponse)
}

// SendScreenError maps errors from the screens layer to error codes
func SendScreenError(c echo.Context, err error) error {
	var (
		verr      *models.ValidationError
		loadErr   *collection.LoadError
		remoteErr *services.RemoteError
	)

	switch {
	case stderrors.Is(err, errInvalidSessionID):
		return SendError(c, errors.SessionInvalidID, errors.WithDetails(err.Error()))
	case stderrors.Is(err, errInvalidEntityID):
		return SendError(c, errors.EntityInvalidID, errors.WithDetails(err.Error()))
	case stderrors.Is(err, errInvalidJobID):
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	case stderrors.As(err, &verr):
		for _, message := range verr.Fields {
			if message == view.MsgUnknownFilter {
				return SendError(c, errors.ValidationUnknownFilter, errors.WithDetails(verr.Error()))
			}
		}
		return SendValidationError(c, verr)
	case stderrors.Is(err, screens.ErrSessionNotFound), stderrors.Is(err, screens.ErrUnmounted):
		return SendError(c, errors.SessionNotFound)
	case stderrors.Is(err, screens.ErrUnsupported):
		return SendError(c, errors.SessionUnsupported)
	case stderrors.Is(err, screens.ErrUnknownScreen):
		return SendError(c, errors.SessionUnknownScreen, errors.WithDetails(err.Error()))
	case stderrors.Is(err, screens.ErrLoading):
		return SendError(c, errors.SessionLoading)
	case stderrors.Is(err, screens.ErrJobNotFound):
		return SendError(c, errors.SessionBulkJobNotFound)
	case stderrors.Is(err, collection.ErrNotFound):
		return SendError(c, errors.EntityNotFound, errors.WithDetails(err.Error()))
	case stderrors.Is(err, screens.ErrRegistryClosed):
		return SendError(c, errors.SystemServiceUnavailable)
	case stderrors.As(err, &remoteErr):
		return SendError(c, errors.LoadRemoteRejected, errors.WithDetails(remoteErr.Error()))
	case stderrors.As(err, &loadErr), stderrors.Is(err, services.ErrCircuitBreakerOpen):
		response, cause := errors.WrapLoadError(err, getTraceID(c))
		slog.WarnContext(c.Request().Context(), "collaborator failure",
			"trace_id", response.Error.TraceID,
			"error", cause,
		)
		return c.JSON(response.GetHTTPStatus(), response)
	default:
		return SendSystemError(c, err)
	}
}
