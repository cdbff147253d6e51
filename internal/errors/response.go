package errors

import (
	"fmt"
	"net/http"
	"slices"
)

// ErrorResponse is the JSON envelope every failed request answers with
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption adjusts a response built by NewErrorResponse
type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail lines
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message of the code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse builds the envelope for code with its default message
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationError renders field failures as "field: message" details,
// ordered by field name so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	slices.Sort(details)
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001. err is handed back for
// server-side logging only.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapLoadError hides a collaborator failure behind LOAD_001.
func WrapLoadError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(LoadFetchFailed, traceID), err
}

var httpStatus = map[ErrorCode]int{
	ValidationGeneral:       http.StatusBadRequest,
	ValidationRequiredField: http.StatusBadRequest,
	ValidationInvalidFormat: http.StatusBadRequest,
	ValidationOutOfRange:    http.StatusBadRequest,
	ValidationInvalidEmail:  http.StatusBadRequest,
	ValidationInvalidDate:   http.StatusBadRequest,
	ValidationUnknownFilter: http.StatusBadRequest,
	SessionInvalidID:        http.StatusBadRequest,
	EntityInvalidID:         http.StatusBadRequest,

	SessionNotFound:        http.StatusNotFound,
	SessionUnknownScreen:   http.StatusNotFound,
	SessionBulkJobNotFound: http.StatusNotFound,
	EntityNotFound:         http.StatusNotFound,

	SessionLoading:     http.StatusConflict,
	SessionUnsupported: http.StatusUnprocessableEntity,

	LoadFetchFailed:    http.StatusBadGateway,
	LoadRemoteRejected: http.StatusBadGateway,

	SystemRateLimitExceeded:  http.StatusTooManyRequests,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the status a code is sent with. Unlisted codes,
// including the remaining SYSTEM_ codes, are 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
