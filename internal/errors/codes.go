package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_006"
	ValidationUnknownFilter ErrorCode = "VALIDATION_007"
)

// Session error codes (SESSION_*)
const (
	SessionNotFound        ErrorCode = "SESSION_001"
	SessionUnsupported     ErrorCode = "SESSION_002"
	SessionUnknownScreen   ErrorCode = "SESSION_003"
	SessionLoading         ErrorCode = "SESSION_004"
	SessionBulkJobNotFound ErrorCode = "SESSION_005"
	SessionInvalidID       ErrorCode = "SESSION_006"
)

// Entity error codes (ENTITY_*)
const (
	EntityNotFound  ErrorCode = "ENTITY_001"
	EntityInvalidID ErrorCode = "ENTITY_002"
)

// Load error codes (LOAD_*)
const (
	LoadFetchFailed    ErrorCode = "LOAD_001"
	LoadRemoteRejected ErrorCode = "LOAD_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",
	ValidationUnknownFilter: "Unknown filter for this screen",

	// Session errors
	SessionNotFound:        "Screen session not found or expired",
	SessionUnsupported:     "Operation not supported on this screen",
	SessionUnknownScreen:   "Unknown screen",
	SessionLoading:         "Screen data is still loading",
	SessionBulkJobNotFound: "Bulk email job not found",
	SessionInvalidID:       "Invalid session ID format",

	// Entity errors
	EntityNotFound:  "Entity not found",
	EntityInvalidID: "Invalid entity ID",

	// Load errors
	LoadFetchFailed:    "Failed to fetch data from the upstream service",
	LoadRemoteRejected: "The upstream service rejected the request",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
