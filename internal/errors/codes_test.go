package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

var allCodes = []ErrorCode{
	ValidationGeneral,
	ValidationRequiredField,
	ValidationInvalidFormat,
	ValidationOutOfRange,
	ValidationInvalidEmail,
	ValidationInvalidDate,
	ValidationUnknownFilter,
	SessionNotFound,
	SessionUnsupported,
	SessionUnknownScreen,
	SessionLoading,
	SessionBulkJobNotFound,
	SessionInvalidID,
	EntityNotFound,
	EntityInvalidID,
	LoadFetchFailed,
	LoadRemoteRejected,
	SystemInternalError,
	SystemDatabaseError,
	SystemServiceUnavailable,
	SystemConfigurationError,
	SystemUnexpectedError,
	SystemRateLimitExceeded,
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{name: "Validation General", code: ValidationGeneral, expected: "Validation failed"},
		{name: "Unknown Filter", code: ValidationUnknownFilter, expected: "Unknown filter for this screen"},
		{name: "Session Not Found", code: SessionNotFound, expected: "Screen session not found or expired"},
		{name: "Entity Not Found", code: EntityNotFound, expected: "Entity not found"},
		{name: "Load Fetch Failed", code: LoadFetchFailed, expected: "Failed to fetch data from the upstream service"},
		{
			name:     "System Internal Error",
			code:     SystemInternalError,
			expected: "An unexpected error occurred. Please contact support with trace ID",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range allCodes {
		s.Run(string(code), func() {
			s.True(IsValidErrorCode(code), "Expected %s to be valid", code)
		})
	}

	for _, code := range []ErrorCode{"INVALID_001", "UNKNOWN_CODE", "", "AUTH_001"} {
		s.Run("invalid "+string(code), func() {
			s.False(IsValidErrorCode(code), "Expected %s to be invalid", code)
		})
	}
}

// TestErrorCodeConstants_Uniqueness ensures all error codes are unique
func (s *CodesTestSuite) TestErrorCodeConstants_Uniqueness() {
	seen := make(map[ErrorCode]bool)
	for _, code := range allCodes {
		s.False(seen[code], "Duplicate error code found: %s", code)
		seen[code] = true
	}
}

// TestErrorCodeConstants_Format ensures every code carries a known prefix and a specific message
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"VALIDATION_", "SESSION_", "ENTITY_", "LOAD_", "SYSTEM_"}

	for _, code := range allCodes {
		s.Run(string(code), func() {
			matched := false
			for _, prefix := range prefixes {
				if strings.HasPrefix(string(code), prefix) {
					matched = true
				}
			}
			s.True(matched, "Error code %s has an unknown prefix", code)
			s.NotEqual("An error occurred", GetErrorMessage(code))
		})
	}
}
