package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"churchconnect/internal/errors"
)

type PanicRecoveryTestSuite struct {
	suite.Suite
	echo *echo.Echo
}

func (s *PanicRecoveryTestSuite) SetupTest() {
	s.echo = echo.New()
}

func TestPanicRecoveryTestSuite(t *testing.T) {
	suite.Run(t, new(PanicRecoveryTestSuite))
}

func (s *PanicRecoveryTestSuite) run(traceID string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(http.MethodPut, "/api/v1/sessions/x/page", nil), rec)
	if traceID != "" {
		c.Set(TraceIDContextKey, traceID)
	}
	s.NotPanics(func() {
		_ = PanicRecovery()(h)(c)
	})
	return rec
}

// TestPanicRecovery_Values tests recovery from the kinds of values handlers panic with
func (s *PanicRecoveryTestSuite) TestPanicRecovery_Values() {
	values := map[string]interface{}{
		"string": "index out of range",
		"int":    7,
		"error":  fmt.Errorf("assignment to entry in nil map"),
		"struct": struct{ page int }{page: -1},
	}

	for name, value := range values {
		s.Run(name, func() {
			rec := s.run("trace-1", func(echo.Context) error { panic(value) })

			s.Equal(http.StatusInternalServerError, rec.Code)
			var resp errors.ErrorResponse
			s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
			s.Equal(string(errors.SystemInternalError), resp.Error.Code)
			s.Equal("trace-1", resp.Error.TraceID)
		})
	}
}

// TestPanicRecovery_UnknownTrace tests the placeholder trace ID
func (s *PanicRecoveryTestSuite) TestPanicRecovery_UnknownTrace() {
	rec := s.run("", func(echo.Context) error { panic("boom") })

	var resp errors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal("unknown", resp.Error.TraceID)
}

// TestPanicRecovery_PassThrough tests that normal responses are untouched
func (s *PanicRecoveryTestSuite) TestPanicRecovery_PassThrough() {
	rec := s.run("trace-2", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]int{"page": 2})
	})

	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"page":2}`, rec.Body.String())
}

// TestPanicRecovery_CommittedResponse tests that a partial response is not overwritten
func (s *PanicRecoveryTestSuite) TestPanicRecovery_CommittedResponse() {
	rec := s.run("trace-3", func(c echo.Context) error {
		_ = c.String(http.StatusOK, "partial")
		panic("after write")
	})

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("partial", rec.Body.String())
}
