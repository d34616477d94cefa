package middleware

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/suite"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo     *echo.Echo
	registry *prometheus.Registry
	logs     *bytes.Buffer
	handler  echo.HTTPErrorHandler
}

// SetupTest runs before each test
func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.registry = prometheus.NewRegistry()
	s.logs = &bytes.Buffer{}
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewJSONHandler(s.logs, nil)), s.registry)
	s.echo.HTTPErrorHandler = s.handler
}

// TestErrorHandlerTestSuite runs the test suite
func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/", nil)
	rec := httptest.NewRecorder()
	return s.echo.NewContext(req, rec), rec
}

func (s *ErrorHandlerTestSuite) errorCount(code string) float64 {
	families, err := s.registry.Gather()
	s.Require().NoError(err)

	var total float64
	for _, family := range families {
		if family.GetName() != "api_errors_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			if labelValue(metric, "code") == code {
				total += metric.GetCounter().GetValue()
			}
		}
	}
	return total
}

func labelValue(metric *dto.Metric, name string) string {
	for _, label := range metric.GetLabel() {
		if label.GetName() == name {
			return label.GetValue()
		}
	}
	return ""
}

// TestHTTPErrorHandler_EchoHTTPError tests handling of Echo HTTP errors
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_EchoHTTPError() {
	c, rec := s.newContext(http.MethodGet)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "test-trace-id")
	s.Contains(rec.Body.String(), "Resource not found")
	s.Contains(rec.Body.String(), "SYSTEM_007")
	s.Equal(1.0, s.errorCount("SYSTEM_007"))
}

// TestHTTPErrorHandler_GenericError tests handling of generic errors
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_GenericError() {
	c, rec := s.newContext(http.MethodGet)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(errors.New("generic error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "SYSTEM_001")
	s.Contains(rec.Body.String(), "test-trace-id")
	s.NotContains(rec.Body.String(), "generic error")
	s.Contains(s.logs.String(), `"level":"ERROR"`)
	s.Contains(s.logs.String(), "generic error")
}

// TestHTTPErrorHandler_WrappedHTTPError tests that wrapped echo errors keep their status
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_WrappedHTTPError() {
	c, rec := s.newContext(http.MethodGet)

	s.handler(fmt.Errorf("route: %w", echo.ErrMethodNotAllowed), c)

	s.Equal(http.StatusMethodNotAllowed, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(s.logs.String(), `"level":"WARN"`)
}

// TestHTTPErrorHandler_ValidationErrors tests handling of validator errors
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_ValidationErrors() {
	type params struct {
		SchoolID string `validate:"required"`
	}
	err := validator.New().Struct(params{})
	s.Require().Error(err)

	c, rec := s.newContext(http.MethodGet)
	s.handler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_001")
	s.Contains(rec.Body.String(), "SchoolID: is required")
}

// TestHTTPErrorHandler_NoTraceID tests error handling without trace ID
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_NoTraceID() {
	c, rec := s.newContext(http.MethodGet)

	s.handler(errors.New("test error"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), "unknown")
}

// TestHTTPErrorHandler_HeadRequest tests that HEAD requests get no body
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_HeadRequest() {
	c, rec := s.newContext(http.MethodHead)

	s.handler(echo.ErrNotFound, c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

// TestHTTPErrorHandler_CommittedResponse tests that handler doesn't process committed responses
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_CommittedResponse() {
	c, rec := s.newContext(http.MethodGet)

	_ = c.JSON(http.StatusOK, map[string]string{"status": "ok"})

	s.handler(errors.New("test error"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
	s.Zero(s.errorCount("SYSTEM_001"))
}

// TestMapHTTPStatusToErrorCode_AllStatuses tests error code mapping
func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode_AllStatuses() {
	testCases := []struct {
		status       int
		expectedCode string
	}{
		{http.StatusBadRequest, "VALIDATION_001"},
		{http.StatusNotFound, "SYSTEM_007"},
		{http.StatusMethodNotAllowed, "VALIDATION_001"},
		{http.StatusUnprocessableEntity, "VALIDATION_001"},
		{http.StatusTooManyRequests, "SYSTEM_006"},
		{http.StatusInternalServerError, "SYSTEM_001"},
		{http.StatusBadGateway, "UPSTREAM_001"},
		{http.StatusServiceUnavailable, "SYSTEM_003"},
		{http.StatusGatewayTimeout, "UPSTREAM_003"},
		{http.StatusUnauthorized, "SYSTEM_005"},
		{999, "SYSTEM_005"},
	}

	for _, tc := range testCases {
		s.Run(http.StatusText(tc.status), func() {
			c, rec := s.newContext(http.MethodGet)
			c.Set(TraceIDContextKey, "test-trace-id")

			s.handler(echo.NewHTTPError(tc.status), c)

			s.Equal(tc.status, rec.Code)
			s.Contains(rec.Body.String(), tc.expectedCode)
		})
	}
}

// TestHTTPErrorHandler_JSONFormat tests that response is valid JSON
func (s *ErrorHandlerTestSuite) TestHTTPErrorHandler_JSONFormat() {
	c, rec := s.newContext(http.MethodGet)
	c.Set(TraceIDContextKey, "test-trace-id")

	s.handler(errors.New("test error"), c)

	s.Contains(rec.Header().Get("Content-Type"), "application/json")
}
