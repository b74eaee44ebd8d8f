package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	apierrors "temple-admin/internal/errors"
	"temple-admin/internal/validation"
)

// ErrorHandlerTestSuite defines the test suite for error handler middleware
type ErrorHandlerTestSuite struct {
	suite.Suite
	echo    *echo.Echo
	handler echo.HTTPErrorHandler
}

func (s *ErrorHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.handler = NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), false, nil)
	s.echo.HTTPErrorHandler = s.handler
}

func TestErrorHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ErrorHandlerTestSuite))
}

func (s *ErrorHandlerTestSuite) newContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(httptest.NewRequest(method, "/", nil), rec)
	c.Set(TraceIDContextKey, "test-trace-id")
	return c, rec
}

func (s *ErrorHandlerTestSuite) decode(rec *httptest.ResponseRecorder) apierrors.ErrorResponse {
	var body apierrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ErrorHandlerTestSuite) TestEchoHTTPError() {
	c, rec := s.newContext(http.MethodGet)

	s.handler(echo.NewHTTPError(http.StatusNotFound, "Resource not found"), c)

	s.Equal(http.StatusNotFound, rec.Code)
	body := s.decode(rec)
	s.Equal(string(apierrors.SystemRouteNotFound), body.Code)
	s.Equal("Resource not found", body.Message)
	s.Equal("test-trace-id", body.TraceID)
	s.False(body.Success)
}

func (s *ErrorHandlerTestSuite) TestGenericErrorHidesCause() {
	c, rec := s.newContext(http.MethodGet)

	s.handler(errors.New("pq: relation does not exist"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	body := s.decode(rec)
	s.Equal(string(apierrors.SystemInternalError), body.Code)
	s.NotContains(rec.Body.String(), "relation does not exist")
}

func (s *ErrorHandlerTestSuite) TestGenericErrorExposedInDevelopment() {
	handler := NewHTTPErrorHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), true, nil)
	c, rec := s.newContext(http.MethodGet)

	handler(errors.New("pq: relation does not exist"), c)

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal("pq: relation does not exist", s.decode(rec).Error)
}

func (s *ErrorHandlerTestSuite) TestValidationErrors() {
	type request struct {
		Amount string `json:"amount" validate:"required,decimal_amount"`
	}
	err := validation.GetValidator().Struct(&request{Amount: "1.234"})
	s.Require().Error(err)

	c, rec := s.newContext(http.MethodPost)
	s.handler(err, c)

	s.Equal(http.StatusBadRequest, rec.Code)
	body := s.decode(rec)
	s.Equal(string(apierrors.ValidationGeneral), body.Code)
	s.Equal([]string{"amount: must be a positive amount with at most 2 decimal places"}, body.Details)
}

func (s *ErrorHandlerTestSuite) TestHeadRequest() {
	c, rec := s.newContext(http.MethodHead)

	s.handler(echo.NewHTTPError(http.StatusNotFound), c)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Empty(rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestCommittedResponseIsLeftAlone() {
	c, rec := s.newContext(http.MethodGet)
	s.Require().NoError(c.String(http.StatusOK, "done"))

	s.handler(errors.New("late failure"), c)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("done", rec.Body.String())
}

func (s *ErrorHandlerTestSuite) TestMapHTTPStatusToErrorCode() {
	cases := map[int]apierrors.ErrorCode{
		http.StatusBadRequest:            apierrors.ValidationGeneral,
		http.StatusRequestEntityTooLarge: apierrors.ValidationGeneral,
		http.StatusUnauthorized:          apierrors.AuthMissingToken,
		http.StatusForbidden:             apierrors.AuthInsufficientPermission,
		http.StatusNotFound:              apierrors.SystemRouteNotFound,
		http.StatusTooManyRequests:       apierrors.SystemRateLimitExceeded,
		http.StatusServiceUnavailable:    apierrors.SystemServiceUnavailable,
		http.StatusTeapot:                apierrors.SystemUnexpectedError,
	}
	for status, code := range cases {
		s.Equal(code, mapHTTPStatusToErrorCode(status), "status %d", status)
	}
}
