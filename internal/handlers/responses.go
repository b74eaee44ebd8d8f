package handlers

import (
	"log/slog"
	"net/http"

	"temple-admin/internal/dto"
	"temple-admin/internal/errors"

	"github.com/labstack/echo/v4"
)

// All handlers report failures through SendError (client and business rule
// errors) or SendSystemError (500s). SendSystemError only copies the cause
// into the response when ExposeErrorDetails has been applied with true.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// ExposeErrorsContextKey marks requests whose 500 responses carry the cause
	ExposeErrorsContextKey = "expose_error_details"

	UserIDContextKey    = "user_id"
	UserEmailContextKey = "user_email"
	UserRoleContextKey  = "user_role"
	ClaimsContextKey    = "claims"
)

// SuccessResponse represents a standard success response
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// ExposeErrorDetails records whether server error causes may be returned to clients
func ExposeErrorDetails(expose bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(ExposeErrorsContextKey, expose)
			return next(c)
		}
	}
}

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

func exposeErrors(c echo.Context) bool {
	expose, _ := c.Get(ExposeErrorsContextKey).(bool)
	return expose
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	errorResponse := errors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError logs err and sends a 500 envelope for code
func SendSystemError(c echo.Context, code errors.ErrorCode, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(code, err, traceID, exposeErrors(c))

	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", traceID,
		"error_code", errorResponse.Code,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendData writes a 200 envelope around data
func SendData(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// SendCreated writes a 201 envelope around data
func SendCreated(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// SendList writes a page of items with its pagination meta
func SendList(c echo.Context, items interface{}, total int64, limit, offset int) error {
	return c.JSON(http.StatusOK, SuccessResponse{
		Success: true,
		Data:    items,
		Meta:    dto.ListMeta{Total: total, Limit: limit, Offset: offset},
	})
}

// SendDeleted writes a 200 envelope with a confirmation message
func SendDeleted(c echo.Context, message string) error {
	return c.JSON(http.StatusOK, SuccessResponse{Success: true, Message: message})
}
