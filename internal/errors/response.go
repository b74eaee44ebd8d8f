package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
)

// ErrorResponse is the uniform JSON error envelope returned by every endpoint.
// Error carries the underlying cause for server errors when details are exposed,
// and the first detail (or the message) otherwise.
type ErrorResponse struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"traceId,omitempty"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Details = details
		if len(details) > 0 {
			er.Error = details[0]
		}
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Message = message
	}
}

// WithCause records the underlying error message
func WithCause(err error) ErrorOption {
	return func(er *ErrorResponse) {
		if err != nil {
			er.Error = err.Error()
		}
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	message := GetErrorMessage(code)
	response := &ErrorResponse{
		Success: false,
		Code:    string(code),
		Message: message,
		Error:   message,
		TraceID: traceID,
	}

	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}

	return NewErrorResponse(ValidationGeneral, traceID,
		WithDetails(details...),
		WithCause(fmt.Errorf("%s", strings.Join(details, "; "))),
	)
}

// WrapSystemError wraps an internal error. The cause is only copied into the
// response when exposeCause is set; it is returned for server-side logging.
func WrapSystemError(code ErrorCode, err error, traceID string, exposeCause bool) (*ErrorResponse, error) {
	response := NewErrorResponse(code, traceID)
	if exposeCause {
		WithCause(err)(response)
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidID, ValidationInvalidDate, TransactionInvalidAmount:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken, AuthInvalidTokenFormat:
		return http.StatusUnauthorized

	case AuthInsufficientPermission:
		return http.StatusForbidden

	case CommunityNotFound, MemberNotFound, ApplicationNotFound, DonationNotFound,
		ExpenseNotFound, VolunteerNotFound, PujaNotFound, TemplateNotFound,
		TransactionNotFound, UserNotFound, SystemRouteNotFound:
		return http.StatusNotFound

	case CommunityAlreadyExists, MemberAlreadyExists, ApplicationAlreadyReviewed,
		PujaScheduleConflict, PujaInvalidState, TemplateAlreadyExists,
		TransactionReadOnly, AuthUserExists:
		return http.StatusConflict

	case TemplateMissingVariable:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatus returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	return er.GetHTTPStatus() >= 500
}

func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Code, er.Message, er.TraceID)
}
