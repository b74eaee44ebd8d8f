package middleware

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"

	"temple-admin/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// NewHTTPErrorHandler returns an Echo error handler that formats every error
// as the standard envelope. The cause of server errors is only included when
// exposeDetails is set. Errors are counted on metrics when it is non-nil.
func NewHTTPErrorHandler(logger *slog.Logger, exposeDetails bool, metrics *HTTPMetrics) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		traceID := GetTraceID(c)
		if traceID == "" {
			traceID = "unknown"
		}

		var errorResponse *errors.ErrorResponse
		var httpStatus int

		var echoErr *echo.HTTPError
		var validationErrs validator.ValidationErrors
		switch {
		case stderrors.As(err, &echoErr):
			errorCode := mapHTTPStatusToErrorCode(echoErr.Code)
			errorResponse = errors.NewErrorResponse(
				errorCode,
				traceID,
				errors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
			)
			httpStatus = echoErr.Code
		case stderrors.As(err, &validationErrs):
			fieldErrors := make(map[string]string)
			for _, fieldErr := range validationErrs {
				fieldErrors[fieldErr.Field()] = formatValidationError(fieldErr)
			}
			errorResponse = errors.NewValidationError(fieldErrors, traceID)
			httpStatus = http.StatusBadRequest
		default:
			errorResponse, _ = errors.WrapSystemError(errors.SystemInternalError, err, traceID, exposeDetails)
			httpStatus = errorResponse.GetHTTPStatus()
		}

		logLevel := slog.LevelWarn
		if httpStatus >= 500 {
			logLevel = slog.LevelError
		}

		logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
			"trace_id", traceID,
			"error_code", errorResponse.Code,
			"status", httpStatus,
			"message", errorResponse.Message,
			"path", c.Request().URL.Path,
			"method", c.Request().Method,
			"error", err.Error(),
		)

		metrics.countError(errorResponse.Code, c.Path(), httpStatus)

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(httpStatus)
		} else {
			err = c.JSON(httpStatus, errorResponse)
		}
		if err != nil {
			logger.Error("Failed to send error response",
				"trace_id", traceID,
				"error", err.Error(),
			)
		}
	}
}

// mapHTTPStatusToErrorCode maps HTTP status codes to error codes
func mapHTTPStatusToErrorCode(status int) errors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity,
		http.StatusRequestEntityTooLarge, http.StatusUnsupportedMediaType:
		return errors.ValidationGeneral
	case http.StatusUnauthorized:
		return errors.AuthMissingToken
	case http.StatusForbidden:
		return errors.AuthInsufficientPermission
	case http.StatusNotFound:
		return errors.SystemRouteNotFound
	case http.StatusTooManyRequests:
		return errors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return errors.SystemInternalError
	case http.StatusServiceUnavailable:
		return errors.SystemServiceUnavailable
	default:
		return errors.SystemUnexpectedError
	}
}

// formatValidationError converts a validator.FieldError to a human-readable message
func formatValidationError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters long", fe.Param())
		}
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "uuid", "uuid4":
		return "must be a valid UUID"
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "decimal_amount":
		return "must be a positive amount with at most 2 decimal places"
	case "transaction_type":
		return "must be a valid transaction type (income, expense)"
	case "puja_status":
		return "must be a valid puja status (scheduled, completed, cancelled)"
	case "template_channel":
		return "must be a valid channel (email, sms, whatsapp)"
	case "donation_purpose":
		return "must be a valid donation purpose (general, puja, building_fund, annadanam, festival)"
	case "payment_method":
		return "must be a valid payment method (cash, card, bank_transfer, upi, cheque)"
	case "expense_category":
		return "must be a valid expense category (utilities, maintenance, puja_supplies, salaries, events, other)"
	case "member_role":
		return "must be a valid member role (member, trustee, priest, volunteer_lead)"
	case "record_status":
		return "must be active or inactive"
	case "user_role":
		return "must be a valid role (super_admin, admin, staff)"
	default:
		return fmt.Sprintf("failed validation for '%s'", fe.Tag())
	}
}
