package handlers

import (
	stderrors "errors"
	"strconv"
	"strings"
	"time"

	"temple-admin/internal/errors"
	"temple-admin/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ErrUnauthorized is returned when user context is invalid
var ErrUnauthorized = stderrors.New("unauthorized")

// errBadQuery reports a malformed query parameter; its message names the parameter
type errBadQuery struct {
	param string
	code  errors.ErrorCode
}

func (e *errBadQuery) Error() string {
	return "invalid query parameter " + e.param
}

func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get(UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, ErrUnauthorized
	}
	return userID, nil
}

func getClaimsFromContext(c echo.Context) (*models.CustomClaims, error) {
	claims, ok := c.Get(ClaimsContextKey).(*models.CustomClaims)
	if !ok || claims == nil {
		return nil, ErrUnauthorized
	}
	return claims, nil
}

// actorFromContext builds the audit actor for the authenticated caller
func actorFromContext(c echo.Context) models.Actor {
	userID, _ := c.Get(UserIDContextKey).(uuid.UUID)
	role, _ := c.Get(UserRoleContextKey).(string)
	return models.Actor{
		UserID:    userID,
		Role:      role,
		IPAddress: getClientIP(c),
		UserAgent: c.Request().UserAgent(),
	}
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(param)
	if err != nil {
		return defaultValue
	}

	return value
}

// listOptions reads limit and offset and clamps them
func listOptions(c echo.Context) models.ListOptions {
	return models.ListOptions{
		Limit:  getIntParam(c, "limit", models.DefaultListLimit),
		Offset: getIntParam(c, "offset", 0),
	}.Normalize()
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}

// parseIDParam reads a UUID path parameter
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, &errBadQuery{param: name, code: errors.ValidationInvalidID}
	}
	return id, nil
}

// optionalUUIDQuery reads an optional UUID query parameter
func optionalUUIDQuery(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, &errBadQuery{param: name, code: errors.ValidationInvalidID}
	}
	return &id, nil
}

const dateLayout = "2006-01-02"

// optionalTimeQuery accepts RFC 3339 timestamps or plain YYYY-MM-DD dates
func optionalTimeQuery(c echo.Context, name string) (*time.Time, error) {
	t, _, err := parseTimeQuery(c, name)
	return t, err
}

// optionalUpperBoundQuery is optionalTimeQuery for inclusive "to" bounds: a
// plain date covers the whole day.
func optionalUpperBoundQuery(c echo.Context, name string) (*time.Time, error) {
	t, dateOnly, err := parseTimeQuery(c, name)
	if err != nil || t == nil || !dateOnly {
		return t, err
	}
	end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return &end, nil
}

func parseTimeQuery(c echo.Context, name string) (*time.Time, bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, false, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		t = t.UTC()
		return &t, false, nil
	}
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return &t, true, nil
	}
	return nil, false, &errBadQuery{param: name, code: errors.ValidationInvalidDate}
}

// sendBadRequest converts parse failures from the helpers above into envelopes
func sendBadRequest(c echo.Context, err error) error {
	var badQuery *errBadQuery
	if stderrors.As(err, &badQuery) {
		return SendError(c, badQuery.code, errors.WithDetails(badQuery.Error()))
	}
	return SendError(c, errors.ValidationGeneral, errors.WithDetails(err.Error()))
}

// bindAndValidate decodes the body into req and runs the struct validator.
// Validation errors are returned unchanged for the HTTP error handler.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, err
	}
	return true, nil
}
