package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"temple-admin/internal/models"
	"temple-admin/internal/services"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func jsonRequest(method, target string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

// authenticate sets the context values RequireAuth would
func authenticate(c echo.Context, role string) uuid.UUID {
	userID := uuid.New()
	c.Set(UserIDContextKey, userID)
	c.Set(UserEmailContextKey, "admin@temple.org")
	c.Set(UserRoleContextKey, role)
	c.Set(TraceIDContextKey, "trace-123")
	c.Set(ClaimsContextKey, &models.CustomClaims{UserID: userID.String(), Email: "admin@temple.org", Role: role})
	return userID
}

type errorBody struct {
	Success bool     `json:"success"`
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Error   string   `json:"error"`
	Details []string `json:"details"`
	TraceID string   `json:"traceId"`
}

type listBody struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    struct {
		Total  int64 `json:"total"`
		Limit  int   `json:"limit"`
		Offset int   `json:"offset"`
	} `json:"meta"`
}

func decodeError(rec *httptest.ResponseRecorder) errorBody {
	var body errorBody
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return body
}

func invalidInputErr(detail string) error {
	return fmt.Errorf("%w: %s", services.ErrInvalidInput, detail)
}
