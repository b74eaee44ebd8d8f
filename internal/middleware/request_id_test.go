package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"temple-admin/internal/handlers"
	"temple-admin/internal/services"
)

func TestRequestID(t *testing.T) {
	t.Run("generates a trace ID", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		var seen string
		h := RequestID()(func(c echo.Context) error {
			seen = GetTraceID(c)
			assert.Equal(t, seen, services.TraceID(c.Request().Context()))
			assert.Equal(t, seen, c.Get(handlers.TraceIDContextKey))
			return nil
		})
		require.NoError(t, h(c))

		_, err := uuid.Parse(seen)
		assert.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(TraceIDHeader))
	})

	t.Run("keeps an incoming trace ID", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(TraceIDHeader, "upstream-trace")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, RequestID()(func(c echo.Context) error { return nil })(c))
		assert.Equal(t, "upstream-trace", rec.Header().Get(TraceIDHeader))
	})

	t.Run("missing trace ID", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
		assert.Empty(t, GetTraceID(c))
	})
}
