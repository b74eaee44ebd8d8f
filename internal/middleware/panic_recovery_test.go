package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPanicRecovery(t *testing.T) {
	t.Run("recovers and writes a 500 envelope", func(t *testing.T) {
		var logs bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&logs, nil))

		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil), rec)
		c.Set(TraceIDContextKey, "panic-trace")

		h := PanicRecovery(logger)(func(c echo.Context) error {
			panic("ledger exploded")
		})

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, rec.Body.String(), "SYSTEM_001")
		assert.Contains(t, rec.Body.String(), "panic-trace")
		assert.NotContains(t, rec.Body.String(), "ledger exploded")
		assert.Contains(t, logs.String(), "ledger exploded")
	})

	t.Run("passes through when nothing panics", func(t *testing.T) {
		e := echo.New()
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		h := PanicRecovery(slog.New(slog.NewTextHandler(io.Discard, nil)))(func(c echo.Context) error {
			return c.String(http.StatusOK, "fine")
		})

		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("re-panics on ErrAbortHandler", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		h := PanicRecovery(slog.New(slog.NewTextHandler(io.Discard, nil)))(func(c echo.Context) error {
			panic(http.ErrAbortHandler)
		})

		assert.PanicsWithValue(t, http.ErrAbortHandler, func() { _ = h(c) })
	})
}
