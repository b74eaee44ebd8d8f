package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPRateLimiter_Allow(t *testing.T) {
	limiter := NewIPRateLimiter(1, 3)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	for i := 0; i < 3; i++ {
		assert.True(t, limiter.Allow("192.168.1.100"), "request %d within burst", i)
	}
	assert.False(t, limiter.Allow("192.168.1.100"))
	assert.True(t, limiter.Allow("192.168.1.101"), "other clients have their own bucket")

	now = now.Add(time.Second)
	assert.True(t, limiter.Allow("192.168.1.100"), "bucket refills over time")
}

func TestIPRateLimiter_Middleware(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	e := echo.New()
	h := limiter.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.9, 10.0.0.1")
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec
	}

	assert.Equal(t, http.StatusOK, send().Code)

	rec := send()
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_005")
}

func TestIPRateLimiter_IgnoresSpoofedForwardedFor(t *testing.T) {
	limiter := NewIPRateLimiter(1, 1)
	e := echo.New()
	e.IPExtractor = NewIPExtractor(nil)
	h := limiter.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	send := func(forwardedFor string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/summary", nil)
		req.RemoteAddr = "198.51.100.7:50123"
		req.Header.Set("X-Forwarded-For", forwardedFor)
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(req, rec)))
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, send("203.0.113.1"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.2"))
	assert.Equal(t, http.StatusTooManyRequests, send("203.0.113.3"))
}

func TestNewIPExtractor_TrustedProxy(t *testing.T) {
	extract := NewIPExtractor([]string{"10.0.0.0/8"})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.1.2.3:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "203.0.113.9", extract(req))

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "198.51.100.7:443"
	req.Header.Set("X-Forwarded-For", "203.0.113.9")
	assert.Equal(t, "198.51.100.7", extract(req))
}

func TestIPRateLimiter_Evict(t *testing.T) {
	limiter := NewIPRateLimiter(10, 10)
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	limiter.now = func() time.Time { return now }

	limiter.Allow("10.0.0.1")
	now = now.Add(2 * time.Minute)
	limiter.Allow("10.0.0.2")
	require.Equal(t, 2, limiter.size())

	now = now.Add(2 * time.Minute)
	limiter.evict()

	assert.Equal(t, 1, limiter.size())
}
