package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRateLimitedRouter(rate int, window time.Duration) (*gin.Engine, *RateLimiter) {
	gin.SetMode(gin.TestMode)

	rl := NewRateLimiter(rate, window)
	router := gin.New()
	router.Use(rl.RateLimit())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return router, rl
}

func TestRateLimiter_AllowsWithinLimit(t *testing.T) {
	router, rl := newRateLimitedRouter(3, time.Minute)
	defer rl.Stop()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code, "request %d", i+1)
	}
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	router, rl := newRateLimitedRouter(2, time.Minute)
	defer rl.Stop()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		last = httptest.NewRecorder()
		router.ServeHTTP(last, req)
	}

	require.Equal(t, http.StatusTooManyRequests, last.Code)
	assert.Equal(t, "2", last.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "0", last.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, last.Header().Get("Retry-After"))
	assert.Contains(t, last.Body.String(), "rate_limit_exceeded")
}

func TestRateLimiter_WindowResets(t *testing.T) {
	router, rl := newRateLimitedRouter(1, 10*time.Millisecond)
	defer rl.Stop()

	send := func() int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.3:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send())
	require.Equal(t, http.StatusTooManyRequests, send())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, http.StatusOK, send())
}

func TestRateLimiter_TracksClientsIndependently(t *testing.T) {
	router, rl := newRateLimitedRouter(1, time.Minute)
	defer rl.Stop()

	send := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, send("10.0.0.4:1234"))
	require.Equal(t, http.StatusTooManyRequests, send("10.0.0.4:1234"))
	assert.Equal(t, http.StatusOK, send("10.0.0.5:1234"))
}
