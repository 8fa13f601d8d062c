package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Erasmo-Dev/Cervejaria/internal/rate_limiter"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func SetupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func get(router http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHealthHandler(t *testing.T) {
	router := SetupTestRouter()
	health := NewHealth("2.0.0")
	router.GET("/health", health.Handler())

	w := get(router, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var status HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "2.0.0", status.Version)

	health.UpdateStatus("shutting_down")

	w = get(router, "/health", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "shutting_down", status.Status)
}

func TestHealthHandlerCachesResponse(t *testing.T) {
	router := SetupTestRouter()
	router.GET("/health", NewHealth("1.0.0").Handler())

	first := get(router, "/health", nil)
	second := get(router, "/health", nil)

	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRecoveryMiddleware(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	router := SetupTestRouter()
	router.Use(RecoveryMiddleware(zap.New(core)))
	router.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := get(router, "/panic", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, 1, logs.FilterMessage("Panic recovered").Len())
}

func TestTimeoutMiddleware(t *testing.T) {
	router := SetupTestRouter()
	router.Use(TimeoutMiddleware(50 * time.Millisecond))

	var deadline time.Time
	var hasDeadline bool
	router.GET("/slow", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		<-c.Request.Context().Done()
		assert.ErrorIs(t, c.Request.Context().Err(), context.DeadlineExceeded)
		c.Status(http.StatusGatewayTimeout)
	})

	w := get(router, "/slow", nil)

	assert.True(t, hasDeadline)
	assert.False(t, deadline.IsZero())
	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestRequestIDMiddleware(t *testing.T) {
	router := SetupTestRouter()
	router.Use(RequestIDMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(RequestIDKey))
	})

	w := get(router, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	assert.Equal(t, "abc-123", w.Body.String())

	w = get(router, "/ping", nil)
	generated := w.Header().Get(RequestIDHeader)
	_, err := uuid.Parse(generated)
	assert.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())
}

func TestRequestLoggerMiddleware(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	router := SetupTestRouter()
	router.Use(RequestIDMiddleware(), RequestLoggerMiddleware(zap.New(core)))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusTeapot)
	})

	get(router, "/ping", nil)

	entries := logs.FilterMessage("Handled request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, int64(http.StatusTeapot), fields["status"])
	assert.Equal(t, "/ping", fields["path"])
	assert.NotEmpty(t, fields["request_id"])
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := rate_limiter.NewRateLimiter(2, time.Minute)
	defer rl.Stop()

	router := SetupTestRouter()
	router.Use(RateLimitMiddleware(rl))
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := get(router, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))

	w = get(router, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))

	w = get(router, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
