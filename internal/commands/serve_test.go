package commands

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/backoffice_app/internal/adapters/memory"
	"github.com/SscSPs/backoffice_app/internal/core/services"
	"github.com/SscSPs/backoffice_app/internal/middleware"
	"github.com/SscSPs/backoffice_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine(t *testing.T, rateLimit string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{
		IsProduction:       true,
		RateLimit:          rateLimit,
		CORSAllowedOrigins: []string{"http://localhost:3000"},
		ToastTTL:           time.Second,
		DashboardToday:     time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC),
		PreviewSize:        2,
		DefaultUserID:      "u-amy",
	}
	container := services.NewServiceContainer(cfg, memory.NewRepositoryProvider(memory.NewStore()), nil)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	r, err := newEngine(cfg, logger, container, nil)
	require.NoError(t, err)
	return r
}

func TestNewEngine_Health(t *testing.T) {
	r := testEngine(t, "100-M")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.Equal(t, "100", w.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
}

func TestNewEngine_RateLimited(t *testing.T) {
	r := testEngine(t, "1-M")

	first := httptest.NewRecorder()
	r.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	assert.Equal(t, http.StatusOK, first.Code)

	second := httptest.NewRecorder()
	r.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil))
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
}

func TestNewEngine_CORSPreflight(t *testing.T) {
	r := testEngine(t, "100-M")

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/orders", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", middleware.ActorHeader)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewEngine_InvalidRateLimit(t *testing.T) {
	cfg := &config.Config{RateLimit: "lots"}
	_, err := newEngine(cfg, slog.Default(), nil, nil)
	assert.Error(t, err)
}

func TestCORSConfig_EmptyOriginsAllowsAll(t *testing.T) {
	c := corsConfig(nil)
	assert.True(t, c.AllowAllOrigins)
	assert.False(t, c.AllowCredentials)
	assert.NoError(t, c.Validate())

	c = corsConfig([]string{"http://localhost:3000"})
	assert.False(t, c.AllowAllOrigins)
	assert.NoError(t, c.Validate())
}
