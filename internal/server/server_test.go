package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgserver "github.com/DjordjeVuckovic/rpn-calc/pkg/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{Port: "8080", CorsOrigins: []string{"*"}, MaxExpressionLength: DefaultMaxExpressionLength}
}

func TestServer_HealthCheck(t *testing.T) {
	healthy := true
	s := New(testConfig(), pkgserver.HealthCheckerFunc(func(ctx context.Context) bool { return healthy })).
		SetupMiddlewares().
		SetupErrorHandler().
		SetupHealthChecks("/health")

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	healthy = false
	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	s.WithHealthChecker(pkgserver.NewOkHealthChecker())
	rec = httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServer_UnknownRouteUsesErrorHandler(t *testing.T) {
	s := New(testConfig(), nil).SetupErrorHandler()

	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "error")
}

func TestServer_Context(t *testing.T) {
	s := New(testConfig(), nil)
	require.NoError(t, s.Context().Err())
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("USE_HTTP2", "")
		t.Setenv("CORS_ORIGINS", "")
		t.Setenv("MAX_EXPRESSION_LENGTH", "")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Port)
		assert.False(t, cfg.UseHttp2)
		assert.Equal(t, []string{"*"}, cfg.CorsOrigins)
		assert.Equal(t, DefaultMaxExpressionLength, cfg.MaxExpressionLength)
	})

	t.Run("explicit values", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("USE_HTTP2", "true")
		t.Setenv("CORS_ORIGINS", "http://a.com, ,http://b.com")
		t.Setenv("MAX_EXPRESSION_LENGTH", "64")

		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.UseHttp2)
		assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.CorsOrigins)
		assert.Equal(t, 64, cfg.MaxExpressionLength)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("invalid max length", func(t *testing.T) {
		t.Setenv("PORT", "")
		t.Setenv("MAX_EXPRESSION_LENGTH", "0")
		_, err := LoadConfig()
		assert.Error(t, err)
	})
}
