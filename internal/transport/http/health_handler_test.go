package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kredata/internal/services"
)

func TestHealthCheck(t *testing.T) {
	t.Run("healthy with key", func(t *testing.T) {
		h := NewHealthHandler(services.NewHealthService("1.2.0", "2026-08-01", true), nil)
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, true, body["upstream_key_set"])
		assert.Equal(t, "1.2.0", body["version"])
	})

	t.Run("degraded without key", func(t *testing.T) {
		h := NewHealthHandler(services.NewHealthService("dev", "", false), nil)
		rec := httptest.NewRecorder()
		h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "degraded", body["status"])
	})
}

func TestVersion(t *testing.T) {
	h := NewHealthHandler(services.NewHealthService("1.2.0", "2026-08-01", true), nil)
	rec := httptest.NewRecorder()
	h.Version(rec, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "1.2.0", body["version"])
	assert.Equal(t, "2026-08-01", body["build_time"])
}
