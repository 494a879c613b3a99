package worker

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"log/slog"
)

func TestHealthServer_Probes(t *testing.T) {
	h := NewHealthServer(":0", slog.Default())

	t.Run("liveness always alive", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.handleLiveness(w, httptest.NewRequest("GET", "/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"alive"}`, w.Body.String())
	})

	t.Run("not ready before SetReady", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.handleReadiness(w, httptest.NewRequest("GET", "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"status":"not ready"}`, w.Body.String())
	})

	t.Run("ready after SetReady", func(t *testing.T) {
		h.SetReady(true)

		w := httptest.NewRecorder()
		h.handleReadiness(w, httptest.NewRequest("GET", "/health/ready", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"status":"ready"}`, w.Body.String())
	})

	t.Run("ready can be revoked", func(t *testing.T) {
		h.SetReady(false)

		w := httptest.NewRecorder()
		h.handleReadiness(w, httptest.NewRequest("GET", "/health/ready", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
