package source

import (
	"errors"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
)

// MetricsService exposes the per-source health snapshot.
type MetricsService interface {
	SourceMetrics(sourceID string) (entity.SourceMetrics, bool)
}

// MetricsResponse wraps one source's metrics snapshot.
type MetricsResponse struct {
	Success bool                 `json:"success"`
	Metrics entity.SourceMetrics `json:"metrics"`
}

// MetricsHandler serves GET /sources/{id}/metrics. A source that has never
// been synced has no snapshot and yields 404.
type MetricsHandler struct {
	Svc MetricsService
}

func (h MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	m, ok := h.Svc.SourceMetrics(id)
	if !ok {
		respond.SafeError(w, http.StatusNotFound, errors.New("source metrics not found"))
		return
	}
	respond.JSON(w, http.StatusOK, MetricsResponse{Success: true, Metrics: m})
}
