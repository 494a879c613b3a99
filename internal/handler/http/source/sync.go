package source

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
	"videonews-feed/internal/usecase/aggregate"
)

// SyncService runs aggregation passes over the configured sources.
type SyncService interface {
	AggregateAll(ctx context.Context) ([]entity.VideoImport, *aggregate.Stats, error)
	SyncSource(ctx context.Context, sourceID string) (*aggregate.SyncReport, error)
	AllMetrics() []entity.SourceMetrics
}

// SingleSyncResponse is returned when a sourceId was supplied.
type SingleSyncResponse struct {
	Success        bool                 `json:"success"`
	Source         string               `json:"source"`
	VideosImported int                  `json:"videosImported"`
	Videos         []entity.VideoImport `json:"videos"`
}

// FullSyncResponse is returned for a full aggregation run.
type FullSyncResponse struct {
	Success      bool                   `json:"success"`
	TotalSources int                    `json:"totalSources"`
	TotalVideos  int                    `json:"totalVideos"`
	Metrics      []entity.SourceMetrics `json:"metrics"`
}

// SyncHandler serves POST /sources/sync. With a sourceId it syncs that one
// source; without, it runs the full aggregation pass.
type SyncHandler struct {
	Svc SyncService
}

func (h SyncHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceID string `json:"sourceId"`
	}
	// An empty body means "sync everything"
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if req.SourceID != "" {
		h.syncOne(w, r, req.SourceID)
		return
	}
	h.syncAll(w, r)
}

func (h SyncHandler) syncOne(w http.ResponseWriter, r *http.Request, sourceID string) {
	report, err := h.Svc.SyncSource(r.Context(), sourceID)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	videos := report.Videos
	if videos == nil {
		videos = []entity.VideoImport{}
	}

	respond.JSON(w, http.StatusOK, SingleSyncResponse{
		Success:        true,
		Source:         report.SourceName,
		VideosImported: report.Fetched,
		Videos:         videos,
	})
}

func (h SyncHandler) syncAll(w http.ResponseWriter, r *http.Request) {
	videos, stats, err := h.Svc.AggregateAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	metrics := h.Svc.AllMetrics()
	if metrics == nil {
		metrics = []entity.SourceMetrics{}
	}

	respond.JSON(w, http.StatusOK, FullSyncResponse{
		Success:      true,
		TotalSources: stats.Sources,
		TotalVideos:  len(videos),
		Metrics:      metrics,
	})
}
