package video

import (
	"context"
	"net/http"
	"strings"

	"videonews-feed/internal/common/pagination"
	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
	feedUC "videonews-feed/internal/usecase/feed"
)

// FeedService builds feed pages from the catalog and live aggregation.
type FeedService interface {
	Build(ctx context.Context, q feedUC.Query) ([]entity.Video, error)
}

// FeedResponse is the envelope for the video feed endpoint.
type FeedResponse struct {
	Success bool  `json:"success"`
	Videos  []DTO `json:"videos"`
	Total   int   `json:"total"`
}

// FeedHandler serves GET /videos.
type FeedHandler struct {
	Svc           FeedService
	PaginationCfg pagination.Config
}

// ServeHTTP parses the feed query parameters and returns one page of videos.
// All parameters are optional; malformed values fall back to defaults rather
// than producing an error.
func (h FeedHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	params := pagination.ParseQueryParams(query, h.PaginationCfg)

	q := feedUC.Query{
		Category:      query.Get("category"),
		Search:        query.Get("q"),
		Sort:          query.Get("sort"),
		Limit:         params.Limit,
		Offset:        params.Offset,
		Duration:      query.Get("duration"),
		Source:        query.Get("source"),
		Language:      query.Get("language"),
		Exclude:       query.Get("exclude"),
		Subscriptions: parseCSV(query.Get("subscriptions")),
		LastViewed:    parseCSV(query.Get("lastViewed")),
		IncludeFrench: query.Get("includeFrench") == "true",
	}

	videos, err := h.Svc.Build(r.Context(), q)
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := ToDTOs(videos)
	respond.JSON(w, http.StatusOK, FeedResponse{
		Success: true,
		Videos:  out,
		Total:   len(out),
	})
}

// parseCSV splits a comma-separated parameter into trimmed, non-empty values.
func parseCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
