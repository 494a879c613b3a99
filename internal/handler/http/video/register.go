package video

import (
	"net/http"

	"videonews-feed/internal/common/pagination"
)

// Register registers the public video routes with the given mux.
// feedLimiter guards the search-capable feed endpoint; pass nil to disable
// rate limiting (tests).
func Register(mux *http.ServeMux, feed FeedService, lookup LookupService, paginationCfg pagination.Config, feedLimiter func(http.Handler) http.Handler) {
	var feedHandler http.Handler = FeedHandler{Svc: feed, PaginationCfg: paginationCfg}
	if feedLimiter != nil {
		feedHandler = feedLimiter(feedHandler)
	}

	mux.Handle("GET /videos", feedHandler)
	mux.Handle("GET /videos/{id}", GetHandler{Svc: lookup})
}
