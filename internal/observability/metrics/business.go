package metrics

import (
	"time"
)

// RecordVideosFetched records the number of videos fetched from a source.
// This metric helps track aggregation throughput and source activity.
func RecordVideosFetched(sourceID, sourceType string, count int) {
	VideosFetchedTotal.WithLabelValues(sourceID, sourceType).Add(float64(count))
}

// RecordSourceFetch records metrics for a single source fetch operation.
func RecordSourceFetch(sourceID string, duration time.Duration) {
	SourceFetchDuration.WithLabelValues(sourceID).Observe(duration.Seconds())
}

// RecordSourceFetchError records an error during a source fetch.
// The errorType label should be a coarse category (e.g. "http", "parse",
// "timeout") rather than the raw error string.
func RecordSourceFetchError(sourceID, errorType string) {
	SourceFetchErrors.WithLabelValues(sourceID, errorType).Inc()
}

// RecordSourceFetchFallback records a fetch that served synthetic fallback
// data instead of live results.
func RecordSourceFetchFallback(sourceID string) {
	SourceFetchFallbacks.WithLabelValues(sourceID).Inc()
}

// RecordAggregation records the duration of a full aggregation pass.
func RecordAggregation(duration time.Duration) {
	AggregationDuration.Observe(duration.Seconds())
}

// RecordFeedBuild records a feed build with its sort mode and duration.
func RecordFeedBuild(sort string, duration time.Duration) {
	FeedRequestsTotal.WithLabelValues(sort).Inc()
	FeedBuildDuration.Observe(duration.Seconds())
}

// UpdateVideosTotal updates the total count of videos in the catalog.
// This gauge should be updated after each aggregation pass.
func UpdateVideosTotal(count int) {
	VideosTotal.Set(float64(count))
}

// UpdateSourcesActive updates the count of active news sources.
func UpdateSourcesActive(count int) {
	SourcesActive.Set(float64(count))
}
