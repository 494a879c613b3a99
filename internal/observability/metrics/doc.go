// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count, size)
//   - Business metrics (videos, sources, aggregation passes)
//   - Feed build performance metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "videonews-feed/internal/observability/metrics"
//
//	func fetchSource(sourceID string) {
//	    start := time.Now()
//	    // ... fetch videos ...
//	    count := 10
//
//	    metrics.RecordVideosFetched(sourceID, "youtube", count)
//	    metrics.RecordSourceFetch(sourceID, time.Since(start))
//	}
package metrics
