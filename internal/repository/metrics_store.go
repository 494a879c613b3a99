package repository

import "videonews-feed/internal/domain/entity"

// MetricsStore holds per-source aggregation metrics for the process
// lifetime. Updates are keyed by source id with last-write-wins semantics;
// concurrent updates to different keys never block each other and no
// cross-key transaction exists. No context parameter: the store is pure
// in-memory state with no blocking operations.
type MetricsStore interface {
	// Update applies fn to the current snapshot for sourceID, creating a
	// baseline snapshot first if none exists.
	Update(sourceID string, fn func(*entity.SourceMetrics))
	Get(sourceID string) (entity.SourceMetrics, bool)
	All() []entity.SourceMetrics
}
