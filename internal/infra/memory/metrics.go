package memory

import (
	"sort"
	"sync"

	"videonews-feed/internal/domain/entity"
)

// MetricsStore is the in-memory per-source metrics store. Writes are
// last-write-wins per source id; parallel fetch completions update
// different keys without coordinating beyond the store lock.
type MetricsStore struct {
	mu   sync.Mutex
	data map[string]entity.SourceMetrics
}

// NewMetricsStore returns an empty metrics store.
func NewMetricsStore() *MetricsStore {
	return &MetricsStore{data: make(map[string]entity.SourceMetrics)}
}

// Update applies fn to the snapshot for sourceID, seeding a baseline
// snapshot if the source has none yet.
func (s *MetricsStore) Update(sourceID string, fn func(*entity.SourceMetrics)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.data[sourceID]
	if !ok {
		m = entity.NewSourceMetrics(sourceID)
	}
	fn(&m)
	m.SourceID = sourceID
	s.data[sourceID] = m
}

// Get returns the current snapshot for sourceID.
func (s *MetricsStore) Get(sourceID string) (entity.SourceMetrics, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.data[sourceID]
	return m, ok
}

// All returns every snapshot, sorted by source id for stable output.
func (s *MetricsStore) All() []entity.SourceMetrics {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.SourceMetrics, 0, len(s.data))
	for _, m := range s.data {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SourceID < out[j].SourceID })
	return out
}
