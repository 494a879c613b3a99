package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"videonews-feed/internal/domain/entity"
)

// SourceRegistry is the in-memory SourceRepository. Sources are seeded once
// at construction; only Active and LastSync mutate afterwards.
type SourceRegistry struct {
	mu      sync.RWMutex
	byID    map[string]*entity.NewsSource
	ordered []string // seed order, kept stable for listings
}

// NewSourceRegistry builds a registry from the given seed. Each source is
// copied so callers cannot mutate registry state from outside.
func NewSourceRegistry(seed []entity.NewsSource) *SourceRegistry {
	r := &SourceRegistry{
		byID:    make(map[string]*entity.NewsSource, len(seed)),
		ordered: make([]string, 0, len(seed)),
	}
	for i := range seed {
		src := seed[i]
		r.byID[src.ID] = &src
		r.ordered = append(r.ordered, src.ID)
	}
	return r
}

// Get returns a copy of the source with the given id.
func (r *SourceRegistry) Get(_ context.Context, id string) (*entity.NewsSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	src, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("source %q: %w", id, entity.ErrNotFound)
	}
	cp := *src
	return &cp, nil
}

// List returns all sources in seed order.
func (r *SourceRegistry) List(_ context.Context) ([]*entity.NewsSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.NewsSource, 0, len(r.ordered))
	for _, id := range r.ordered {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

// ListActive returns the sources with Active == true in seed order.
func (r *SourceRegistry) ListActive(_ context.Context) ([]*entity.NewsSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.NewsSource
	for _, id := range r.ordered {
		if src := r.byID[id]; src.Active {
			cp := *src
			out = append(out, &cp)
		}
	}
	return out, nil
}

// SetActive toggles a source and stamps LastSync, returning the updated copy.
func (r *SourceRegistry) SetActive(_ context.Context, id string, active bool) (*entity.NewsSource, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.byID[id]
	if !ok {
		return nil, fmt.Errorf("source %q: %w", id, entity.ErrNotFound)
	}
	now := time.Now()
	src.Active = active
	src.LastSync = &now
	cp := *src
	return &cp, nil
}

// TouchLastSync records the time of the latest sync for a source.
func (r *SourceRegistry) TouchLastSync(_ context.Context, id string, t time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	src, ok := r.byID[id]
	if !ok {
		return fmt.Errorf("source %q: %w", id, entity.ErrNotFound)
	}
	src.LastSync = &t
	return nil
}

// CategoryIDs returns the ids of active sources in the given category,
// sorted for determinism.
func (r *SourceRegistry) CategoryIDs(category string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, id := range r.ordered {
		if src := r.byID[id]; src.Active && src.Category == category {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
