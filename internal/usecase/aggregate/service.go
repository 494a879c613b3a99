// Package aggregate provides the aggregation use case: fanning out to every
// active news source, collecting normalized video imports, and maintaining
// per-source health metrics.
package aggregate

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/observability/metrics"
	"videonews-feed/internal/repository"
)

// Result is the outcome of fetching one source. Videos is never nil.
// When Degraded is true the videos are synthetic fallback data and Err
// holds the upstream failure that caused the degradation.
type Result struct {
	Videos   []entity.VideoImport
	Degraded bool
	Err      error
}

// Fetcher pulls recent videos from a single news source.
//
// Implementations must not return errors to the caller: an upstream failure
// produces a degraded Result with fallback data so one broken source cannot
// sink an aggregation pass.
type Fetcher interface {
	Fetch(ctx context.Context, src *entity.NewsSource) Result
}

// Stats summarizes one aggregation pass.
type Stats struct {
	Sources  int
	Videos   int
	Degraded int
	Duration time.Duration
}

// SyncReport is the outcome of syncing a single source on demand.
type SyncReport struct {
	SourceID   string               `json:"sourceId"`
	SourceName string               `json:"source"`
	Fetched    int                  `json:"videosFetched"`
	Degraded   bool                 `json:"degraded"`
	Videos     []entity.VideoImport `json:"-"`
}

// Service orchestrates aggregation across all sources. Fetchers maps each
// source type to its fetcher; types without an entry use Fallback.
type Service struct {
	Sources  repository.SourceRepository
	Metrics  repository.MetricsStore
	Fetchers map[entity.SourceType]Fetcher
	Fallback Fetcher

	now func() time.Time
}

// NewService creates an aggregation service.
func NewService(
	sources repository.SourceRepository,
	store repository.MetricsStore,
	fetchers map[entity.SourceType]Fetcher,
	fallback Fetcher,
) *Service {
	return &Service{
		Sources:  sources,
		Metrics:  store,
		Fetchers: fetchers,
		Fallback: fallback,
		now:      time.Now,
	}
}

// AggregateAll fetches every active source concurrently and returns the
// combined imports. Every source settles: a failing source contributes its
// fallback records and a degraded count instead of aborting the pass.
func (s *Service) AggregateAll(ctx context.Context) ([]entity.VideoImport, *Stats, error) {
	start := s.now()

	srcs, err := s.Sources.ListActive(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("list active sources: %w", err)
	}

	var (
		mu       sync.Mutex
		all      []entity.VideoImport
		degraded int
	)

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range srcs {
		src := src
		g.Go(func() error {
			res := s.fetchOne(gctx, src)

			mu.Lock()
			all = append(all, res.Videos...)
			if res.Degraded {
				degraded++
			}
			mu.Unlock()

			// Every source settles; failures are carried in the Result.
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	stats := &Stats{
		Sources:  len(srcs),
		Videos:   len(all),
		Degraded: degraded,
		Duration: s.now().Sub(start),
	}

	metrics.RecordAggregation(stats.Duration)
	metrics.UpdateSourcesActive(len(srcs))

	slog.Info("aggregation pass completed",
		slog.Int("sources", stats.Sources),
		slog.Int("videos", stats.Videos),
		slog.Int("degraded", stats.Degraded),
		slog.Duration("duration", stats.Duration))

	return all, stats, nil
}

// SyncSource fetches a single source on demand. It returns
// entity.ErrNotFound when the source id is unknown.
func (s *Service) SyncSource(ctx context.Context, sourceID string) (*SyncReport, error) {
	src, err := s.Sources.Get(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("get source %q: %w", sourceID, err)
	}

	res := s.fetchOne(ctx, src)

	return &SyncReport{
		SourceID:   src.ID,
		SourceName: src.Name,
		Fetched:    len(res.Videos),
		Degraded:   res.Degraded,
		Videos:     res.Videos,
	}, nil
}

// SourceMetrics returns the current snapshot for one source.
func (s *Service) SourceMetrics(sourceID string) (entity.SourceMetrics, bool) {
	return s.Metrics.Get(sourceID)
}

// AllMetrics returns every per-source metrics snapshot.
func (s *Service) AllMetrics() []entity.SourceMetrics {
	return s.Metrics.All()
}

// fetchOne runs the fetcher for one source and folds the outcome into the
// per-source metrics.
func (s *Service) fetchOne(ctx context.Context, src *entity.NewsSource) Result {
	f := s.fetcherFor(src)
	if f == nil {
		slog.Warn("no fetcher registered for source type, skipping",
			slog.String("source_id", src.ID),
			slog.String("source_type", string(src.Type)))
		return Result{Videos: []entity.VideoImport{}}
	}

	res := f.Fetch(ctx, src)
	if res.Videos == nil {
		res.Videos = []entity.VideoImport{}
	}

	now := s.now()
	s.Metrics.Update(src.ID, func(m *entity.SourceMetrics) {
		m.VideosToday = countPublishedToday(res.Videos, now)
		m.VideosWeek = len(res.Videos)
		switch {
		case res.Degraded:
			m.SuccessRate = 0
		case len(res.Videos) > 0:
			m.SuccessRate = 100
		default:
			m.SuccessRate = 0
		}
	})

	if err := s.Sources.TouchLastSync(ctx, src.ID, now); err != nil {
		slog.Warn("failed to stamp source last sync",
			slog.String("source_id", src.ID),
			slog.Any("error", err))
	}

	return res
}

// fetcherFor chooses the fetcher for a source type, falling back to the
// default fetcher for types without a live integration.
func (s *Service) fetcherFor(src *entity.NewsSource) Fetcher {
	if f, ok := s.Fetchers[src.Type]; ok && f != nil {
		return f
	}
	return s.Fallback
}

// countPublishedToday counts records published on the same calendar day
// as now.
func countPublishedToday(videos []entity.VideoImport, now time.Time) int {
	n := 0
	for i := range videos {
		if sameDay(videos[i].PublishedAt, now) {
			n++
		}
	}
	return n
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
