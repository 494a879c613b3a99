package fetcher

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
	"github.com/sony/gobreaker"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/observability/metrics"
	"videonews-feed/internal/repository"
	"videonews-feed/internal/resilience/circuitbreaker"
	"videonews-feed/internal/resilience/retry"
	"videonews-feed/internal/usecase/aggregate"
)

// DefaultRSSMaxResults is how many entries one RSS fetch keeps.
const DefaultRSSMaxResults = 15

// RSSOption configures an RSSFetcher.
type RSSOption func(*RSSFetcher)

// WithRSSClient sets a custom HTTP client for feed downloads.
func WithRSSClient(client *http.Client) RSSOption {
	return func(f *RSSFetcher) {
		f.client = client
	}
}

// WithRSSMaxResults overrides the per-fetch entry cap.
func WithRSSMaxResults(n int) RSSOption {
	return func(f *RSSFetcher) {
		if n > 0 {
			f.maxResults = n
		}
	}
}

// RSSFetcher pulls recent entries from an RSS/Atom feed using gofeed.
// It includes circuit breaker and retry logic; on upstream failure it
// degrades to a small synthetic fallback set.
type RSSFetcher struct {
	client         *http.Client
	maxResults     int
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config

	store repository.MetricsStore
	now   func() time.Time
}

// NewRSSFetcher creates a new RSSFetcher.
func NewRSSFetcher(store repository.MetricsStore, opts ...RSSOption) *RSSFetcher {
	f := &RSSFetcher{
		client:         &http.Client{Timeout: 10 * time.Second},
		maxResults:     DefaultRSSMaxResults,
		circuitBreaker: circuitbreaker.New(circuitbreaker.FeedFetchConfig()),
		retryConfig:    retry.FetchConfig(),
		store:          store,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves and normalizes feed entries published within the
// freshness window. A source without a feed URL serves demo data.
func (f *RSSFetcher) Fetch(ctx context.Context, src *entity.NewsSource) aggregate.Result {
	if src.RSSURL == "" {
		return aggregate.Result{Videos: SyntheticVideos(src, min(f.maxResults, 5), f.now())}
	}

	start := f.now()
	videos, err := f.fetchLive(ctx, src)
	if err != nil {
		slog.Error("rss fetch failed, serving fallback data",
			slog.String("source_id", src.ID),
			slog.String("url", src.RSSURL),
			slog.String("error", err.Error()))

		f.recordFailure(src.ID, err)

		return aggregate.Result{
			Videos:   SyntheticVideos(src, min(f.maxResults, 5), f.now()),
			Degraded: true,
			Err:      err,
		}
	}

	metrics.RecordVideosFetched(src.ID, string(entity.SourceTypeRSS), len(videos))
	metrics.RecordSourceFetch(src.ID, f.now().Sub(start))

	return aggregate.Result{Videos: videos}
}

func (f *RSSFetcher) fetchLive(ctx context.Context, src *entity.NewsSource) ([]entity.VideoImport, error) {
	var videos []entity.VideoImport

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, src)
		})
		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("feed fetch circuit breaker open, request rejected",
					slog.String("source_id", src.ID),
					slog.String("url", src.RSSURL),
					slog.String("state", f.circuitBreaker.State().String()))
			}
			return err
		}

		videos = cbResult.([]entity.VideoImport)
		return nil
	})

	if retryErr != nil {
		return nil, retryErr
	}

	return videos, nil
}

// doFetch performs the actual feed fetch without retry or circuit breaker.
func (f *RSSFetcher) doFetch(ctx context.Context, src *entity.NewsSource) ([]entity.VideoImport, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = "VideoNewsFeedBot"
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(src.RSSURL, ctx)
	if err != nil {
		return nil, err
	}

	cutoff := f.now().Add(-entity.FreshnessWindow)

	items := feed.Items
	if len(items) > f.maxResults {
		items = items[:f.maxResults]
	}

	videos := make([]entity.VideoImport, 0, len(items))
	for _, item := range items {
		v, ok := normalizeRSSItem(item, src)
		if !ok {
			continue
		}
		if v.PublishedAt.Before(cutoff) {
			continue
		}
		videos = append(videos, v)
	}

	return videos, nil
}

func (f *RSSFetcher) recordFailure(sourceID string, err error) {
	metrics.RecordSourceFetchError(sourceID, errorType(err))
	metrics.RecordSourceFetchFallback(sourceID)

	if f.store != nil {
		f.store.Update(sourceID, func(m *entity.SourceMetrics) {
			m.SuccessRate = 0
			m.LastError = err.Error()
		})
	}
}
