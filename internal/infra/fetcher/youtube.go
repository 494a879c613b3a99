package fetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/observability/metrics"
	"videonews-feed/internal/repository"
	"videonews-feed/internal/resilience/circuitbreaker"
	"videonews-feed/internal/resilience/retry"
	"videonews-feed/internal/usecase/aggregate"
)

const (
	defaultYouTubeBaseURL = "https://www.googleapis.com"

	// DefaultYouTubeMaxResults is how many videos one YouTube fetch asks for.
	DefaultYouTubeMaxResults = 25

	// demoAPIKey marks the credentialless demo mode.
	demoAPIKey = "demo-key"
)

// HTTPClient is the subset of http.Client the YouTube fetcher needs.
// It allows injection for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// YouTubeOption configures a YouTubeFetcher.
type YouTubeOption func(*YouTubeFetcher)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client HTTPClient) YouTubeOption {
	return func(f *YouTubeFetcher) {
		f.client = client
	}
}

// WithBaseURL sets a custom API base URL (useful for testing).
func WithBaseURL(baseURL string) YouTubeOption {
	return func(f *YouTubeFetcher) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithYouTubeMaxResults overrides the per-fetch result cap.
func WithYouTubeMaxResults(n int) YouTubeOption {
	return func(f *YouTubeFetcher) {
		if n > 0 {
			f.maxResults = n
		}
	}
}

// YouTubeFetcher pulls recent videos from a channel via the YouTube Data
// API v3. Without an API key it serves deterministic demo data; on upstream
// failure it degrades to fallback data and records the failure in the
// per-source metrics store.
type YouTubeFetcher struct {
	apiKey     string
	baseURL    string
	client     HTTPClient
	maxResults int

	limiter        *rate.Limiter
	circuitBreaker *circuitbreaker.CircuitBreaker
	retryConfig    retry.Config

	store repository.MetricsStore
	now   func() time.Time
}

// NewYouTubeFetcher creates a fetcher for the given API key. An empty key
// or the literal "demo-key" selects demo mode.
func NewYouTubeFetcher(apiKey string, store repository.MetricsStore, opts ...YouTubeOption) *YouTubeFetcher {
	f := &YouTubeFetcher{
		apiKey:     apiKey,
		baseURL:    defaultYouTubeBaseURL,
		client:     &http.Client{Timeout: 10 * time.Second},
		maxResults: DefaultYouTubeMaxResults,
		// YouTube Data API quota is tight; keep well under it.
		limiter:        rate.NewLimiter(rate.Limit(5), 10),
		circuitBreaker: circuitbreaker.New(circuitbreaker.YouTubeAPIConfig()),
		retryConfig:    retry.FetchConfig(),
		store:          store,
		now:            time.Now,
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch retrieves recent videos published within the freshness window.
func (f *YouTubeFetcher) Fetch(ctx context.Context, src *entity.NewsSource) aggregate.Result {
	if f.apiKey == "" || f.apiKey == demoAPIKey || src.ChannelID == "" {
		return aggregate.Result{Videos: SyntheticVideos(src, f.maxResults, f.now())}
	}

	start := f.now()
	videos, err := f.fetchLive(ctx, src)
	if err != nil {
		slog.Error("youtube fetch failed, serving fallback data",
			slog.String("source_id", src.ID),
			slog.String("error", err.Error()))

		f.recordFailure(src.ID, err)

		return aggregate.Result{
			Videos:   SyntheticVideos(src, min(f.maxResults, 5), f.now()),
			Degraded: true,
			Err:      err,
		}
	}

	metrics.RecordVideosFetched(src.ID, string(entity.SourceTypeYouTube), len(videos))
	metrics.RecordSourceFetch(src.ID, f.now().Sub(start))

	return aggregate.Result{Videos: videos}
}

// fetchLive performs the two-phase search plus detail lookup with retry and
// circuit breaker protection.
func (f *YouTubeFetcher) fetchLive(ctx context.Context, src *entity.NewsSource) ([]entity.VideoImport, error) {
	var videos []entity.VideoImport

	retryErr := retry.WithBackoff(ctx, f.retryConfig, func() error {
		cbResult, err := f.circuitBreaker.Execute(func() (interface{}, error) {
			return f.doFetch(ctx, src)
		})
		if err != nil {
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

// doFetch performs the actual API calls without retry or circuit breaker.
func (f *YouTubeFetcher) doFetch(ctx context.Context, src *entity.NewsSource) ([]entity.VideoImport, error) {
	publishedAfter := f.now().UTC().Add(-entity.FreshnessWindow).Format(time.RFC3339)

	q := url.Values{}
	q.Set("key", f.apiKey)
	q.Set("channelId", src.ChannelID)
	q.Set("part", "snippet")
	q.Set("order", "date")
	q.Set("type", "video")
	q.Set("maxResults", fmt.Sprintf("%d", f.maxResults))
	q.Set("publishedAfter", publishedAfter)

	body, err := f.doRequest(ctx, f.baseURL+"/youtube/v3/search?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var searchResp youtubeSearchResponse
	if err := json.Unmarshal(body, &searchResp); err != nil {
		return nil, fmt.Errorf("failed to parse search response: %w", err)
	}

	if len(searchResp.Items) == 0 {
		return []entity.VideoImport{}, nil
	}

	ids := make([]string, 0, len(searchResp.Items))
	for _, item := range searchResp.Items {
		if item.ID.VideoID != "" {
			ids = append(ids, item.ID.VideoID)
		}
	}

	q = url.Values{}
	q.Set("key", f.apiKey)
	q.Set("id", strings.Join(ids, ","))
	q.Set("part", "snippet,contentDetails,statistics")

	body, err = f.doRequest(ctx, f.baseURL+"/youtube/v3/videos?"+q.Encode())
	if err != nil {
		return nil, err
	}

	var videosResp youtubeVideosResponse
	if err := json.Unmarshal(body, &videosResp); err != nil {
		return nil, fmt.Errorf("failed to parse videos response: %w", err)
	}

	videos := make([]entity.VideoImport, 0, len(videosResp.Items))
	for _, item := range videosResp.Items {
		v := normalizeYouTubeItem(item, src)
		if err := v.Validate(); err != nil {
			slog.Warn("skipping malformed youtube item",
				slog.String("source_id", src.ID),
				slog.String("video_id", item.ID),
				slog.String("error", err.Error()))
			continue
		}
		videos = append(videos, v)
	}

	return videos, nil
}

func (f *YouTubeFetcher) doRequest(ctx context.Context, requestURL string) ([]byte, error) {
	if err := f.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &retry.HTTPError{StatusCode: resp.StatusCode, Message: "youtube api request failed"}
	}

	return body, nil
}

func (f *YouTubeFetcher) recordFailure(sourceID string, err error) {
	metrics.RecordSourceFetchError(sourceID, errorType(err))
	metrics.RecordSourceFetchFallback(sourceID)

	if f.store != nil {
		f.store.Update(sourceID, func(m *entity.SourceMetrics) {
			m.SuccessRate = 0
			m.LastError = err.Error()
		})
	}
}

// API response types (private - implementation detail)

type youtubeSearchResponse struct {
	Items []struct {
		ID struct {
			VideoID string `json:"videoId"`
		} `json:"id"`
	} `json:"items"`
}

type youtubeVideoItem struct {
	ID      string `json:"id"`
	Snippet struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		ChannelID    string `json:"channelId"`
		ChannelTitle string `json:"channelTitle"`
		PublishedAt  string `json:"publishedAt"`
		Thumbnails   struct {
			Medium struct {
				URL string `json:"url"`
			} `json:"medium"`
			High struct {
				URL string `json:"url"`
			} `json:"high"`
		} `json:"thumbnails"`
	} `json:"snippet"`
	ContentDetails struct {
		Duration string `json:"duration"`
	} `json:"contentDetails"`
	Statistics struct {
		ViewCount string `json:"viewCount"`
	} `json:"statistics"`
}

type youtubeVideosResponse struct {
	Items []youtubeVideoItem `json:"items"`
}
