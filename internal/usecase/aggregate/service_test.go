package aggregate_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/infra/memory"
	"videonews-feed/internal/usecase/aggregate"
)

// stubFetcher returns a fixed result per source id.
type stubFetcher struct {
	mu      sync.Mutex
	results map[string]aggregate.Result
	calls   []string
}

func (f *stubFetcher) Fetch(_ context.Context, src *entity.NewsSource) aggregate.Result {
	f.mu.Lock()
	f.calls = append(f.calls, src.ID)
	f.mu.Unlock()

	if res, ok := f.results[src.ID]; ok {
		return res
	}
	return aggregate.Result{Videos: []entity.VideoImport{}}
}

func importRecord(id, sourceID string, publishedAt time.Time) entity.VideoImport {
	return entity.VideoImport{
		ID:          id,
		SourceID:    sourceID,
		Title:       "t " + id,
		DurationSec: 300,
		PublishedAt: publishedAt,
		Status:      entity.ImportPending,
		Language:    entity.LanguageFrench,
		Tags:        []string{},
	}
}

func testSources() []entity.NewsSource {
	mk := func(id string, typ entity.SourceType, active bool) entity.NewsSource {
		return entity.NewsSource{
			ID:       id,
			Name:     id,
			Type:     typ,
			URL:      "https://" + id + ".example",
			Category: "politics",
			Language: entity.LanguageFrench,
			Active:   active,
		}
	}
	return []entity.NewsSource{
		mk("alpha", entity.SourceTypeYouTube, true),
		mk("bravo", entity.SourceTypeYouTube, true),
		mk("charlie", entity.SourceTypeRSS, true),
		mk("delta", entity.SourceTypeRSS, true),
		mk("echo", entity.SourceTypeWebsite, true),
		mk("foxtrot", entity.SourceTypeYouTube, false),
	}
}

func TestService_AggregateAll(t *testing.T) {
	now := time.Now()

	yt := &stubFetcher{results: map[string]aggregate.Result{
		"alpha": {Videos: []entity.VideoImport{
			importRecord("yt_a1", "alpha", now.Add(-time.Hour)),
			importRecord("yt_a2", "alpha", now.Add(-30*time.Hour)),
		}},
		"bravo": {
			Videos:   []entity.VideoImport{importRecord("mock_bravo_0", "bravo", now.Add(-time.Hour))},
			Degraded: true,
			Err:      errors.New("HTTP 403: youtube api request failed"),
		},
	}}
	rss := &stubFetcher{results: map[string]aggregate.Result{
		"charlie": {Videos: []entity.VideoImport{
			importRecord("rss_charlie_1", "charlie", now.Add(-2*time.Hour)),
		}},
		"delta": {Videos: []entity.VideoImport{}},
	}}
	fallback := &stubFetcher{results: map[string]aggregate.Result{
		"echo": {Videos: []entity.VideoImport{
			importRecord("mock_echo_0", "echo", now.Add(-time.Hour)),
		}},
	}}

	registry := memory.NewSourceRegistry(testSources())
	store := memory.NewMetricsStore()

	svc := aggregate.NewService(registry, store,
		map[entity.SourceType]aggregate.Fetcher{
			entity.SourceTypeYouTube: yt,
			entity.SourceTypeRSS:     rss,
		},
		fallback)

	videos, stats, err := svc.AggregateAll(context.Background())
	if err != nil {
		t.Fatalf("AggregateAll() error = %v", err)
	}

	if stats.Sources != 5 {
		t.Errorf("stats.Sources = %d, want 5 (inactive excluded)", stats.Sources)
	}
	if stats.Videos != 5 || len(videos) != 5 {
		t.Errorf("videos = %d (stats %d), want 5", len(videos), stats.Videos)
	}
	if stats.Degraded != 1 {
		t.Errorf("stats.Degraded = %d, want 1", stats.Degraded)
	}

	// Inactive source never fetched.
	for _, id := range yt.calls {
		if id == "foxtrot" {
			t.Error("inactive source foxtrot was fetched")
		}
	}

	// Successful source metrics.
	m, ok := store.Get("alpha")
	if !ok {
		t.Fatal("metrics for alpha missing")
	}
	if m.VideosWeek != 2 {
		t.Errorf("alpha VideosWeek = %d, want 2", m.VideosWeek)
	}
	if m.VideosToday != 1 {
		t.Errorf("alpha VideosToday = %d, want 1", m.VideosToday)
	}
	if m.SuccessRate != 100 {
		t.Errorf("alpha SuccessRate = %v, want 100", m.SuccessRate)
	}

	// Degraded source keeps a zero success rate even though fallback
	// records were returned.
	m, _ = store.Get("bravo")
	if m.SuccessRate != 0 {
		t.Errorf("bravo SuccessRate = %v, want 0", m.SuccessRate)
	}

	// Empty but healthy source.
	m, _ = store.Get("delta")
	if m.SuccessRate != 0 || m.VideosWeek != 0 {
		t.Errorf("delta metrics = %+v, want zeroed counts", m)
	}

	// Fallback fetcher served the website source.
	if len(fallback.calls) != 1 || fallback.calls[0] != "echo" {
		t.Errorf("fallback.calls = %v, want [echo]", fallback.calls)
	}

	// Last sync stamped on fetched sources.
	src, err := registry.Get(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("Get(alpha) error = %v", err)
	}
	if src.LastSync == nil {
		t.Error("alpha LastSync = nil, want stamp")
	}
}

func TestService_AggregateAll_NoFetcherForType(t *testing.T) {
	registry := memory.NewSourceRegistry([]entity.NewsSource{{
		ID: "zulu", Name: "zulu", Type: entity.SourceTypeAPI,
		URL: "https://zulu.example", Category: "politics",
		Language: entity.LanguageFrench, Active: true,
	}})
	store := memory.NewMetricsStore()

	svc := aggregate.NewService(registry, store, nil, nil)

	videos, stats, err := svc.AggregateAll(context.Background())
	if err != nil {
		t.Fatalf("AggregateAll() error = %v", err)
	}
	if len(videos) != 0 {
		t.Errorf("len(videos) = %d, want 0", len(videos))
	}
	if stats.Sources != 1 {
		t.Errorf("stats.Sources = %d, want 1", stats.Sources)
	}
}

func TestService_SyncSource(t *testing.T) {
	now := time.Now()

	yt := &stubFetcher{results: map[string]aggregate.Result{
		"alpha": {Videos: []entity.VideoImport{
			importRecord("yt_a1", "alpha", now.Add(-time.Hour)),
			importRecord("yt_a2", "alpha", now.Add(-2*time.Hour)),
		}},
	}}

	registry := memory.NewSourceRegistry(testSources())
	store := memory.NewMetricsStore()

	svc := aggregate.NewService(registry, store,
		map[entity.SourceType]aggregate.Fetcher{entity.SourceTypeYouTube: yt}, nil)

	report, err := svc.SyncSource(context.Background(), "alpha")
	if err != nil {
		t.Fatalf("SyncSource() error = %v", err)
	}

	if report.SourceID != "alpha" {
		t.Errorf("report.SourceID = %q", report.SourceID)
	}
	if report.Fetched != 2 || len(report.Videos) != 2 {
		t.Errorf("report.Fetched = %d (videos %d), want 2", report.Fetched, len(report.Videos))
	}
	if report.Degraded {
		t.Error("report.Degraded = true, want false")
	}

	m, ok := store.Get("alpha")
	if !ok || m.VideosWeek != 2 {
		t.Errorf("metrics after sync = %+v, want VideosWeek 2", m)
	}
}

func TestService_SyncSource_UnknownID(t *testing.T) {
	registry := memory.NewSourceRegistry(testSources())
	svc := aggregate.NewService(registry, memory.NewMetricsStore(), nil, nil)

	_, err := svc.SyncSource(context.Background(), "no-such-source")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("SyncSource() error = %v, want ErrNotFound", err)
	}
}

func TestService_AggregateAll_ConcurrentSafety(t *testing.T) {
	// Many sources with overlapping completion must not lose records.
	sources := make([]entity.NewsSource, 0, 20)
	results := make(map[string]aggregate.Result, 20)
	now := time.Now()
	for i := 0; i < 20; i++ {
		id := fmt.Sprintf("src%02d", i)
		sources = append(sources, entity.NewsSource{
			ID: id, Name: id, Type: entity.SourceTypeRSS,
			URL: "https://" + id + ".example", Category: "politics",
			Language: entity.LanguageFrench, Active: true,
		})
		results[id] = aggregate.Result{Videos: []entity.VideoImport{
			importRecord("rss_"+id+"_1", id, now.Add(-time.Hour)),
			importRecord("rss_"+id+"_2", id, now.Add(-2*time.Hour)),
		}}
	}

	svc := aggregate.NewService(
		memory.NewSourceRegistry(sources),
		memory.NewMetricsStore(),
		map[entity.SourceType]aggregate.Fetcher{
			entity.SourceTypeRSS: &stubFetcher{results: results},
		},
		nil)

	videos, stats, err := svc.AggregateAll(context.Background())
	if err != nil {
		t.Fatalf("AggregateAll() error = %v", err)
	}
	if len(videos) != 40 {
		t.Errorf("len(videos) = %d, want 40", len(videos))
	}
	if stats.Degraded != 0 {
		t.Errorf("stats.Degraded = %d, want 0", stats.Degraded)
	}
}
