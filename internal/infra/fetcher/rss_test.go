package fetcher_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/infra/fetcher"
	"videonews-feed/internal/infra/memory"
)

func rssSource(feedURL string) *entity.NewsSource {
	return &entity.NewsSource{
		ID:       "mediapart",
		Name:     "Mediapart",
		Type:     entity.SourceTypeRSS,
		URL:      "https://www.mediapart.fr",
		Category: "politics",
		Language: entity.LanguageFrench,
		Active:   true,
		RSSURL:   feedURL,
	}
}

func rssFeed(items ...string) string {
	return `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Mediapart Vidéos</title>
    <link>https://www.mediapart.fr</link>
    <description>Vidéos</description>
` + strings.Join(items, "\n") + `
  </channel>
</rss>`
}

func rssItem(title, link string, pubAt time.Time) string {
	return fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <description>Description de %s</description>
      <pubDate>%s</pubDate>
    </item>`, title, link, title, pubAt.Format(time.RFC1123Z))
}

func TestRSSFetcher_Fetch_Success(t *testing.T) {
	now := time.Now().UTC()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			rssItem("Enquête 1", "https://www.mediapart.fr/video/1", now.Add(-2*time.Hour)),
			rssItem("Enquête 2", "https://www.mediapart.fr/video/2", now.Add(-48*time.Hour)),
		))
	}))
	defer server.Close()

	f := fetcher.NewRSSFetcher(memory.NewMetricsStore())
	res := f.Fetch(context.Background(), rssSource(server.URL))

	if res.Degraded || res.Err != nil {
		t.Fatalf("Fetch() = (degraded=%v, err=%v), want live data", res.Degraded, res.Err)
	}
	if len(res.Videos) != 2 {
		t.Fatalf("len(Videos) = %d, want 2", len(res.Videos))
	}

	if res.Videos[0].Title != "Enquête 1" {
		t.Errorf("Videos[0].Title = %q", res.Videos[0].Title)
	}
	if !strings.HasPrefix(res.Videos[0].ID, "rss_mediapart_") {
		t.Errorf("Videos[0].ID = %q, want rss_mediapart_ prefix", res.Videos[0].ID)
	}
	if res.Videos[0].Status != entity.ImportPending {
		t.Errorf("Videos[0].Status = %q, want pending", res.Videos[0].Status)
	}
}

func TestRSSFetcher_FiltersStaleEntries(t *testing.T) {
	now := time.Now().UTC()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			rssItem("Récent", "https://www.mediapart.fr/video/recent", now.Add(-24*time.Hour)),
			rssItem("Ancien", "https://www.mediapart.fr/video/ancien", now.Add(-10*24*time.Hour)),
		))
	}))
	defer server.Close()

	f := fetcher.NewRSSFetcher(memory.NewMetricsStore())
	res := f.Fetch(context.Background(), rssSource(server.URL))

	if res.Err != nil {
		t.Fatalf("Fetch() error = %v", res.Err)
	}
	if len(res.Videos) != 1 {
		t.Fatalf("len(Videos) = %d, want 1 (stale entry dropped)", len(res.Videos))
	}
	if res.Videos[0].Title != "Récent" {
		t.Errorf("Videos[0].Title = %q, want Récent", res.Videos[0].Title)
	}
}

func TestRSSFetcher_CapsResults(t *testing.T) {
	now := time.Now().UTC()

	items := make([]string, 0, 10)
	for i := 0; i < 10; i++ {
		items = append(items, rssItem(
			fmt.Sprintf("Vidéo %d", i),
			fmt.Sprintf("https://www.mediapart.fr/video/%d", i),
			now.Add(-time.Duration(i+1)*time.Hour)))
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(items...))
	}))
	defer server.Close()

	f := fetcher.NewRSSFetcher(memory.NewMetricsStore(), fetcher.WithRSSMaxResults(3))
	res := f.Fetch(context.Background(), rssSource(server.URL))

	if res.Err != nil {
		t.Fatalf("Fetch() error = %v", res.Err)
	}
	if len(res.Videos) != 3 {
		t.Errorf("len(Videos) = %d, want 3", len(res.Videos))
	}
}

func TestRSSFetcher_DemoModeWithoutFeedURL(t *testing.T) {
	f := fetcher.NewRSSFetcher(memory.NewMetricsStore())
	res := f.Fetch(context.Background(), rssSource(""))

	if res.Degraded || res.Err != nil {
		t.Errorf("Fetch() = (degraded=%v, err=%v), want demo data", res.Degraded, res.Err)
	}
	if len(res.Videos) != 5 {
		t.Errorf("len(Videos) = %d, want 5", len(res.Videos))
	}
	for _, v := range res.Videos {
		if v.Status != entity.ImportApproved {
			t.Errorf("demo video status = %q, want approved", v.Status)
		}
	}
}

func TestRSSFetcher_DegradesOnFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	store := memory.NewMetricsStore()
	f := fetcher.NewRSSFetcher(store)
	res := f.Fetch(context.Background(), rssSource(server.URL+"/feed.xml"))

	if !res.Degraded {
		t.Error("Degraded = false, want true")
	}
	if res.Err == nil {
		t.Error("Err = nil, want upstream failure")
	}
	if len(res.Videos) != 5 {
		t.Errorf("len(Videos) = %d, want 5 fallback records", len(res.Videos))
	}

	m, ok := store.Get("mediapart")
	if !ok {
		t.Fatal("metrics for mediapart not recorded")
	}
	if m.SuccessRate != 0 {
		t.Errorf("SuccessRate = %v, want 0", m.SuccessRate)
	}
	if m.LastError == "" {
		t.Error("LastError empty, want failure message")
	}
}

func TestRSSFetcher_SkipsEntriesWithoutDates(t *testing.T) {
	now := time.Now().UTC()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, rssFeed(
			rssItem("Avec date", "https://www.mediapart.fr/video/ok", now.Add(-time.Hour)),
			`    <item>
      <title>Sans date</title>
      <link>https://www.mediapart.fr/video/nodate</link>
      <description>Pas de pubDate</description>
    </item>`,
		))
	}))
	defer server.Close()

	f := fetcher.NewRSSFetcher(memory.NewMetricsStore())
	res := f.Fetch(context.Background(), rssSource(server.URL))

	if res.Err != nil {
		t.Fatalf("Fetch() error = %v", res.Err)
	}
	if len(res.Videos) != 1 {
		t.Fatalf("len(Videos) = %d, want 1", len(res.Videos))
	}
	if res.Videos[0].Title != "Avec date" {
		t.Errorf("Videos[0].Title = %q", res.Videos[0].Title)
	}
}
