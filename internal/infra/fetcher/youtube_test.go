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

func youtubeSource() *entity.NewsSource {
	return &entity.NewsSource{
		ID:        "franceinfo",
		Name:      "Franceinfo",
		Type:      entity.SourceTypeYouTube,
		URL:       "https://www.francetvinfo.fr",
		Category:  "politics",
		Language:  entity.LanguageFrench,
		Active:    true,
		ChannelID: "UCfranceinfo",
	}
}

func TestYouTubeFetcher_DemoModeWithoutKey(t *testing.T) {
	store := memory.NewMetricsStore()
	f := fetcher.NewYouTubeFetcher("", store, fetcher.WithYouTubeMaxResults(8))

	res := f.Fetch(context.Background(), youtubeSource())

	if res.Degraded {
		t.Error("Degraded = true, want false for demo mode")
	}
	if res.Err != nil {
		t.Errorf("Err = %v, want nil", res.Err)
	}
	if len(res.Videos) != 8 {
		t.Errorf("len(Videos) = %d, want 8", len(res.Videos))
	}
	for _, v := range res.Videos {
		if !strings.HasPrefix(v.ID, "mock_franceinfo_") {
			t.Errorf("Video ID = %q, want mock_franceinfo_ prefix", v.ID)
		}
	}
}

func TestYouTubeFetcher_DemoModeWithDemoKey(t *testing.T) {
	store := memory.NewMetricsStore()
	f := fetcher.NewYouTubeFetcher("demo-key", store)

	res := f.Fetch(context.Background(), youtubeSource())

	if res.Degraded || res.Err != nil {
		t.Errorf("demo key fetch = (degraded=%v, err=%v), want clean demo data", res.Degraded, res.Err)
	}
	if len(res.Videos) == 0 {
		t.Error("len(Videos) = 0, want demo data")
	}
}

func TestYouTubeFetcher_DemoModeWithoutChannel(t *testing.T) {
	src := youtubeSource()
	src.ChannelID = ""

	f := fetcher.NewYouTubeFetcher("real-key", memory.NewMetricsStore())
	res := f.Fetch(context.Background(), src)

	if res.Degraded || res.Err != nil {
		t.Errorf("missing channel fetch = (degraded=%v, err=%v), want demo data", res.Degraded, res.Err)
	}
	if len(res.Videos) == 0 {
		t.Error("len(Videos) = 0")
	}
}

func TestYouTubeFetcher_FetchLive(t *testing.T) {
	recent := time.Now().UTC().Add(-2 * time.Hour).Format(time.RFC3339)

	var sawSearch, sawVideos bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasPrefix(r.URL.Path, "/youtube/v3/search"):
			sawSearch = true
			q := r.URL.Query()
			if q.Get("channelId") != "UCfranceinfo" {
				t.Errorf("search channelId = %q, want UCfranceinfo", q.Get("channelId"))
			}
			if q.Get("order") != "date" || q.Get("type") != "video" {
				t.Errorf("search order/type = %q/%q", q.Get("order"), q.Get("type"))
			}
			if q.Get("publishedAfter") == "" {
				t.Error("search publishedAfter missing")
			}
			fmt.Fprint(w, `{"items":[{"id":{"videoId":"vid1"}},{"id":{"videoId":"vid2"}}]}`)

		case strings.HasPrefix(r.URL.Path, "/youtube/v3/videos"):
			sawVideos = true
			q := r.URL.Query()
			if q.Get("id") != "vid1,vid2" {
				t.Errorf("videos id = %q, want vid1,vid2", q.Get("id"))
			}
			if q.Get("part") != "snippet,contentDetails,statistics" {
				t.Errorf("videos part = %q", q.Get("part"))
			}
			fmt.Fprintf(w, `{"items":[
				{"id":"vid1","snippet":{"title":"Débat climat","description":"d1","channelId":"UCfranceinfo","channelTitle":"Franceinfo","publishedAt":"%s","thumbnails":{"high":{"url":"https://img/high1.jpg"}}},"contentDetails":{"duration":"PT4M13S"},"statistics":{"viewCount":"1200"}},
				{"id":"vid2","snippet":{"title":"Économie","description":"d2","channelId":"UCfranceinfo","channelTitle":"Franceinfo","publishedAt":"%s","thumbnails":{"medium":{"url":"https://img/med2.jpg"}}},"contentDetails":{"duration":"PT1H"},"statistics":{"viewCount":"300"}}
			]}`, recent, recent)

		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	f := fetcher.NewYouTubeFetcher("real-key", memory.NewMetricsStore(),
		fetcher.WithBaseURL(server.URL))

	res := f.Fetch(context.Background(), youtubeSource())

	if res.Degraded || res.Err != nil {
		t.Fatalf("Fetch() = (degraded=%v, err=%v), want live data", res.Degraded, res.Err)
	}
	if !sawSearch || !sawVideos {
		t.Fatalf("server saw search=%v videos=%v, want both phases", sawSearch, sawVideos)
	}
	if len(res.Videos) != 2 {
		t.Fatalf("len(Videos) = %d, want 2", len(res.Videos))
	}

	if res.Videos[0].ID != "yt_vid1" {
		t.Errorf("Videos[0].ID = %q, want yt_vid1", res.Videos[0].ID)
	}
	if res.Videos[0].DurationSec != 253 {
		t.Errorf("Videos[0].DurationSec = %d, want 253", res.Videos[0].DurationSec)
	}
	if res.Videos[0].Status != entity.ImportPending {
		t.Errorf("Videos[0].Status = %q, want pending", res.Videos[0].Status)
	}
	if res.Videos[1].DurationSec != 3600 {
		t.Errorf("Videos[1].DurationSec = %d, want 3600", res.Videos[1].DurationSec)
	}
	if res.Videos[1].Thumbnail != "https://img/med2.jpg" {
		t.Errorf("Videos[1].Thumbnail = %q, want medium fallback", res.Videos[1].Thumbnail)
	}
}

func TestYouTubeFetcher_DegradesOnAPIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	store := memory.NewMetricsStore()
	f := fetcher.NewYouTubeFetcher("real-key", store,
		fetcher.WithBaseURL(server.URL))

	res := f.Fetch(context.Background(), youtubeSource())

	if !res.Degraded {
		t.Error("Degraded = false, want true")
	}
	if res.Err == nil {
		t.Error("Err = nil, want upstream failure")
	}
	if len(res.Videos) != 5 {
		t.Errorf("len(Videos) = %d, want 5 fallback records", len(res.Videos))
	}
	for _, v := range res.Videos {
		if v.Status != entity.ImportApproved {
			t.Errorf("fallback video status = %q, want approved", v.Status)
		}
	}

	m, ok := store.Get("franceinfo")
	if !ok {
		t.Fatal("metrics for franceinfo not recorded")
	}
	if m.SuccessRate != 0 {
		t.Errorf("SuccessRate = %v, want 0", m.SuccessRate)
	}
	if m.LastError == "" {
		t.Error("LastError empty, want failure message")
	}
}

func TestYouTubeFetcher_EmptySearchResult(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"items":[]}`)
	}))
	defer server.Close()

	f := fetcher.NewYouTubeFetcher("real-key", memory.NewMetricsStore(),
		fetcher.WithBaseURL(server.URL))

	res := f.Fetch(context.Background(), youtubeSource())

	if res.Degraded || res.Err != nil {
		t.Errorf("Fetch() = (degraded=%v, err=%v), want clean empty result", res.Degraded, res.Err)
	}
	if len(res.Videos) != 0 {
		t.Errorf("len(Videos) = %d, want 0", len(res.Videos))
	}
}
