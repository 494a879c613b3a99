package memory

import (
	"fmt"
	"sync"
	"testing"

	"videonews-feed/internal/domain/entity"
)

func TestMetricsStore_UpdateSeedsBaseline(t *testing.T) {
	store := NewMetricsStore()

	store.Update("bfmtv", func(m *entity.SourceMetrics) {
		m.VideosWeek = 12
	})

	m, ok := store.Get("bfmtv")
	if !ok {
		t.Fatal("Get(bfmtv) not found after Update")
	}
	if m.VideosWeek != 12 {
		t.Errorf("VideosWeek = %d, want 12", m.VideosWeek)
	}
	// untouched fields keep the healthy baseline
	if m.SuccessRate != 100 || m.Uptime != 100 {
		t.Errorf("baseline not applied: successRate=%v uptime=%v", m.SuccessRate, m.Uptime)
	}
}

func TestMetricsStore_LastWriteWins(t *testing.T) {
	store := NewMetricsStore()

	store.Update("src", func(m *entity.SourceMetrics) { m.SuccessRate = 0; m.LastError = "boom" })
	store.Update("src", func(m *entity.SourceMetrics) { m.SuccessRate = 100 })

	m, _ := store.Get("src")
	if m.SuccessRate != 100 {
		t.Errorf("SuccessRate = %v, want 100", m.SuccessRate)
	}
	// fields not touched by the second write survive
	if m.LastError != "boom" {
		t.Errorf("LastError = %q, want boom", m.LastError)
	}
}

func TestMetricsStore_All_Sorted(t *testing.T) {
	store := NewMetricsStore()
	for _, id := range []string{"zulu", "alpha", "mike"} {
		store.Update(id, func(m *entity.SourceMetrics) {})
	}

	all := store.All()
	if len(all) != 3 {
		t.Fatalf("All() returned %d entries, want 3", len(all))
	}
	if all[0].SourceID != "alpha" || all[1].SourceID != "mike" || all[2].SourceID != "zulu" {
		t.Errorf("All() not sorted by source id: %+v", all)
	}
}

// Parallel fetch completions hammer different keys concurrently.
func TestMetricsStore_ConcurrentUpdates(t *testing.T) {
	store := NewMetricsStore()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("src-%d", i)
		for j := 0; j < 50; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				store.Update(id, func(m *entity.SourceMetrics) { m.VideosWeek++ })
			}()
		}
	}
	wg.Wait()

	for i := 0; i < 8; i++ {
		m, _ := store.Get(fmt.Sprintf("src-%d", i))
		if m.VideosWeek != 50 {
			t.Errorf("src-%d VideosWeek = %d, want 50", i, m.VideosWeek)
		}
	}
}
