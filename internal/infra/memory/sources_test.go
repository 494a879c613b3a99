package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"videonews-feed/internal/domain/entity"
)

func seedTwo() []entity.NewsSource {
	return []entity.NewsSource{
		{ID: "bfmtv", Name: "BFM TV", Type: entity.SourceTypeYouTube, Language: entity.LanguageFrench, Category: "politics", Active: true},
		{ID: "lesechos", Name: "Les Echos", Type: entity.SourceTypeRSS, Language: entity.LanguageFrench, Category: "economy", Active: false},
	}
}

func TestDefaultSources(t *testing.T) {
	srcs, err := DefaultSources()
	if err != nil {
		t.Fatalf("DefaultSources() error: %v", err)
	}
	if len(srcs) != 17 {
		t.Fatalf("DefaultSources() returned %d sources, want 17", len(srcs))
	}
	for _, s := range srcs {
		if err := s.Validate(); err != nil {
			t.Errorf("embedded source %q invalid: %v", s.ID, err)
		}
	}
}

func TestSourceRegistry_ListActive(t *testing.T) {
	reg := NewSourceRegistry(seedTwo())

	active, err := reg.ListActive(context.Background())
	if err != nil {
		t.Fatalf("ListActive() error: %v", err)
	}
	if len(active) != 1 || active[0].ID != "bfmtv" {
		t.Fatalf("ListActive() = %+v, want only bfmtv", active)
	}
}

func TestSourceRegistry_SetActive(t *testing.T) {
	reg := NewSourceRegistry(seedTwo())

	src, err := reg.SetActive(context.Background(), "lesechos", true)
	if err != nil {
		t.Fatalf("SetActive() error: %v", err)
	}
	if !src.Active {
		t.Error("SetActive(true) returned inactive source")
	}
	if src.LastSync == nil {
		t.Error("SetActive() should stamp LastSync")
	}

	active, _ := reg.ListActive(context.Background())
	if len(active) != 2 {
		t.Errorf("after toggle, %d active sources, want 2", len(active))
	}
}

func TestSourceRegistry_UnknownID(t *testing.T) {
	reg := NewSourceRegistry(seedTwo())

	if _, err := reg.Get(context.Background(), "nope"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("Get(nope) error = %v, want ErrNotFound", err)
	}
	if _, err := reg.SetActive(context.Background(), "nope", true); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("SetActive(nope) error = %v, want ErrNotFound", err)
	}
	if err := reg.TouchLastSync(context.Background(), "nope", time.Now()); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("TouchLastSync(nope) error = %v, want ErrNotFound", err)
	}
}

// Mutating a returned copy must not leak into registry state.
func TestSourceRegistry_CopySemantics(t *testing.T) {
	reg := NewSourceRegistry(seedTwo())

	src, _ := reg.Get(context.Background(), "bfmtv")
	src.Active = false

	again, _ := reg.Get(context.Background(), "bfmtv")
	if !again.Active {
		t.Error("mutation of returned copy leaked into the registry")
	}
}
