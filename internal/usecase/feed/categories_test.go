package feed_test

import (
	"context"
	"testing"
	"time"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/infra/memory"
	"videonews-feed/internal/usecase/feed"
)

func taggedVideo(id string, age time.Duration, tags ...string) entity.Video {
	v := buildVideo(video{id: id, category: "monde", views: 10, age: age})
	v.DynamicTags = tags
	return v
}

func TestService_Categories(t *testing.T) {
	svc := feed.NewService(memory.NewVideoCatalog([]entity.Video{
		taggedVideo("a", day(1), "climat", "energie"),
		taggedVideo("b", day(2), "climat", "elections"),
		taggedVideo("c", day(3), "climat", "energie"),
		taggedVideo("d", day(1), "espace"),
		taggedVideo("e", day(1), "ia", "espace"),
		taggedVideo("f", day(2), "transports"),
		taggedVideo("stale", day(10), "jamais-vu"),
	}), nil)

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}

	var static, dynamic []entity.Category
	for _, c := range got {
		if c.IsDynamic {
			dynamic = append(dynamic, c)
		} else {
			static = append(static, c)
		}
	}

	if len(static) != 11 {
		t.Errorf("static categories = %d, want 11", len(static))
	}
	if static[0].Slug != "pour-vous" {
		t.Errorf("static[0].Slug = %q, want pour-vous", static[0].Slug)
	}

	if len(dynamic) != 5 {
		t.Fatalf("dynamic categories = %d, want 5", len(dynamic))
	}
	// climat (3) leads, then energie and espace (2 each, first-seen order),
	// then two of the single-use tags.
	if dynamic[0].Slug != "climat" {
		t.Errorf("dynamic[0].Slug = %q, want climat", dynamic[0].Slug)
	}
	if dynamic[1].Slug != "energie" || dynamic[2].Slug != "espace" {
		t.Errorf("dynamic[1..2] = %q, %q, want energie, espace", dynamic[1].Slug, dynamic[2].Slug)
	}
	if dynamic[0].ID != "dynamic-climat" {
		t.Errorf("dynamic[0].ID = %q, want dynamic-climat", dynamic[0].ID)
	}

	// The stale video's tag never surfaces.
	for _, c := range dynamic {
		if c.Slug == "jamais-vu" {
			t.Error("tag from stale video surfaced as dynamic category")
		}
	}
}

func TestService_Categories_TitleizesTags(t *testing.T) {
	svc := feed.NewService(memory.NewVideoCatalog([]entity.Video{
		taggedVideo("a", day(1), "vie-quotidienne"),
	}), nil)

	got, err := svc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}

	last := got[len(got)-1]
	if !last.IsDynamic || last.Name != "Vie Quotidienne" {
		t.Errorf("dynamic category = %+v, want name Vie Quotidienne", last)
	}
}
