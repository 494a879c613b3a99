// Package feed provides the feed builder use case: a pure
// filter/sort/paginate pipeline producing the final video list for a
// request.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/observability/metrics"
	"videonews-feed/internal/repository"
	"videonews-feed/internal/usecase/aggregate"
)

// Sort modes.
const (
	SortRecent       = "recent"
	SortPopular      = "popular"
	SortPersonalized = "personalized"
)

const (
	// DefaultLimit is the page size used when the caller supplies none.
	DefaultLimit = 20

	// backfillMin is the minimum number of records a category page should
	// carry before backfill kicks in.
	backfillMin = 12
)

// categoryAliases maps the English category slugs to their legacy French
// equivalents so either form matches.
var categoryAliases = map[string]string{
	"politics":      "france",
	"economy":       "economie",
	"sports":        "sport",
	"technology":    "technologie",
	"entertainment": "divertissement",
	"health":        "sante",
}

// Aggregator runs a full aggregation pass on demand.
type Aggregator interface {
	AggregateAll(ctx context.Context) ([]entity.VideoImport, *aggregate.Stats, error)
}

// Query is the strongly-typed form of the feed request parameters.
// Zero values mean "not supplied": empty filters are skipped, a zero
// Limit falls back to DefaultLimit and a negative Offset to 0.
type Query struct {
	Category      string
	Search        string
	Sort          string
	Limit         int
	Offset        int
	Duration      string
	Source        string
	Language      string
	Exclude       string
	Subscriptions []string
	LastViewed    []string
	IncludeFrench bool
}

// Service builds feed responses from the video catalog, optionally merged
// with a live aggregation pass.
type Service struct {
	Videos     repository.VideoRepository
	Aggregator Aggregator

	now func() time.Time
}

// NewService creates a feed service. aggregator may be nil, in which case
// IncludeFrench requests serve the catalog alone.
func NewService(videos repository.VideoRepository, aggregator Aggregator) *Service {
	return &Service{
		Videos:     videos,
		Aggregator: aggregator,
		now:        time.Now,
	}
}

// Build produces one page of the feed. With identical parameters and an
// unchanged catalog the ordering and page contents are identical between
// calls.
func (s *Service) Build(ctx context.Context, q Query) ([]entity.Video, error) {
	start := s.now()

	base, err := s.Videos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	now := s.now()
	fresh := filterFresh(base, now)
	working := fresh

	if q.IncludeFrench && s.Aggregator != nil {
		imports, _, err := s.Aggregator.AggregateAll(ctx)
		if err != nil {
			// An aggregation failure never aborts the request; the
			// catalog alone is still a renderable feed.
			slog.Error("aggregation failed, serving catalog only",
				slog.Any("error", err))
		} else {
			converted := make([]entity.Video, 0, len(imports))
			for i := range imports {
				if imports[i].Status != entity.ImportApproved {
					continue
				}
				converted = append(converted, ImportToVideo(&imports[i]))
			}
			working = append(converted, working...)
		}
	}

	if q.Category != "" {
		working = filterCategory(working, q.Category)
	}
	if q.Search != "" {
		working = filterSearch(working, q.Search)
	}
	if q.Duration != "" {
		if bucket, ok := entity.ParseDurationBucket(q.Duration); ok {
			working = filterBucket(working, bucket)
		}
	}
	if q.Source != "" {
		working = filterSource(working, entity.VideoSource(q.Source))
	}
	if q.Language != "" {
		working = filterLanguage(working, entity.Language(q.Language))
	}
	if q.Exclude != "" {
		working = filterExclude(working, q.Exclude)
	}

	// Category pages backfill from the full fresh catalog so they never
	// render nearly empty.
	if q.Category != "" {
		working = backfill(working, fresh, backfillMin)
	}

	sortMode := sortVideos(working, q)
	page := paginate(working, q.Limit, q.Offset)

	metrics.RecordFeedBuild(sortMode, s.now().Sub(start))

	return page, nil
}

// filterFresh keeps visible videos published within the freshness window.
func filterFresh(videos []entity.Video, now time.Time) []entity.Video {
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if videos[i].Visible && videos[i].IsFresh(now, entity.FreshnessWindow) {
			out = append(out, videos[i])
		}
	}
	return out
}

func filterCategory(videos []entity.Video, category string) []entity.Video {
	alias := categoryAliases[category]
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if videos[i].Category == category || (alias != "" && videos[i].Category == alias) {
			out = append(out, videos[i])
		}
	}
	return out
}

func filterSearch(videos []entity.Video, query string) []entity.Video {
	q := strings.ToLower(query)
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		v := &videos[i]
		if matchesSearch(v, q) {
			out = append(out, videos[i])
		}
	}
	return out
}

func matchesSearch(v *entity.Video, q string) bool {
	if strings.Contains(strings.ToLower(v.Title), q) ||
		strings.Contains(strings.ToLower(v.Description), q) {
		return true
	}
	for _, tag := range v.DynamicTags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return v.Creator != nil && strings.Contains(strings.ToLower(v.Creator.Name), q)
}

func filterBucket(videos []entity.Video, bucket entity.DurationBucket) []entity.Video {
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if entity.BucketForDuration(videos[i].DurationSec) == bucket {
			out = append(out, videos[i])
		}
	}
	return out
}

func filterSource(videos []entity.Video, source entity.VideoSource) []entity.Video {
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if videos[i].Source == source {
			out = append(out, videos[i])
		}
	}
	return out
}

func filterLanguage(videos []entity.Video, language entity.Language) []entity.Video {
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if videos[i].Language == language {
			out = append(out, videos[i])
		}
	}
	return out
}

func filterExclude(videos []entity.Video, id string) []entity.Video {
	out := make([]entity.Video, 0, len(videos))
	for i := range videos {
		if videos[i].ID != id {
			out = append(out, videos[i])
		}
	}
	return out
}

// backfill tops an under-populated result up to minCount with the
// highest-view catalog videos not already present.
func backfill(filtered, catalog []entity.Video, minCount int) []entity.Video {
	if len(filtered) >= minCount {
		return filtered
	}

	seen := make(map[string]struct{}, len(filtered))
	for i := range filtered {
		seen[filtered[i].ID] = struct{}{}
	}

	candidates := make([]entity.Video, 0, len(catalog))
	for i := range catalog {
		if _, ok := seen[catalog[i].ID]; !ok {
			candidates = append(candidates, catalog[i])
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].Views > candidates[j].Views
	})

	missing := minCount - len(filtered)
	if missing > len(candidates) {
		missing = len(candidates)
	}

	return append(filtered, candidates[:missing]...)
}

// sortVideos orders the working set in place and returns the normalized
// sort mode.
func sortVideos(videos []entity.Video, q Query) string {
	switch q.Sort {
	case SortPopular:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].Views > videos[j].Views
		})
		return SortPopular

	case SortPersonalized:
		type scored struct {
			video entity.Video
			score float64
		}
		pairs := make([]scored, len(videos))
		for i := range videos {
			pairs[i] = scored{
				video: videos[i],
				score: personalScore(&videos[i], q.Subscriptions, q.LastViewed),
			}
		}
		sort.SliceStable(pairs, func(i, j int) bool {
			return pairs[i].score > pairs[j].score
		})
		for i := range pairs {
			videos[i] = pairs[i].video
		}
		return SortPersonalized

	default:
		sort.SliceStable(videos, func(i, j int) bool {
			return videos[i].PublishedAt.After(videos[j].PublishedAt)
		})
		return SortRecent
	}
}

func personalScore(v *entity.Video, subscriptions, lastViewed []string) float64 {
	score := float64(v.Views) / 10000
	if containsString(subscriptions, v.Category) {
		score += 100
	}
	if containsString(lastViewed, v.Category) {
		score += 50
	}
	return score
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

// paginate slices [offset, offset+limit) with soft defaults. The result is
// never nil.
func paginate(videos []entity.Video, limit, offset int) []entity.Video {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(videos) {
		return []entity.Video{}
	}
	end := offset + limit
	if end > len(videos) {
		end = len(videos)
	}
	return videos[offset:end]
}
