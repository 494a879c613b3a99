package feed

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"videonews-feed/internal/domain/entity"
)

// dynamicCategoryLimit caps how many tag-derived categories join the
// static list.
const dynamicCategoryLimit = 5

// staticCategories is the fixed editorial category list.
var staticCategories = []entity.Category{
	{ID: "1", Name: "Pour vous", Slug: "pour-vous", Icon: "⭐"},
	{ID: "2", Name: "Actualité locale", Slug: "actualite-locale", Icon: "📍"},
	{ID: "3", Name: "France", Slug: "france", Icon: "🇫🇷"},
	{ID: "4", Name: "Monde", Slug: "monde", Icon: "🌍"},
	{ID: "5", Name: "Économie", Slug: "economie", Icon: "💼"},
	{ID: "6", Name: "Science", Slug: "science", Icon: "🔬"},
	{ID: "7", Name: "Santé", Slug: "sante", Icon: "🏥"},
	{ID: "8", Name: "Technologie", Slug: "technologie", Icon: "💻"},
	{ID: "9", Name: "Culture", Slug: "culture", Icon: "🎭"},
	{ID: "10", Name: "Sport", Slug: "sport", Icon: "⚽"},
	{ID: "11", Name: "Divertissement", Slug: "divertissement", Icon: "🎬"},
}

// Categories returns the static editorial list plus the most frequent
// tag-derived categories across the fresh catalog.
func (s *Service) Categories(ctx context.Context) ([]entity.Category, error) {
	base, err := s.Videos.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}

	fresh := filterFresh(base, s.now())
	dynamic := deriveDynamicCategories(fresh, dynamicCategoryLimit)

	out := make([]entity.Category, 0, len(staticCategories)+len(dynamic))
	out = append(out, staticCategories...)
	out = append(out, dynamic...)
	return out, nil
}

// deriveDynamicCategories ranks tags by how many fresh videos carry them.
// Ties keep first-seen order so the result is stable for a fixed catalog.
func deriveDynamicCategories(videos []entity.Video, limit int) []entity.Category {
	counts := make(map[string]int)
	order := make([]string, 0)

	for i := range videos {
		for _, tag := range videos[i].DynamicTags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]entity.Category, 0, len(order))
	for _, tag := range order {
		out = append(out, entity.Category{
			ID:        "dynamic-" + tag,
			Name:      titleizeTag(tag),
			Slug:      tag,
			IsDynamic: true,
		})
	}
	return out
}

// titleizeTag turns a kebab-case tag into a display name.
func titleizeTag(tag string) string {
	parts := strings.Split(tag, "-")
	for i, p := range parts {
		r := []rune(p)
		if len(r) == 0 {
			continue
		}
		r[0] = unicode.ToUpper(r[0])
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}
