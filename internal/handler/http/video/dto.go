// Package video exposes the public feed endpoints: the filtered, sorted and
// paginated video list and single-video lookup.
package video

import (
	"time"

	"videonews-feed/internal/domain/entity"
)

// CreatorDTO describes the channel or author behind a video.
type CreatorDTO struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SubscriberCount int    `json:"subscriberCount,omitempty"`
}

// DTO is the JSON representation of a video record.
type DTO struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	DynamicTags []string    `json:"dynamicTags"`
	Source      string      `json:"source"`
	URL         string      `json:"url"`
	Thumbnail   string      `json:"thumbnail"`
	DurationSec int         `json:"durationSec"`
	PublishedAt time.Time   `json:"publishedAt"`
	Views       int         `json:"views"`
	Likes       int         `json:"likes"`
	Comments    int         `json:"comments"`
	Language    string      `json:"language"`
	Visible     bool        `json:"visible"`
	Creator     *CreatorDTO `json:"creator,omitempty"`
}

// toDTO maps a domain video to its JSON form.
func toDTO(v *entity.Video) DTO {
	tags := v.DynamicTags
	if tags == nil {
		tags = []string{}
	}

	out := DTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Category:    v.Category,
		DynamicTags: tags,
		Source:      string(v.Source),
		URL:         v.URL,
		Thumbnail:   v.Thumbnail,
		DurationSec: v.DurationSec,
		PublishedAt: v.PublishedAt,
		Views:       v.Views,
		Likes:       v.Likes,
		Comments:    v.Comments,
		Language:    string(v.Language),
		Visible:     v.Visible,
	}
	if v.Creator != nil {
		out.Creator = &CreatorDTO{
			ID:              v.Creator.ID,
			Name:            v.Creator.Name,
			SubscriberCount: v.Creator.SubscriberCount,
		}
	}
	return out
}

// ToDTOs maps a slice of domain videos. Always returns a non-nil slice.
// Exported for the admin handlers, which serve the same record shape.
func ToDTOs(videos []entity.Video) []DTO {
	out := make([]DTO, 0, len(videos))
	for i := range videos {
		out = append(out, toDTO(&videos[i]))
	}
	return out
}
