// Package source exposes the source registry endpoints: listing, toggling
// a source on or off, and triggering aggregation runs.
package source

import (
	"time"

	"videonews-feed/internal/domain/entity"
)

// DTO is the JSON representation of a configured news source.
type DTO struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        string     `json:"type"`
	URL         string     `json:"url"`
	Category    string     `json:"category"`
	Language    string     `json:"language"`
	Verified    bool       `json:"verified"`
	Active      bool       `json:"active"`
	LastSync    *time.Time `json:"lastSync,omitempty"`
	ChannelID   string     `json:"channelId,omitempty"`
	RSSURL      string     `json:"rssUrl,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Description string     `json:"description,omitempty"`
}

// toDTO maps a registry entry to its JSON form.
func toDTO(s *entity.NewsSource) DTO {
	return DTO{
		ID:          s.ID,
		Name:        s.Name,
		Type:        string(s.Type),
		URL:         s.URL,
		Category:    s.Category,
		Language:    string(s.Language),
		Verified:    s.Verified,
		Active:      s.Active,
		LastSync:    s.LastSync,
		ChannelID:   s.ChannelID,
		RSSURL:      s.RSSURL,
		Icon:        s.Icon,
		Description: s.Description,
	}
}
