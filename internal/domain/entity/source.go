package entity

import (
	"fmt"
	"time"
)

// SourceType distinguishes the upstream provider kinds a NewsSource can have.
type SourceType string

// Supported source types. YouTube and RSS have dedicated fetchers; the
// remaining types are served synthetic demo data.
const (
	SourceTypeYouTube SourceType = "youtube"
	SourceTypeRSS     SourceType = "rss"
	SourceTypeWebsite SourceType = "website"
	SourceTypeAPI     SourceType = "api"
)

// NewsSource is a configured upstream provider of video-news content.
// Sources are defined at process start from static configuration; only
// Active and LastSync are mutated at runtime, and sources are never deleted.
type NewsSource struct {
	ID          string     `yaml:"id"`
	Name        string     `yaml:"name"`
	Type        SourceType `yaml:"type"`
	URL         string     `yaml:"url"`
	Category    string     `yaml:"category"`
	Language    Language   `yaml:"language"`
	Verified    bool       `yaml:"verified"`
	Active      bool       `yaml:"active"`
	LastSync    *time.Time `yaml:"-"`
	ChannelID   string     `yaml:"channelId,omitempty"`
	RSSURL      string     `yaml:"rssUrl,omitempty"`
	Icon        string     `yaml:"icon,omitempty"`
	Description string     `yaml:"description,omitempty"`
}

// Validate checks the NewsSource fields that the aggregation pipeline relies on.
func (s *NewsSource) Validate() error {
	if s.ID == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if s.Name == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}

	switch s.Type {
	case SourceTypeYouTube, SourceTypeRSS, SourceTypeWebsite, SourceTypeAPI:
	default:
		return fmt.Errorf("invalid source type: %q (must be youtube, rss, website, or api)", s.Type)
	}

	switch s.Language {
	case LanguageFrench, LanguageEnglish:
	default:
		return fmt.Errorf("invalid source language: %q (must be fr or en)", s.Language)
	}

	return nil
}
