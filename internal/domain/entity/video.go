// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Video, NewsSource and VideoImport,
// along with their validation rules and domain-specific errors.
package entity

import "time"

// FreshnessWindow is how far back the feed reaches. Videos published
// earlier than this never enter the public feed, and fetchers never import
// records older than it.
const FreshnessWindow = 7 * 24 * time.Hour

// VideoSource identifies the platform a public video record came from.
type VideoSource string

// Supported video platforms.
const (
	SourceYouTube     VideoSource = "youtube"
	SourceVimeo       VideoSource = "vimeo"
	SourceDailymotion VideoSource = "dailymotion"
	SourceRSS         VideoSource = "rss"
	SourceCreator     VideoSource = "creator"
)

// Language is a two-letter content language code.
type Language string

// Supported content languages.
const (
	LanguageFrench  Language = "fr"
	LanguageEnglish Language = "en"
)

// Creator describes the channel or author behind a video.
type Creator struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	SubscriberCount int    `json:"subscriberCount,omitempty"`
}

// Video is the public-facing video record served by the feed endpoints.
// Records are never physically deleted; moderation hides them via Visible.
type Video struct {
	ID          string
	Title       string
	Description string
	Category    string
	DynamicTags []string
	Source      VideoSource
	URL         string
	Thumbnail   string
	DurationSec int
	PublishedAt time.Time
	Views       int
	Likes       int
	Comments    int
	Language    Language
	Visible     bool
	Creator     *Creator
}

// IsFresh reports whether the video was published within the freshness
// window ending at now.
func (v *Video) IsFresh(now time.Time, window time.Duration) bool {
	return now.Sub(v.PublishedAt) <= window
}

// Category is a browsable feed category. Static categories come from the
// fixed editorial list; dynamic ones are derived from tag frequency.
type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	IsDynamic bool   `json:"isDynamic"`
	Icon      string `json:"icon,omitempty"`
}
