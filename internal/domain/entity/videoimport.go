package entity

import "time"

// ImportStatus is the moderation state of a normalized import record.
type ImportStatus string

// Import statuses. Only approved records are promoted into the public feed.
const (
	ImportPending  ImportStatus = "pending"
	ImportApproved ImportStatus = "approved"
	ImportRejected ImportStatus = "rejected"
)

// ImportCreator carries the channel attribution of an imported record.
type ImportCreator struct {
	Name      string `json:"name"`
	ChannelID string `json:"channelId,omitempty"`
}

// VideoImport is the normalized intermediate record produced by a fetcher
// before becoming a public Video. The collection a fetcher returns is
// transient: it lives for one aggregation run and is never retained.
type VideoImport struct {
	ID          string         `json:"id"`
	SourceID    string         `json:"sourceId"`
	OriginalID  string         `json:"originalId"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Thumbnail   string         `json:"thumbnail"`
	DurationSec int            `json:"duration"`
	PublishedAt time.Time      `json:"publishedAt"`
	URL         string         `json:"url"`
	Tags        []string       `json:"tags"`
	Status      ImportStatus   `json:"status"`
	Language    Language       `json:"language"`
	Creator     *ImportCreator `json:"creator,omitempty"`
}

// Validate checks the invariants every normalized record must satisfy.
func (v *VideoImport) Validate() error {
	if v.ID == "" {
		return &ValidationError{Field: "id", Message: "is required"}
	}
	if v.SourceID == "" {
		return &ValidationError{Field: "sourceId", Message: "is required"}
	}
	if v.DurationSec < 0 {
		return &ValidationError{Field: "duration", Message: "must not be negative"}
	}
	if v.PublishedAt.IsZero() {
		return &ValidationError{Field: "publishedAt", Message: "is required"}
	}
	return nil
}

// HasTag reports whether the record carries the given tag.
func (v *VideoImport) HasTag(tag string) bool {
	for _, t := range v.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
