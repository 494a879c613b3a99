package entity

// SourceMetrics is the per-source health snapshot recomputed on every
// aggregation run. It is held in memory only and not persisted across
// restarts.
type SourceMetrics struct {
	SourceID    string  `json:"sourceId"`
	VideosToday int     `json:"videosToday"`
	VideosWeek  int     `json:"videosWeek"`
	TotalViews  int     `json:"totalViews"`
	AvgViews    int     `json:"avgViews"`
	SuccessRate float64 `json:"successRate"`
	LastError   string  `json:"lastError,omitempty"`
	Uptime      float64 `json:"uptime"`
}

// NewSourceMetrics returns the baseline snapshot for a source that has not
// failed yet.
func NewSourceMetrics(sourceID string) SourceMetrics {
	return SourceMetrics{
		SourceID:    sourceID,
		SuccessRate: 100,
		Uptime:      100,
	}
}
