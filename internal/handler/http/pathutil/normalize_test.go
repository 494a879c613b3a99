package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/yt_dQw4w9Wg", "/videos/:id"},
		{"/videos/rss_lemonde_1a2b3c4d", "/videos/:id"},
		{"/videos/mock_bfmtv_3", "/videos/:id"},
		{"/sources/franceinfo", "/sources/:id"},
		{"/sources/franceinfo/metrics", "/sources/:id/metrics"},

		// Static paths pass through
		{"/videos", "/videos"},
		{"/sources", "/sources"},
		{"/sources/sync", "/sources/sync"},
		{"/categories", "/categories"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/admin/videos", "/admin/videos"},

		// Query parameters and trailing slashes are stripped
		{"/videos/yt_abc?fields=title", "/videos/:id"},
		{"/videos/yt_abc/", "/videos/:id"},
		{"/videos?category=politics&limit=5", "/videos"},

		// Unknown paths are returned unchanged
		{"/unknown/path/123", "/unknown/path/123"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizePath(tt.path))
		})
	}
}
