// Package pathutil normalizes dynamic URL paths before they are used as
// metrics labels, keeping the label cardinality bounded.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// pathPatterns covers the dynamic routes of the API. Video and source IDs
// are opaque strings (yt_dQw4w9Wg, rss_lemonde_1a2b3c4d), not integers.
// Evaluated in order, most specific first.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/videos/[^/]+$`), template: "/videos/:id"},
	{pattern: regexp.MustCompile(`^/sources/[^/]+/metrics$`), template: "/sources/:id/metrics"},
	{pattern: regexp.MustCompile(`^/sources/[^/]+$`), template: "/sources/:id"},
}

// staticPaths are never rewritten even though they match a dynamic pattern.
var staticPaths = map[string]bool{
	"/videos":       true,
	"/sources":      true,
	"/sources/sync": true,
}

// NormalizePath converts paths with IDs (e.g., /videos/yt_abc123) to template
// form (e.g., /videos/:id). Static paths pass through unchanged. Query
// parameters and trailing slashes are stripped first.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if staticPaths[path] {
		return path
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}

	return path
}
