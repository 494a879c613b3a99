// Package fetcher provides implementations for pulling videos from upstream
// sources (YouTube Data API, RSS/Atom feeds) and normalizing them into
// import records. Fetchers never fail an aggregation run: when an upstream
// is unreachable they degrade to synthetic fallback data and report the
// cause through the aggregate.Result they return.
package fetcher

import (
	"videonews-feed/internal/usecase/aggregate"
)

var (
	_ aggregate.Fetcher = (*YouTubeFetcher)(nil)
	_ aggregate.Fetcher = (*RSSFetcher)(nil)
	_ aggregate.Fetcher = (*SyntheticFetcher)(nil)
)
