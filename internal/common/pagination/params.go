package pagination

import (
	"net/url"
	"strconv"
)

// Params represents offset-based pagination parameters from an HTTP request.
type Params struct {
	Limit  int // Items per request
	Offset int // Number of items to skip
}

// ParseQueryParams parses pagination parameters from a query string.
// Parsing is lenient: missing, malformed, or out-of-range values fall back
// to defaults instead of producing an error, so a bad limit never turns
// into a client-facing 400.
//
// Query parameters:
//   - limit: items per request, clamped to config.MaxLimit
//   - offset: number of items to skip, non-negative
func ParseQueryParams(query url.Values, config Config) Params {
	params := Params{
		Limit:  config.DefaultLimit,
		Offset: 0,
	}

	if limitStr := query.Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if params.Limit > config.MaxLimit {
		params.Limit = config.MaxLimit
	}

	if offsetStr := query.Get("offset"); offsetStr != "" {
		if offset, err := strconv.Atoi(offsetStr); err == nil && offset > 0 {
			params.Offset = offset
		}
	}

	return params
}

// Window applies the parameters to a slice, returning the selected page.
// An offset past the end of the slice yields an empty, non-nil slice.
func Window[T any](items []T, p Params) []T {
	if p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.Limit
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}
