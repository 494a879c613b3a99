package pagination

// Metadata contains pagination metadata included in API responses.
type Metadata struct {
	Total  int `json:"total"`  // Total number of items before windowing
	Limit  int `json:"limit"`  // Items per request
	Offset int `json:"offset"` // Number of items skipped
	Count  int `json:"count"`  // Number of items actually returned
}

// Response is a generic paginated response wrapper.
// T is the type of data items (e.g., VideoDTO, SourceDTO).
type Response[T any] struct {
	Data       []T      `json:"data"`       // Items for the current window
	Pagination Metadata `json:"pagination"` // Pagination metadata
}

// NewResponse creates a paginated response for a windowed slice.
func NewResponse[T any](data []T, params Params, total int) Response[T] {
	return Response[T]{
		Data: data,
		Pagination: Metadata{
			Total:  total,
			Limit:  params.Limit,
			Offset: params.Offset,
			Count:  len(data),
		},
	}
}
