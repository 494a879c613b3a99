package source

import (
	"context"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
)

// RegistryService manages the configured news sources.
type RegistryService interface {
	List(ctx context.Context) ([]*entity.NewsSource, error)
	Toggle(ctx context.Context, id string, active bool) (*entity.NewsSource, error)
}

// ListResponse is the envelope for the source listing endpoint.
type ListResponse struct {
	Success bool  `json:"success"`
	Sources []DTO `json:"sources"`
	Total   int   `json:"total"`
}

// ListHandler serves GET /sources.
type ListHandler struct {
	Svc RegistryService
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	sources, err := h.Svc.List(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := make([]DTO, 0, len(sources))
	for _, s := range sources {
		out = append(out, toDTO(s))
	}

	respond.JSON(w, http.StatusOK, ListResponse{Success: true, Sources: out, Total: len(out)})
}
