package video

import (
	"context"
	"errors"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
)

// LookupService resolves single video records by id.
type LookupService interface {
	Get(ctx context.Context, id string) (*entity.Video, error)
}

// GetHandler serves GET /videos/{id}.
type GetHandler struct {
	Svc LookupService
}

func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("video id is required"))
		return
	}

	v, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, toDTO(v))
}
