package source

import (
	"encoding/json"
	"errors"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
)

// ToggleHandler serves POST /sources. It flips a source's active flag and
// stamps its last sync time.
type ToggleHandler struct {
	Svc RegistryService
}

func (h ToggleHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SourceID string `json:"sourceId"`
		Active   bool   `json:"active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}
	if req.SourceID == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("sourceId is required"))
		return
	}

	src, err := h.Svc.Toggle(r.Context(), req.SourceID, req.Active)
	if err != nil {
		code := http.StatusInternalServerError
		if errors.Is(err, entity.ErrNotFound) {
			code = http.StatusNotFound
		}
		var vErr *entity.ValidationError
		if errors.As(err, &vErr) {
			code = http.StatusBadRequest
		}
		respond.SafeError(w, code, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{
		"success": true,
		"source":  toDTO(src),
	})
}
