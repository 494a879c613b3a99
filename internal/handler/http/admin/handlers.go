// Package admin exposes the moderation endpoints: the unfiltered video list
// and the visibility/category mutations.
package admin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"videonews-feed/internal/common/pagination"
	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
	videohandler "videonews-feed/internal/handler/http/video"
)

// ModerationService mutates the catalog's moderation fields.
type ModerationService interface {
	ListAll(ctx context.Context) ([]entity.Video, error)
	SetVisible(ctx context.Context, id string, visible bool) error
	AssignCategory(ctx context.Context, id, category string) error
}

// ListHandler serves GET /admin/videos. Unlike the public feed it returns
// every record, hidden ones included, with a pagination envelope.
type ListHandler struct {
	Svc           ModerationService
	PaginationCfg pagination.Config
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videos, err := h.Svc.ListAll(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	params := pagination.ParseQueryParams(r.URL.Query(), h.PaginationCfg)
	page := pagination.Window(videos, params)

	respond.JSON(w, http.StatusOK, pagination.NewResponse(toDTOs(page), params, len(videos)))
}

// ToggleVisibilityHandler serves POST /admin/toggle-visibility.
type ToggleVisibilityHandler struct {
	Svc ModerationService
}

func (h ToggleVisibilityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      string `json:"id"`
		Visible bool   `json:"visible"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.SetVisible(r.Context(), req.ID, req.Visible); err != nil {
		respondMutationError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}

// AssignCategoryHandler serves POST /admin/assign-category.
type AssignCategoryHandler struct {
	Svc ModerationService
}

func (h AssignCategoryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID       string `json:"id"`
		Category string `json:"category"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	if err := h.Svc.AssignCategory(r.Context(), req.ID, req.Category); err != nil {
		respondMutationError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]any{"success": true})
}

func respondMutationError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, entity.ErrNotFound) {
		code = http.StatusNotFound
	}
	var vErr *entity.ValidationError
	if errors.As(err, &vErr) {
		code = http.StatusBadRequest
	}
	respond.SafeError(w, code, err)
}

// toDTOs reuses the public video DTO; moderation sees the same shape plus
// the hidden records.
func toDTOs(videos []entity.Video) []videohandler.DTO {
	return videohandler.ToDTOs(videos)
}

// Register registers the admin routes with the given mux.
func Register(mux *http.ServeMux, svc ModerationService, paginationCfg pagination.Config) {
	mux.Handle("GET /admin/videos", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("POST /admin/toggle-visibility", ToggleVisibilityHandler{Svc: svc})
	mux.Handle("POST /admin/assign-category", AssignCategoryHandler{Svc: svc})
}
