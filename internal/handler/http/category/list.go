// Package category exposes the category listing endpoint: the static
// editorial categories merged with the dynamically derived tag categories.
package category

import (
	"context"
	"net/http"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
)

// Service derives the category list from the current catalog.
type Service interface {
	Categories(ctx context.Context) ([]entity.Category, error)
}

// Response is the envelope for the category endpoint.
type Response struct {
	Success    bool              `json:"success"`
	Categories []entity.Category `json:"categories"`
}

// ListHandler serves GET /categories.
type ListHandler struct {
	Svc Service
}

func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Svc.Categories(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}
	if categories == nil {
		categories = []entity.Category{}
	}

	respond.JSON(w, http.StatusOK, Response{Success: true, Categories: categories})
}

// Register registers the category routes with the given mux.
func Register(mux *http.ServeMux, svc Service) {
	mux.Handle("GET /categories", ListHandler{Svc: svc})
}
