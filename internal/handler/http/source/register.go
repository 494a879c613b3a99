package source

import (
	"net/http"
)

// Register registers the source registry routes with the given mux.
func Register(mux *http.ServeMux, registry RegistryService, sync SyncService, metrics MetricsService) {
	mux.Handle("GET /sources", ListHandler{Svc: registry})
	mux.Handle("POST /sources", ToggleHandler{Svc: registry})
	mux.Handle("POST /sources/sync", SyncHandler{Svc: sync})
	mux.Handle("GET /sources/{id}/metrics", MetricsHandler{Svc: metrics})
}
