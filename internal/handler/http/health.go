// Package http provides HTTP handlers and middleware for the API server.
// It includes the feed, category, source and admin handlers, health check
// endpoints, metrics collection, and various middleware components.
package http

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"videonews-feed/internal/repository"
)

// HealthResponse represents the JSON response for health check endpoints.
type HealthResponse struct {
	Status    string                 `json:"status"`    // "healthy" or "unhealthy"
	Timestamp string                 `json:"timestamp"` // ISO 8601 format
	Checks    map[string]CheckStatus `json:"checks"`    // Status of each check item
	Version   string                 `json:"version"`   // Application version
}

// CheckStatus represents the status of a single health check.
type CheckStatus struct {
	Status  string                 `json:"status"`            // "healthy" or "unhealthy"
	Message string                 `json:"message,omitempty"` // Optional status message
	Details map[string]interface{} `json:"details,omitempty"` // Optional additional details
}

// HealthHandler handles health check endpoint requests. It verifies that the
// source registry and the video catalog are loaded and reports their sizes.
type HealthHandler struct {
	Sources repository.SourceRepository
	Videos  repository.VideoRepository
	Version string
}

// ServeHTTP performs health checks and returns the application health status.
// Returns 200 OK if healthy, or 503 Service Unavailable if any check fails.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]CheckStatus)
	allHealthy := true

	if h.Sources != nil {
		check := h.checkSources(ctx)
		checks["sources"] = check
		if check.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["sources"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	if h.Videos != nil {
		check := h.checkCatalog(ctx)
		checks["catalog"] = check
		if check.Status == "unhealthy" {
			allHealthy = false
		}
	} else {
		checks["catalog"] = CheckStatus{Status: "unhealthy", Message: "not configured"}
		allHealthy = false
	}

	status := "healthy"
	statusCode := http.StatusOK
	if !allHealthy {
		status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	response := HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    checks,
		Version:   h.Version,
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("health: failed to encode response: %v", err)
	}
}

// checkSources verifies the source registry is loaded and counts active sources.
func (h *HealthHandler) checkSources(ctx context.Context) CheckStatus {
	sources, err := h.Sources.List(ctx)
	if err != nil {
		return CheckStatus{Status: "unhealthy", Message: err.Error()}
	}
	if len(sources) == 0 {
		return CheckStatus{Status: "unhealthy", Message: "source registry is empty"}
	}

	active := 0
	for _, s := range sources {
		if s.Active {
			active++
		}
	}

	return CheckStatus{
		Status: "healthy",
		Details: map[string]interface{}{
			"total":  len(sources),
			"active": active,
		},
	}
}

// checkCatalog verifies the video catalog is loaded.
func (h *HealthHandler) checkCatalog(ctx context.Context) CheckStatus {
	videos, err := h.Videos.List(ctx)
	if err != nil {
		return CheckStatus{Status: "unhealthy", Message: err.Error()}
	}

	visible := 0
	for i := range videos {
		if videos[i].Visible {
			visible++
		}
	}

	return CheckStatus{
		Status: "healthy",
		Details: map[string]interface{}{
			"total":   len(videos),
			"visible": visible,
		},
	}
}

// ReadyHandler handles Kubernetes readiness probe requests.
// It reports ready once the source registry is loaded.
type ReadyHandler struct {
	Sources repository.SourceRepository
}

// ServeHTTP performs readiness checks and returns 200 OK if ready,
// or 503 Service Unavailable if the registry is not loaded.
func (h *ReadyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if h.Sources == nil {
		http.Error(w, "source registry not configured", http.StatusServiceUnavailable)
		return
	}

	sources, err := h.Sources.List(ctx)
	if err != nil || len(sources) == 0 {
		http.Error(w, "source registry not ready", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("ready")); err != nil {
		log.Printf("ready: failed to write response: %v", err)
	}
}

// LiveHandler handles Kubernetes liveness probe requests.
// It performs a lightweight check to verify the application is responsive.
type LiveHandler struct{}

// ServeHTTP performs a simple liveness check and always returns 200 OK
// if the application is running and able to respond.
func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("alive")); err != nil {
		log.Printf("alive: failed to write response: %v", err)
	}
}
