package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/usecase/aggregate"
)

// HealthResponse represents a simple health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// SourceHealthResponse reports the per-source health of the last sync runs.
type SourceHealthResponse struct {
	Healthy bool                   `json:"healthy"`
	Sources []entity.SourceMetrics `json:"sources"`
}

// startMetricsServer starts the Prometheus metrics HTTP server.
// It runs in a separate goroutine and supports graceful shutdown via context.
//
// Endpoints:
//   - GET /metrics - Prometheus metrics endpoint
//   - GET /health - liveness probe, always 200 OK
//   - GET /health/sources - per-source sync health, 503 when any source
//     is failing (successRate 0 with a recorded error)
//
// METRICS_PORT selects the listen port (default 9090).
func startMetricsServer(ctx context.Context, logger *slog.Logger, svc *aggregate.Service) *http.Server {
	port := getMetricsPort()

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", healthHandler)
	mux.HandleFunc("/health/sources", sourceHealthHandler(svc))

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		logger.Info("metrics server starting", slog.Int("port", port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server error", slog.Any("error", err))
		}
	}()

	go func() {
		<-ctx.Done()
		logger.Info("metrics server shutdown initiated")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("metrics server stopped")
		}
	}()

	return server
}

// getMetricsPort retrieves the metrics server port from environment variable.
// Defaults to 9090 if not set or invalid.
func getMetricsPort() int {
	portStr := os.Getenv("METRICS_PORT")
	if portStr == "" {
		return 9090
	}

	port, err := strconv.Atoi(portStr)
	if err != nil || port <= 0 || port > 65535 {
		return 9090
	}

	return port
}

// healthHandler handles GET /health requests (liveness probe).
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(HealthResponse{Status: "healthy"})
}

// sourceHealthHandler creates a handler for GET /health/sources.
// Returns 200 OK while every synced source is succeeding and 503 when any
// source's last sync failed. Sources that have never synced don't count
// against health.
func sourceHealthHandler(svc *aggregate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		snapshots := svc.AllMetrics()

		healthy := true
		for _, m := range snapshots {
			if m.SuccessRate == 0 && m.LastError != "" {
				healthy = false
			}
		}

		statusCode := http.StatusOK
		if !healthy {
			statusCode = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_ = json.NewEncoder(w).Encode(SourceHealthResponse{
			Healthy: healthy,
			Sources: snapshots,
		})
	}
}
