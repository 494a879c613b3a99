package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"videonews-feed/internal/common/pagination"
	"videonews-feed/internal/config"
	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/infra/fetcher"
	"videonews-feed/internal/infra/memory"
	"videonews-feed/internal/observability/logging"

	"videonews-feed/internal/usecase/aggregate"
	feedUC "videonews-feed/internal/usecase/feed"
	srcUC "videonews-feed/internal/usecase/source"
	videoUC "videonews-feed/internal/usecase/video"

	hhttp "videonews-feed/internal/handler/http"
	hadmin "videonews-feed/internal/handler/http/admin"
	hcategory "videonews-feed/internal/handler/http/category"
	"videonews-feed/internal/handler/http/requestid"
	hsrc "videonews-feed/internal/handler/http/source"
	hvideo "videonews-feed/internal/handler/http/video"
)

func main() {
	logger := initLogger()
	cfg := config.Load()

	components := setupServer(logger, cfg)
	runServer(logger, cfg, components)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// loadSources loads the source registry seed, falling back to the embedded
// catalog when no override file is configured or the file is unreadable.
func loadSources(logger *slog.Logger, cfg config.AppConfig) []entity.NewsSource {
	if cfg.SourcesFile != "" {
		srcs, err := memory.LoadSources(cfg.SourcesFile)
		if err == nil {
			logger.Info("source registry loaded from file",
				slog.String("path", cfg.SourcesFile),
				slog.Int("sources", len(srcs)))
			return srcs
		}
		logger.Warn("failed to load sources file, using embedded seed",
			slog.String("path", cfg.SourcesFile),
			slog.Any("error", err))
	}

	srcs, err := memory.DefaultSources()
	if err != nil {
		logger.Error("failed to load embedded source seed", slog.Any("error", err))
		os.Exit(1)
	}
	return srcs
}

// ServerComponents holds components needed for server operation and cleanup.
type ServerComponents struct {
	Handler http.Handler
}

// setupServer wires the in-memory stores, fetchers, use cases and routes
// into the HTTP handler.
func setupServer(logger *slog.Logger, cfg config.AppConfig) *ServerComponents {
	registry := memory.NewSourceRegistry(loadSources(logger, cfg))
	catalog := memory.NewVideoCatalog(memory.GenerateCatalog(time.Now()))
	metricsStore := memory.NewMetricsStore()

	httpClient := &http.Client{Timeout: cfg.FetchTimeout}
	fetchers := map[entity.SourceType]aggregate.Fetcher{
		entity.SourceTypeYouTube: fetcher.NewYouTubeFetcher(
			cfg.YouTubeAPIKey,
			metricsStore,
			fetcher.WithHTTPClient(httpClient),
			fetcher.WithYouTubeMaxResults(cfg.YouTubeMaxResults),
		),
		entity.SourceTypeRSS: fetcher.NewRSSFetcher(
			metricsStore,
			fetcher.WithRSSClient(httpClient),
			fetcher.WithRSSMaxResults(cfg.RSSMaxResults),
		),
	}
	fallback := fetcher.NewSyntheticFetcher(5)

	aggSvc := aggregate.NewService(registry, metricsStore, fetchers, fallback)
	feedSvc := feedUC.NewService(catalog, aggSvc)
	srcSvc := srcUC.NewService(registry)
	videoSvc := videoUC.NewService(catalog)

	if cfg.YouTubeAPIKey == "" || cfg.YouTubeAPIKey == "demo-key" {
		logger.Info("no YouTube API key configured, serving demo data")
	}

	mux := setupRoutes(logger, cfg, serverDeps{
		Registry: registry,
		Catalog:  catalog,
		Agg:      aggSvc,
		Feed:     feedSvc,
		Sources:  srcSvc,
		Videos:   videoSvc,
	})
	handler := applyMiddleware(logger, cfg, mux)

	return &ServerComponents{Handler: handler}
}

// serverDeps bundles the wired services handed to route registration.
type serverDeps struct {
	Registry *memory.SourceRegistry
	Catalog  *memory.VideoCatalog
	Agg      *aggregate.Service
	Feed     *feedUC.Service
	Sources  *srcUC.Service
	Videos   *videoUC.Service
}

// setupRoutes registers all HTTP routes.
func setupRoutes(logger *slog.Logger, cfg config.AppConfig, deps serverDeps) *http.ServeMux {
	paginationCfg := pagination.LoadFromEnv()

	// The feed endpoint is the expensive one; it gets its own limiter.
	feedLimiter := hhttp.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow)
	logger.Info("feed rate limiting enabled",
		slog.Int("limit", cfg.RateLimitRequests),
		slog.Duration("window", cfg.RateLimitWindow))

	mux := http.NewServeMux()
	hvideo.Register(mux, deps.Feed, deps.Videos, paginationCfg, feedLimiter.Limit)
	hcategory.Register(mux, deps.Feed)
	hsrc.Register(mux, deps.Sources, deps.Agg, deps.Agg)
	hadmin.Register(mux, deps.Videos, paginationCfg)

	mux.Handle("GET /health", &hhttp.HealthHandler{
		Sources: deps.Registry,
		Videos:  deps.Catalog,
		Version: cfg.Version,
	})
	mux.Handle("GET /ready", &hhttp.ReadyHandler{Sources: deps.Registry})
	mux.Handle("GET /live", &hhttp.LiveHandler{})
	mux.Handle("GET /metrics", hhttp.MetricsHandler())

	return mux
}

// applyMiddleware wraps the handler with the middleware chain.
// Order: Request ID -> Recovery -> Logging -> Body Limit -> Metrics.
func applyMiddleware(logger *slog.Logger, cfg config.AppConfig, handler http.Handler) http.Handler {
	chain := handler

	// Apply in reverse order (innermost to outermost).
	chain = hhttp.MetricsMiddleware(chain)
	chain = hhttp.LimitRequestBody(cfg.MaxBodyBytes)(chain)
	chain = hhttp.Logging(logger)(chain)
	chain = hhttp.Recover(logger)(chain)
	chain = requestid.Middleware(chain)

	return chain
}

// runServer starts the HTTP server and handles graceful shutdown.
func runServer(logger *slog.Logger, cfg config.AppConfig, components *ServerComponents) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           components.Handler,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attacks
		BaseContext: func(_ net.Listener) context.Context {
			return ctx
		},
	}

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.Addr),
			slog.String("version", cfg.Version))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}
	logger.Info("server stopped")
}
