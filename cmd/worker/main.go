package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/robfig/cron/v3"

	"videonews-feed/internal/config"
	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/handler/http/respond"
	"videonews-feed/internal/infra/fetcher"
	"videonews-feed/internal/infra/memory"
	workerPkg "videonews-feed/internal/infra/worker"
	"videonews-feed/internal/observability/logging"
	pkgConfig "videonews-feed/internal/pkg/config"
	"videonews-feed/internal/usecase/aggregate"
)

func main() {
	logger := initLogger()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load worker configuration (fail-open strategy)
	configMetrics := pkgConfig.NewConfigMetrics("worker")
	workerConfig := workerPkg.LoadConfigFromEnv(configMetrics)
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("sync_timeout", workerConfig.SyncTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	appConfig := config.Load()
	svc := setupAggregationService(logger, appConfig)

	// Start metrics HTTP server
	startMetricsServer(ctx, logger, svc)

	// Start health check server
	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()
	logger.Info("health check server started", slog.String("addr", healthAddr))

	startCronWorker(logger, svc, workerConfig, workerPkg.NewMetrics(), healthServer)
}

// initLogger initializes the process-wide structured logger.
func initLogger() *slog.Logger {
	logger := logging.NewLogger()
	slog.SetDefault(logger)
	return logger
}

// setupAggregationService wires the source registry, per-source metrics store
// and fetchers into the aggregation service.
func setupAggregationService(logger *slog.Logger, cfg config.AppConfig) *aggregate.Service {
	seed, err := memory.DefaultSources()
	if cfg.SourcesFile != "" {
		if fromFile, ferr := memory.LoadSources(cfg.SourcesFile); ferr == nil {
			seed, err = fromFile, nil
		} else {
			logger.Warn("failed to load sources file, using embedded seed",
				slog.String("path", cfg.SourcesFile),
				slog.Any("error", ferr))
		}
	}
	if err != nil {
		logger.Error("failed to load source seed", slog.Any("error", err))
		os.Exit(1)
	}

	registry := memory.NewSourceRegistry(seed)
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

	logger.Info("aggregation service initialized", slog.Int("sources", len(seed)))
	return aggregate.NewService(registry, metricsStore, fetchers, fetcher.NewSyntheticFetcher(5))
}

// startCronWorker starts the cron scheduler and runs the sync job periodically.
func startCronWorker(logger *slog.Logger, svc *aggregate.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics, healthServer *workerPkg.HealthServer) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC", slog.String("timezone", cfg.Timezone), slog.Any("error", err))
		loc = time.UTC
	}
	c := cron.New(cron.WithLocation(loc))

	_, err = c.AddFunc(cfg.CronSchedule, func() {
		runSyncJob(logger, svc, cfg, metrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	// Mark as ready after cron is set up
	healthServer.SetReady(true)
	logger.Info("worker marked as ready")

	logger.Info("worker started", slog.String("schedule", cfg.CronSchedule), slog.String("timezone", cfg.Timezone))
	select {}
}

// runSyncJob executes a single aggregation pass with timeout and error handling.
func runSyncJob(logger *slog.Logger, svc *aggregate.Service, cfg workerPkg.Config, metrics *workerPkg.Metrics) {
	startTime := time.Now()
	logger.Info("sync started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.SyncTimeout)
	defer cancel()

	videos, stats, err := svc.AggregateAll(ctx)
	if err != nil {
		logger.Error("sync failed", slog.String("error", respond.SanitizeError(err)))
		metrics.RecordRun("failure", time.Since(startTime), 0, 0)
		return
	}

	metrics.RecordRun("success", time.Since(startTime), stats.Sources, len(videos))

	logger.Info("sync completed",
		slog.Int("sources", stats.Sources),
		slog.Int("videos", stats.Videos),
		slog.Int("degraded", stats.Degraded),
		slog.Duration("duration", stats.Duration),
	)
}
