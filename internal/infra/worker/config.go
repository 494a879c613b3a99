// Package worker holds the runtime pieces of the periodic aggregation
// worker: its configuration, metrics, and health endpoints.
package worker

import (
	"fmt"
	"time"

	"videonews-feed/internal/pkg/config"
)

// Config controls the aggregation worker: when it runs, how long a pass may
// take, and where the health server listens.
type Config struct {
	// CronSchedule is the 5-field cron expression for aggregation runs.
	CronSchedule string

	// Timezone is the IANA timezone the schedule is evaluated in.
	Timezone string

	// SyncTimeout bounds a single aggregation pass.
	SyncTimeout time.Duration

	// HealthPort is the port for the worker's health check server.
	HealthPort int
}

// DefaultConfig returns the worker defaults: aggregate every 30 minutes,
// Paris time, 10 minute pass budget.
func DefaultConfig() Config {
	return Config{
		CronSchedule: "*/30 * * * *",
		Timezone:     "Europe/Paris",
		SyncTimeout:  10 * time.Minute,
		HealthPort:   9091,
	}
}

// Validate checks all fields and aggregates the failures.
func (c *Config) Validate() error {
	var errs []error

	if err := config.ValidateCronSchedule(c.CronSchedule); err != nil {
		errs = append(errs, fmt.Errorf("cron schedule: %w", err))
	}
	if err := config.ValidateTimezone(c.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("timezone: %w", err))
	}
	if err := config.ValidatePositiveDuration(c.SyncTimeout); err != nil {
		errs = append(errs, fmt.Errorf("sync timeout: %w", err))
	}
	if err := config.ValidateIntRange(c.HealthPort, 1024, 65535); err != nil {
		errs = append(errs, fmt.Errorf("health port: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %v", errs)
	}
	return nil
}

// LoadConfigFromEnv loads the worker configuration with fail-open fallback:
// an invalid value is replaced by its default and reported through metrics,
// never returned as an error.
//
// Environment variables:
//   - SYNC_SCHEDULE: cron expression (default "*/30 * * * *")
//   - WORKER_TIMEZONE: IANA timezone (default "Europe/Paris")
//   - SYNC_TIMEOUT: duration, 1m-2h (default 10m)
//   - WORKER_HEALTH_PORT: 1024-65535 (default 9091)
func LoadConfigFromEnv(metrics *config.ConfigMetrics) Config {
	cfg := DefaultConfig()
	fallbackApplied := false

	var fb bool
	cfg.CronSchedule, fb = config.LoadEnvString("SYNC_SCHEDULE", cfg.CronSchedule, config.ValidateCronSchedule)
	if fb {
		fallbackApplied = true
		metrics.RecordValidationError("sync_schedule")
		metrics.RecordFallback("sync_schedule")
	}

	cfg.Timezone, fb = config.LoadEnvString("WORKER_TIMEZONE", cfg.Timezone, config.ValidateTimezone)
	if fb {
		fallbackApplied = true
		metrics.RecordValidationError("timezone")
		metrics.RecordFallback("timezone")
	}

	cfg.SyncTimeout, fb = config.LoadEnvDuration("SYNC_TIMEOUT", cfg.SyncTimeout, func(d time.Duration) error {
		return config.ValidateDuration(d, time.Minute, 2*time.Hour)
	})
	if fb {
		fallbackApplied = true
		metrics.RecordValidationError("sync_timeout")
		metrics.RecordFallback("sync_timeout")
	}

	cfg.HealthPort, fb = config.LoadEnvInt("WORKER_HEALTH_PORT", cfg.HealthPort, func(v int) error {
		return config.ValidateIntRange(v, 1024, 65535)
	})
	if fb {
		fallbackApplied = true
		metrics.RecordValidationError("health_port")
		metrics.RecordFallback("health_port")
	}

	metrics.SetFallbackActive(fallbackApplied)
	metrics.RecordLoadTimestamp()

	return cfg
}
