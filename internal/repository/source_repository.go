// Package repository defines the data access interfaces used by the use case layer.
// Implementations live under internal/infra; for this application all state is
// process-memory only.
package repository

import (
	"context"
	"time"

	"videonews-feed/internal/domain/entity"
)

// SourceRepository manages the registry of configured news sources.
// The registry owns NewsSource records exclusively: sources are seeded at
// startup and only Active/LastSync change afterwards.
type SourceRepository interface {
	Get(ctx context.Context, id string) (*entity.NewsSource, error)
	List(ctx context.Context) ([]*entity.NewsSource, error)
	ListActive(ctx context.Context) ([]*entity.NewsSource, error)
	SetActive(ctx context.Context, id string, active bool) (*entity.NewsSource, error)
	TouchLastSync(ctx context.Context, id string, t time.Time) error
}
