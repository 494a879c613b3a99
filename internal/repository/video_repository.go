package repository

import (
	"context"

	"videonews-feed/internal/domain/entity"
)

// VideoRepository manages the public video catalog. Videos are never
// deleted; moderation hides them by flipping Visible.
type VideoRepository interface {
	// List returns every video in the catalog, including hidden ones.
	List(ctx context.Context) ([]entity.Video, error)
	Get(ctx context.Context, id string) (*entity.Video, error)
	SetVisible(ctx context.Context, id string, visible bool) error
	SetCategory(ctx context.Context, id string, category string) error
}
