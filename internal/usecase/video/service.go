// Package video provides use cases for the video catalog: public reads and
// the admin moderation operations (visibility toggle, category
// reassignment).
package video

import (
	"context"
	"fmt"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/repository"
)

// Service provides video catalog use cases.
type Service struct {
	Repo repository.VideoRepository
}

// NewService creates a video service.
func NewService(repo repository.VideoRepository) *Service {
	return &Service{Repo: repo}
}

// Get retrieves one video by id, hidden or not. Returns entity.ErrNotFound
// for unknown ids.
func (s *Service) Get(ctx context.Context, id string) (*entity.Video, error) {
	v, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get video %q: %w", id, err)
	}
	return v, nil
}

// ListAll retrieves the full catalog including hidden videos. This is the
// admin view; the public feed goes through the feed builder instead.
func (s *Service) ListAll(ctx context.Context) ([]entity.Video, error) {
	videos, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list videos: %w", err)
	}
	return videos, nil
}

// SetVisible hides or reveals a video. Hidden videos stay in the catalog;
// nothing is ever physically deleted.
func (s *Service) SetVisible(ctx context.Context, id string, visible bool) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if err := s.Repo.SetVisible(ctx, id, visible); err != nil {
		return fmt.Errorf("set video %q visibility: %w", id, err)
	}
	return nil
}

// AssignCategory moves a video to another category.
func (s *Service) AssignCategory(ctx context.Context, id, category string) error {
	if id == "" {
		return &entity.ValidationError{Field: "id", Message: "is required"}
	}
	if category == "" {
		return &entity.ValidationError{Field: "category", Message: "is required"}
	}
	if err := s.Repo.SetCategory(ctx, id, category); err != nil {
		return fmt.Errorf("assign video %q category: %w", id, err)
	}
	return nil
}
