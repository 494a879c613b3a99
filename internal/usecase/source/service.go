// Package source provides use cases for managing news sources: listing the
// registry and toggling a source's active flag.
package source

import (
	"context"
	"fmt"

	"videonews-feed/internal/domain/entity"
	"videonews-feed/internal/repository"
)

// Service provides source registry use cases.
type Service struct {
	Repo repository.SourceRepository
}

// NewService creates a source service.
func NewService(repo repository.SourceRepository) *Service {
	return &Service{Repo: repo}
}

// List retrieves every configured source, active or not.
func (s *Service) List(ctx context.Context) ([]*entity.NewsSource, error) {
	sources, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// Get retrieves one source by id. Returns entity.ErrNotFound for unknown
// ids.
func (s *Service) Get(ctx context.Context, id string) (*entity.NewsSource, error) {
	src, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get source %q: %w", id, err)
	}
	return src, nil
}

// Toggle flips a source's active flag and stamps its last sync time.
// Returns the updated source, or entity.ErrNotFound for unknown ids.
func (s *Service) Toggle(ctx context.Context, id string, active bool) (*entity.NewsSource, error) {
	if id == "" {
		return nil, &entity.ValidationError{Field: "sourceId", Message: "is required"}
	}

	src, err := s.Repo.SetActive(ctx, id, active)
	if err != nil {
		return nil, fmt.Errorf("toggle source %q: %w", id, err)
	}
	return src, nil
}
