package service

import (
	"context"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

// WebsiteService provides the application operations over website records
type WebsiteService struct {
	repo   domain.WebsiteRepository
	logger logger.Logger
}

// NewWebsiteService creates a new WebsiteService
func NewWebsiteService(repo domain.WebsiteRepository, logger logger.Logger) *WebsiteService {
	return &WebsiteService{
		repo:   repo,
		logger: logger,
	}
}

// Upsert validates the payload and writes the website record.
// The template tag defaults to general when unset.
func (s *WebsiteService) Upsert(ctx context.Context, req *domain.UpsertWebsiteRequest) (*domain.Website, error) {
	website, err := req.Validate()
	if err != nil {
		return nil, err
	}

	saved, err := s.repo.Upsert(ctx, website)
	if err != nil {
		s.logger.WithField("website_id", website.ID).WithField("error", err.Error()).Error("Failed to save website")
		return nil, err
	}

	return saved, nil
}

// List returns all websites, newest first
func (s *WebsiteService) List(ctx context.Context) ([]*domain.Website, error) {
	websites, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list websites")
		return nil, err
	}
	return websites, nil
}

// GetByID returns a single website
func (s *WebsiteService) GetByID(ctx context.Context, id string) (*domain.Website, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a single website
func (s *WebsiteService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteAll removes every website and returns the count removed.
// Destructive and irreversible, there is no confirmation step.
func (s *WebsiteService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to delete all websites")
		return 0, err
	}

	s.logger.WithField("deleted_count", count).Info("Deleted all websites")
	return count, nil
}
