package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

// VideoService provides the application operations over composed videos
type VideoService struct {
	repo     domain.VideoRepository
	composer domain.ComposerService
	logger   logger.Logger
}

// NewVideoService creates a new VideoService
func NewVideoService(repo domain.VideoRepository, composer domain.ComposerService, logger logger.Logger) *VideoService {
	return &VideoService{
		repo:     repo,
		composer: composer,
		logger:   logger,
	}
}

// Create validates and persists a video that was already composed.
// When the request carries no id a fresh one is assigned.
func (s *VideoService) Create(ctx context.Context, req *domain.CreateVideoRequest) (*domain.Video, error) {
	video, err := req.Validate()
	if err != nil {
		return nil, err
	}

	if video.ID == "" {
		video.ID = uuid.New().String()
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.logger.WithField("video_id", video.ID).WithField("error", err.Error()).Error("Failed to save video")
		return nil, err
	}

	return video, nil
}

// ComposeAndSave runs the composition exchange and persists the result.
// Nothing is written when composition fails, so a failed exchange leaves
// no partial record behind.
func (s *VideoService) ComposeAndSave(ctx context.Context, req *domain.ComposeVideoRequest, progress domain.ProgressFunc) (*domain.Video, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	composedData, err := s.composer.Compose(ctx, req, progress)
	if err != nil {
		return nil, err
	}

	video := &domain.Video{
		ID:                uuid.New().String(),
		WebsiteURL:        req.WebsiteURL,
		DisplayMode:       req.DisplayMode,
		VideoPosition:     req.VideoPosition,
		VideoShape:        req.VideoShape,
		ComposedVideoData: composedData,
	}

	if err := s.repo.Create(ctx, video); err != nil {
		s.logger.WithField("video_id", video.ID).WithField("error", err.Error()).Error("Failed to save composed video")
		return nil, err
	}

	s.logger.WithField("video_id", video.ID).Info("Composed and saved video")
	return video, nil
}

// List returns all videos, newest first, without the composed payloads
func (s *VideoService) List(ctx context.Context) ([]*domain.Video, error) {
	videos, err := s.repo.List(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to list videos")
		return nil, err
	}
	return videos, nil
}

// GetByID returns a single video including its composed payload
func (s *VideoService) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	return s.repo.GetByID(ctx, id)
}

// Delete removes a single video
func (s *VideoService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// DeleteAll removes every video and returns the count removed
func (s *VideoService) DeleteAll(ctx context.Context) (int64, error) {
	count, err := s.repo.DeleteAll(ctx)
	if err != nil {
		s.logger.WithField("error", err.Error()).Error("Failed to delete all videos")
		return 0, err
	}

	s.logger.WithField("deleted_count", count).Info("Deleted all videos")
	return count, nil
}
