package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/RepliqStudio/repliq/internal/domain"
)

// VideoRepository is a Postgres implementation of domain.VideoRepository
type VideoRepository struct {
	db *sql.DB
}

// NewVideoRepository creates a new VideoRepository
func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{
		db: db,
	}
}

// Create inserts a new video row. Videos are only created after composition
// has produced a payload, so composed_video_data is always present.
func (r *VideoRepository) Create(ctx context.Context, video *domain.Video) error {
	video.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO repliq_videos (id, website_url, display_mode, video_position, video_shape, composed_video_data, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(
		ctx,
		query,
		video.ID,
		video.WebsiteURL,
		video.DisplayMode,
		video.VideoPosition,
		video.VideoShape,
		video.ComposedVideoData,
		video.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create video: %w", err)
	}

	return nil
}

// List retrieves all videos newest first. The heavy composed_video_data
// column is deliberately left out of the select.
func (r *VideoRepository) List(ctx context.Context) ([]*domain.Video, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := psql.
		Select("id", "website_url", "display_mode", "video_position", "video_shape", "created_at").
		From("repliq_videos").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build video list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list videos: %w", err)
	}
	defer rows.Close()

	var videos []*domain.Video
	for rows.Next() {
		video := &domain.Video{}
		err := rows.Scan(
			&video.ID,
			&video.WebsiteURL,
			&video.DisplayMode,
			&video.VideoPosition,
			&video.VideoShape,
			&video.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan video: %w", err)
		}
		videos = append(videos, video)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating video rows: %w", err)
	}

	return videos, nil
}

// GetByID retrieves a single video including the composed payload
func (r *VideoRepository) GetByID(ctx context.Context, id string) (*domain.Video, error) {
	query := `
		SELECT id, website_url, display_mode, video_position, video_shape, composed_video_data, created_at
		FROM repliq_videos
		WHERE id = $1
	`

	var video domain.Video
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&video.ID,
		&video.WebsiteURL,
		&video.DisplayMode,
		&video.VideoPosition,
		&video.VideoShape,
		&video.ComposedVideoData,
		&video.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrVideoNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to get video: %w", err)
	}

	return &video, nil
}

// Delete removes a video by id
func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM repliq_videos WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete video: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &domain.ErrVideoNotFound{ID: id}
	}

	return nil
}

// DeleteAll unconditionally removes every video row and reports the count
func (r *VideoRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM repliq_videos")
	if err != nil {
		return 0, fmt.Errorf("failed to delete videos: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
