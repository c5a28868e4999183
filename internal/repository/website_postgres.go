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

// WebsiteRepository is a Postgres implementation of domain.WebsiteRepository
type WebsiteRepository struct {
	db *sql.DB
}

// NewWebsiteRepository creates a new WebsiteRepository
func NewWebsiteRepository(db *sql.DB) *WebsiteRepository {
	return &WebsiteRepository{
		db: db,
	}
}

// Upsert inserts a website or replaces its mutable fields when the id already
// exists. created_at is stamped once on first insert and never re-stamped.
func (r *WebsiteRepository) Upsert(ctx context.Context, website *domain.Website) (*domain.Website, error) {
	query := `
		INSERT INTO contractor_websites (id, form_data, images, template, link, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id)
		DO UPDATE SET
			form_data = EXCLUDED.form_data,
			images = EXCLUDED.images,
			template = EXCLUDED.template,
			link = EXCLUDED.link
		RETURNING id, form_data, images, template, link, created_at
	`

	var saved domain.Website
	err := r.db.QueryRowContext(
		ctx,
		query,
		website.ID,
		website.FormData,
		website.Images,
		website.Template,
		website.Link,
		time.Now().UTC(),
	).Scan(
		&saved.ID,
		&saved.FormData,
		&saved.Images,
		&saved.Template,
		&saved.Link,
		&saved.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert website: %w", err)
	}

	return &saved, nil
}

// List retrieves all websites ordered by creation time, newest first.
// No pagination: the result set is unbounded.
func (r *WebsiteRepository) List(ctx context.Context) ([]*domain.Website, error) {
	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	query, args, err := psql.
		Select("id", "form_data", "images", "template", "link", "created_at").
		From("contractor_websites").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build website list query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list websites: %w", err)
	}
	defer rows.Close()

	var websites []*domain.Website
	for rows.Next() {
		website := &domain.Website{}
		err := rows.Scan(
			&website.ID,
			&website.FormData,
			&website.Images,
			&website.Template,
			&website.Link,
			&website.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan website: %w", err)
		}
		websites = append(websites, website)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating website rows: %w", err)
	}

	return websites, nil
}

// GetByID retrieves a single website by id
func (r *WebsiteRepository) GetByID(ctx context.Context, id string) (*domain.Website, error) {
	query := `
		SELECT id, form_data, images, template, link, created_at
		FROM contractor_websites
		WHERE id = $1
	`

	var website domain.Website
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&website.ID,
		&website.FormData,
		&website.Images,
		&website.Template,
		&website.Link,
		&website.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &domain.ErrWebsiteNotFound{ID: id}
		}
		return nil, fmt.Errorf("failed to get website: %w", err)
	}

	return &website, nil
}

// Delete removes a website by id
func (r *WebsiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contractor_websites WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete website: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return &domain.ErrWebsiteNotFound{ID: id}
	}

	return nil
}

// DeleteAll unconditionally removes every website row and reports the count
func (r *WebsiteRepository) DeleteAll(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contractor_websites")
	if err != nil {
		return 0, fmt.Errorf("failed to delete websites: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected, nil
}
