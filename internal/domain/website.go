package domain

import (
	"context"
	"time"
)

//go:generate mockgen -destination mocks/mock_website_repository.go -package mocks github.com/RepliqStudio/repliq/internal/domain WebsiteRepository
//go:generate mockgen -destination mocks/mock_website_service.go -package mocks github.com/RepliqStudio/repliq/internal/domain WebsiteService

// WebsiteTemplate is the enumerated category tag selecting the contractor-site
// presentation.
type WebsiteTemplate string

const (
	TemplateGeneral     WebsiteTemplate = "general"
	TemplateRoofing     WebsiteTemplate = "roofing"
	TemplatePlumbing    WebsiteTemplate = "plumbing"
	TemplateElectrical  WebsiteTemplate = "electrical"
	TemplateHVAC        WebsiteTemplate = "hvac"
	TemplateLandscaping WebsiteTemplate = "landscaping"
)

// Valid reports whether the tag is one of the known templates.
func (t WebsiteTemplate) Valid() bool {
	switch t {
	case TemplateGeneral, TemplateRoofing, TemplatePlumbing, TemplateElectrical, TemplateHVAC, TemplateLandscaping:
		return true
	}
	return false
}

// Website is a persisted contractor-site definition.
// FormData and Images are opaque to the store: no schema is enforced on them.
type Website struct {
	ID        string          `json:"id"`
	FormData  MapOfAny        `json:"formData"`
	Images    RawJSON         `json:"images"`
	Template  WebsiteTemplate `json:"template"`
	Link      string          `json:"link"`
	CreatedAt time.Time       `json:"createdAt"`
}

// UpsertWebsiteRequest is the write payload for a website record
type UpsertWebsiteRequest struct {
	ID       string          `json:"id"`
	FormData MapOfAny        `json:"formData"`
	Images   RawJSON         `json:"images"`
	Template WebsiteTemplate `json:"template"`
	Link     string          `json:"link"`
}

// Validate checks the required write fields and normalizes the template tag.
// id, formData, images and link are mandatory; template alone is optional and
// defaults to general.
func (r *UpsertWebsiteRequest) Validate() (*Website, error) {
	if r.ID == "" {
		return nil, NewValidationError("id is required")
	}
	if r.FormData == nil {
		return nil, NewValidationError("formData is required")
	}
	if len(r.Images) == 0 {
		return nil, NewValidationError("images is required")
	}
	if r.Link == "" {
		return nil, NewValidationError("link is required")
	}

	template := r.Template
	if template == "" {
		template = TemplateGeneral
	}
	if !template.Valid() {
		return nil, NewValidationError("template must be one of general, roofing, plumbing, electrical, hvac, landscaping")
	}

	return &Website{
		ID:       r.ID,
		FormData: r.FormData,
		Images:   r.Images,
		Template: template,
		Link:     r.Link,
	}, nil
}

// WebsiteRepository defines the persistence operations for website records
type WebsiteRepository interface {
	// Upsert inserts the website or replaces its mutable fields.
	// created_at is stamped on first insert only.
	Upsert(ctx context.Context, website *Website) (*Website, error)

	// List returns all websites, newest first. No pagination.
	List(ctx context.Context) ([]*Website, error)

	// GetByID returns ErrWebsiteNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Website, error)

	// Delete returns ErrWebsiteNotFound when no row matched.
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every row and returns the count removed.
	DeleteAll(ctx context.Context) (int64, error)
}

// WebsiteService defines the application operations over website records
type WebsiteService interface {
	Upsert(ctx context.Context, req *UpsertWebsiteRequest) (*Website, error)
	List(ctx context.Context) ([]*Website, error)
	GetByID(ctx context.Context, id string) (*Website, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
