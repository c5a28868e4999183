package domain

import (
	"context"
	"time"

	"github.com/asaskevich/govalidator"
)

//go:generate mockgen -destination mocks/mock_video_repository.go -package mocks github.com/RepliqStudio/repliq/internal/domain VideoRepository
//go:generate mockgen -destination mocks/mock_composer_service.go -package mocks github.com/RepliqStudio/repliq/internal/domain ComposerService

// DisplayMode selects how the composed video is laid over the website capture
type DisplayMode string

const (
	DisplayModeCorner     DisplayMode = "corner"
	DisplayModeFullscreen DisplayMode = "fullscreen"
)

func (m DisplayMode) Valid() bool {
	return m == DisplayModeCorner || m == DisplayModeFullscreen
}

// VideoPosition places the intro bubble within the frame
type VideoPosition string

const (
	PositionBottomLeft  VideoPosition = "bottom-left"
	PositionBottomRight VideoPosition = "bottom-right"
	PositionTopLeft     VideoPosition = "top-left"
	PositionTopRight    VideoPosition = "top-right"
)

func (p VideoPosition) Valid() bool {
	switch p {
	case PositionBottomLeft, PositionBottomRight, PositionTopLeft, PositionTopRight:
		return true
	}
	return false
}

// VideoShape is the mask applied to the intro bubble
type VideoShape string

const (
	ShapeCircle  VideoShape = "circle"
	ShapeSquare  VideoShape = "square"
	ShapeRounded VideoShape = "rounded"
)

func (s VideoShape) Valid() bool {
	return s == ShapeCircle || s == ShapeSquare || s == ShapeRounded
}

// Video is a persisted personalized video landing page.
// ComposedVideoData is the heavy base64 payload: list responses omit it, the
// single-item fetch includes it.
type Video struct {
	ID                string        `json:"id"`
	WebsiteURL        string        `json:"websiteUrl"`
	DisplayMode       DisplayMode   `json:"displayMode"`
	VideoPosition     VideoPosition `json:"videoPosition"`
	VideoShape        VideoShape    `json:"videoShape"`
	ComposedVideoData string        `json:"composedVideoData,omitempty"`
	CreatedAt         time.Time     `json:"createdAt"`
}

// CreateVideoRequest is the write payload for a video record. Records are
// only created once composition has produced the payload.
type CreateVideoRequest struct {
	ID                string        `json:"id"`
	WebsiteURL        string        `json:"websiteUrl"`
	DisplayMode       DisplayMode   `json:"displayMode"`
	VideoPosition     VideoPosition `json:"videoPosition"`
	VideoShape        VideoShape    `json:"videoShape"`
	ComposedVideoData string        `json:"composedVideoData"`
}

// Validate checks the payload and fills display-setting defaults.
// A missing id is allowed, the service assigns one.
func (r *CreateVideoRequest) Validate() (*Video, error) {
	if r.ComposedVideoData == "" {
		return nil, NewValidationError("composedVideoData is required")
	}
	if r.WebsiteURL == "" {
		return nil, NewValidationError("websiteUrl is required")
	}

	mode, position, shape, err := normalizeDisplaySettings(r.DisplayMode, r.VideoPosition, r.VideoShape)
	if err != nil {
		return nil, err
	}

	return &Video{
		ID:                r.ID,
		WebsiteURL:        r.WebsiteURL,
		DisplayMode:       mode,
		VideoPosition:     position,
		VideoShape:        shape,
		ComposedVideoData: r.ComposedVideoData,
	}, nil
}

// ComposeVideoRequest is forwarded to the external FFmpeg composition service
type ComposeVideoRequest struct {
	IntroVideoData string        `json:"introVideoData"`
	WebsiteURL     string        `json:"websiteUrl"`
	DisplayMode    DisplayMode   `json:"displayMode"`
	VideoPosition  VideoPosition `json:"videoPosition"`
	VideoShape     VideoShape    `json:"videoShape"`
}

// Validate checks the compose payload and fills display-setting defaults
func (r *ComposeVideoRequest) Validate() error {
	if r.IntroVideoData == "" {
		return NewValidationError("introVideoData is required")
	}
	if r.WebsiteURL == "" {
		return NewValidationError("websiteUrl is required")
	}
	if !govalidator.IsURL(r.WebsiteURL) {
		return NewValidationError("websiteUrl must be a valid URL")
	}

	mode, position, shape, err := normalizeDisplaySettings(r.DisplayMode, r.VideoPosition, r.VideoShape)
	if err != nil {
		return err
	}
	r.DisplayMode = mode
	r.VideoPosition = position
	r.VideoShape = shape
	return nil
}

// ComposeVideoResponse carries the composed payload back to the caller
type ComposeVideoResponse struct {
	ComposedVideoData string `json:"composedVideoData"`
}

func normalizeDisplaySettings(mode DisplayMode, position VideoPosition, shape VideoShape) (DisplayMode, VideoPosition, VideoShape, error) {
	if mode == "" {
		mode = DisplayModeCorner
	}
	if !mode.Valid() {
		return "", "", "", NewValidationError("displayMode must be corner or fullscreen")
	}
	if position == "" {
		position = PositionBottomRight
	}
	if !position.Valid() {
		return "", "", "", NewValidationError("videoPosition must be one of bottom-left, bottom-right, top-left, top-right")
	}
	if shape == "" {
		shape = ShapeCircle
	}
	if !shape.Valid() {
		return "", "", "", NewValidationError("videoShape must be circle, square or rounded")
	}
	return mode, position, shape, nil
}

// ProgressFunc receives coarse checkpoint percentages during composition.
// The checkpoints are UI affordances only and do not reflect real progress.
type ProgressFunc func(percent int)

// VideoRepository defines the persistence operations for video records
type VideoRepository interface {
	// Create inserts a new video row
	Create(ctx context.Context, video *Video) error

	// List returns all videos newest first, without the composed payload
	List(ctx context.Context) ([]*Video, error)

	// GetByID returns the full record including the composed payload.
	// Returns ErrVideoNotFound when no row matches.
	GetByID(ctx context.Context, id string) (*Video, error)

	// Delete returns ErrVideoNotFound when no row matched
	Delete(ctx context.Context, id string) error

	// DeleteAll removes every row and returns the count removed
	DeleteAll(ctx context.Context) (int64, error)
}

// ComposerService performs the request/response exchange with the external
// FFmpeg composition endpoint.
type ComposerService interface {
	Compose(ctx context.Context, req *ComposeVideoRequest, progress ProgressFunc) (string, error)
}

// VideoService defines the application operations over video records
type VideoService interface {
	Create(ctx context.Context, req *CreateVideoRequest) (*Video, error)
	ComposeAndSave(ctx context.Context, req *ComposeVideoRequest, progress ProgressFunc) (*Video, error)
	List(ctx context.Context) ([]*Video, error)
	GetByID(ctx context.Context, id string) (*Video, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context) (int64, error)
}
