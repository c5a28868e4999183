package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

// ComposerService forwards composition requests to the external FFmpeg
// service and returns the composed base64 payload. All actual video
// processing happens on the other side of this exchange.
type ComposerService struct {
	httpClient domain.HTTPClient
	endpoint   string
	logger     logger.Logger
}

// NewComposerService creates a new ComposerService for the given base endpoint
func NewComposerService(httpClient domain.HTTPClient, endpoint string, logger logger.Logger) *ComposerService {
	return &ComposerService{
		httpClient: httpClient,
		endpoint:   endpoint,
		logger:     logger,
	}
}

// Compose performs a single request/response exchange with the composition
// endpoint. The progress callback fires at fixed checkpoints (10, 70, 90,
// 100); these do not reflect real server-side progress. There is no retry:
// the exchange is attempted exactly once.
func (s *ComposerService) Compose(ctx context.Context, req *domain.ComposeVideoRequest, progress domain.ProgressFunc) (string, error) {
	if progress == nil {
		progress = func(int) {}
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to marshal compose request: %w", err)
	}

	progress(10)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/compose", bytes.NewBuffer(jsonData))
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to create compose request: %v", err))
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(httpReq)
	if err != nil {
		s.logger.Error(fmt.Sprintf("Failed to execute compose request: %v", err))
		return "", fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	progress(70)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)

		// Prefer the service's details field, then error, then a generic message
		details := gjson.GetBytes(body, "details").String()
		if details == "" {
			details = gjson.GetBytes(body, "error").String()
		}

		s.logger.WithField("status_code", resp.StatusCode).Error(fmt.Sprintf("Composition service returned an error: %s", details))
		return "", &domain.ErrCompositionFailed{StatusCode: resp.StatusCode, Details: details}
	}

	var result domain.ComposeVideoResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		s.logger.Error(fmt.Sprintf("Failed to decode compose response: %v", err))
		return "", fmt.Errorf("failed to decode response: %w", err)
	}

	progress(90)

	if result.ComposedVideoData == "" {
		return "", fmt.Errorf("composition service returned an empty payload")
	}

	progress(100)
	return result.ComposedVideoData, nil
}
