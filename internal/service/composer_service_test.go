package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/internal/domain/mocks"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

func composeRequest() *domain.ComposeVideoRequest {
	return &domain.ComposeVideoRequest{
		IntroVideoData: "aW50cm8=",
		WebsiteURL:     "https://sites.example.com/acme",
		DisplayMode:    domain.DisplayModeCorner,
		VideoPosition:  domain.PositionBottomRight,
		VideoShape:     domain.ShapeCircle,
	}
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

func TestComposerService_Compose(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "https://composer.example.com/compose", req.URL.String())
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			var payload domain.ComposeVideoRequest
			require.NoError(t, json.NewDecoder(req.Body).Decode(&payload))
			assert.Equal(t, "aW50cm8=", payload.IntroVideoData)

			return jsonResponse(http.StatusOK, `{"composedVideoData":"Y29tcG9zZWQ="}`), nil
		})

	var checkpoints []int
	data, err := svc.Compose(context.Background(), composeRequest(), func(percent int) {
		checkpoints = append(checkpoints, percent)
	})
	require.NoError(t, err)
	assert.Equal(t, "Y29tcG9zZWQ=", data)
	assert.Equal(t, []int{10, 70, 90, 100}, checkpoints)
}

func TestComposerService_Compose_NilProgress(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{"composedVideoData":"Y29tcG9zZWQ="}`), nil)

	data, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.NoError(t, err)
	assert.Equal(t, "Y29tcG9zZWQ=", data)
}

func TestComposerService_Compose_ServiceErrorWithDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusInternalServerError, `{"error":"composition failed","details":"ffmpeg exited with code 1"}`), nil)

	_, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.Error(t, err)

	var composeErr *domain.ErrCompositionFailed
	require.ErrorAs(t, err, &composeErr)
	assert.Equal(t, http.StatusInternalServerError, composeErr.StatusCode)
	assert.Equal(t, "ffmpeg exited with code 1", composeErr.Details)
}

func TestComposerService_Compose_ServiceErrorWithoutDetails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	// Falls back to the error field when details is absent
	client.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusBadGateway, `{"error":"upstream timeout"}`), nil)

	_, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.Error(t, err)

	var composeErr *domain.ErrCompositionFailed
	require.ErrorAs(t, err, &composeErr)
	assert.Equal(t, "upstream timeout", composeErr.Details)
}

func TestComposerService_Compose_NonJSONErrorBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusServiceUnavailable, `upstream unavailable`), nil)

	_, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.Error(t, err)

	var composeErr *domain.ErrCompositionFailed
	require.ErrorAs(t, err, &composeErr)
	assert.Equal(t, http.StatusServiceUnavailable, composeErr.StatusCode)
	assert.Empty(t, composeErr.Details)
}

func TestComposerService_Compose_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// A transport failure is not retried
	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		Times(1).
		Return(nil, errors.New("connection refused"))

	_, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to execute request")
}

func TestComposerService_Compose_EmptyPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockHTTPClient(ctrl)
	svc := NewComposerService(client, "https://composer.example.com", logger.NewTestLogger(t))

	client.EXPECT().
		Do(gomock.Any()).
		Return(jsonResponse(http.StatusOK, `{}`), nil)

	_, err := svc.Compose(context.Background(), composeRequest(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty payload")
}

// ComposerService must satisfy the domain contract
var _ domain.ComposerService = (*ComposerService)(nil)
