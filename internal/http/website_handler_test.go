package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RepliqStudio/repliq/internal/domain"
	"github.com/RepliqStudio/repliq/internal/domain/mocks"
	"github.com/RepliqStudio/repliq/pkg/logger"
)

func setupWebsiteHandler(t *testing.T) (*mocks.MockWebsiteService, *http.ServeMux) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	service := mocks.NewMockWebsiteService(ctrl)
	handler := NewWebsiteHandler(service, logger.NewTestLogger(t))

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)
	return service, mux
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestWebsiteHandler_Upsert(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.UpsertWebsiteRequest) (*domain.Website, error) {
			assert.Equal(t, "site-1", req.ID)
			return &domain.Website{
				ID:       req.ID,
				FormData: req.FormData,
				Images:   req.Images,
				Template: domain.TemplateGeneral,
				Link:     req.Link,
			}, nil
		})

	payload := `{"id":"site-1","formData":{"businessName":"Acme"},"images":["hero.jpg"],"link":"https://sites.example.com/acme"}`
	req := httptest.NewRequest(http.MethodPost, "/api/websites", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	website := body["website"].(map[string]interface{})
	assert.Equal(t, "site-1", website["id"])
	assert.Equal(t, "general", website["template"])
}

func TestWebsiteHandler_Upsert_MissingField(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil, domain.NewValidationError("link is required"))

	payload := `{"id":"site-1","formData":{},"images":[]}`
	req := httptest.NewRequest(http.MethodPost, "/api/websites", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "link is required", decodeBody(t, rec)["error"])
}

func TestWebsiteHandler_Upsert_InvalidBody(t *testing.T) {
	_, mux := setupWebsiteHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/websites", bytes.NewBufferString(`not json`))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWebsiteHandler_Upsert_StoreError(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		Upsert(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection reset"))

	payload := `{"id":"site-1","formData":{},"images":[],"link":"https://sites.example.com/acme"}`
	req := httptest.NewRequest(http.MethodPost, "/api/websites", bytes.NewBufferString(payload))
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWebsiteHandler_List(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		List(gomock.Any()).
		Return([]*domain.Website{
			{ID: "site-2", Template: domain.TemplateRoofing},
			{ID: "site-1", Template: domain.TemplateGeneral},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	websites := body["websites"].([]interface{})
	require.Len(t, websites, 2)
	assert.Equal(t, "site-2", websites[0].(map[string]interface{})["id"])
}

func TestWebsiteHandler_List_Empty(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().List(gomock.Any()).Return(nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/websites", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	// A nil slice still serializes as an empty array
	body := decodeBody(t, rec)
	websites, ok := body["websites"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, websites)
}

func TestWebsiteHandler_Get_NotFound(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		GetByID(gomock.Any(), "missing").
		Return(nil, &domain.ErrWebsiteNotFound{ID: "missing"})

	req := httptest.NewRequest(http.MethodGet, "/api/websites/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Website not found", decodeBody(t, rec)["error"])
}

func TestWebsiteHandler_Delete(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().Delete(gomock.Any(), "site-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/websites/site-1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["success"])
}

func TestWebsiteHandler_Delete_NotFound(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().
		Delete(gomock.Any(), "missing").
		Return(&domain.ErrWebsiteNotFound{ID: "missing"})

	req := httptest.NewRequest(http.MethodDelete, "/api/websites/missing", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestWebsiteHandler_DeleteAll(t *testing.T) {
	service, mux := setupWebsiteHandler(t)

	service.EXPECT().DeleteAll(gomock.Any()).Return(int64(3), nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/websites", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["deletedCount"])
	assert.Equal(t, "Deleted 3 websites", body["message"])
}
