package installer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvelope(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	assert.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestClient_CapturePhoto(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/installer/photo-progress/42", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		var req capturePhotoRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, PhotoAfter, req.PhotoType)
		assert.Equal(t, SourceCamera, req.Source)

		writeEnvelope(t, w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"booking_id":           42,
				"tv_count":             2,
				"photo_workflow_stage": "both",
				"cursor":               map[string]any{"tv_index": 1, "photo_type": "before"},
				"metrics":              map[string]any{"total_photos_completed": 2, "total_photos_needed": 4},
			},
		})
	}))
	defer srv.Close()

	client := NewClient(srv.URL+"/", "tok")
	progress, err := client.CapturePhoto(context.Background(), 42, CapturedPhoto{
		TVIndex: 0, Type: PhotoAfter, Source: SourceCamera, Image: testImage,
	})

	require.NoError(t, err)
	assert.Equal(t, StageBoth, progress.WorkflowStage)
	assert.Equal(t, Cursor{TVIndex: 1, PhotoType: PhotoBefore}, progress.Cursor)
	assert.Equal(t, 4, progress.Metrics.TotalPhotosNeeded)
}

func TestClient_DeletePhotoPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/installer/photo-progress/7/1/before", r.URL.Path)
		writeEnvelope(t, w, http.StatusOK, map[string]any{"success": true, "data": map[string]any{"booking_id": 7}})
	}))
	defer srv.Close()

	progress, err := NewClient(srv.URL, "tok").DeletePhoto(context.Background(), 7, 1, PhotoBefore)

	require.NoError(t, err)
	assert.Equal(t, uint(7), progress.BookingID)
}

func TestClient_SubmitPhotosErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/installer/upload-before-after-photos", r.URL.Path)
		writeEnvelope(t, w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   map[string]any{"type": "validation_error", "message": "tv 1 is missing its after photo"},
		})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok").SubmitPhotos(context.Background(), 42, []SubmittedPhoto{{TVIndex: 0}})

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "validation_error", apiErr.Type)
	assert.Equal(t, "tv 1 is missing its after photo", apiErr.Message)
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "tok").GetProgress(context.Background(), 1)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Equal(t, "bad gateway", apiErr.Message)
}
