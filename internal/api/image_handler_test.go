package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eventboard/eventboard-api/internal/mocks"
	"github.com/eventboard/eventboard-api/internal/platform/imghost"
	"github.com/eventboard/eventboard-api/internal/service/auth"
)

// newMultipartRequest builds a multipart upload request with the given
// file field name, or no file at all when fieldName is empty.
func newMultipartRequest(t *testing.T, fieldName string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	if fieldName != "" {
		part, err := writer.CreateFormFile(fieldName, "photo.png")
		require.NoError(t, err)
		_, err = part.Write([]byte("fake-png-bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/api/uploadImage", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestImageUpload(t *testing.T) {
	t.Parallel()

	deleteURL := "https://img.example/delete/abc"

	tests := []struct {
		name       string
		fieldName  string
		result     *imghost.UploadResult
		uploadErr  error
		wantStatus int
	}{
		{
			name:       "successful upload",
			fieldName:  "image",
			result:     &imghost.UploadResult{URL: "https://img.example/x.png", DeleteURL: &deleteURL},
			wantStatus: http.StatusOK,
		},
		{
			name:       "provider omits delete url",
			fieldName:  "image",
			result:     &imghost.UploadResult{URL: "https://img.example/x.png"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing file field",
			fieldName:  "",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "wrong file field name",
			fieldName:  "photo",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing api key",
			fieldName:  "image",
			uploadErr:  imghost.ErrMissingAPIKey,
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "provider failure",
			fieldName:  "image",
			uploadErr:  assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			images := &mocks.MockImageService{Result: tt.result, UploadErr: tt.uploadErr}
			handler := NewImageHandler(images, nil)

			req := withIdentity(newMultipartRequest(t, tt.fieldName), auth.Identity{UID: uuid.New()})
			recorder := httptest.NewRecorder()
			handler.Upload(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				var resp ImageUploadResponse
				require.NoError(t, json.NewDecoder(recorder.Body).Decode(&resp))
				assert.Equal(t, tt.result.URL, resp.URL)
				assert.Equal(t, tt.result.DeleteURL, resp.DeleteURL)
			}
		})
	}
}

func TestImageUploadRequiresIdentity(t *testing.T) {
	t.Parallel()

	handler := NewImageHandler(&mocks.MockImageService{}, nil)

	recorder := httptest.NewRecorder()
	handler.Upload(recorder, newMultipartRequest(t, "image"))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestImageDelete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		payload    map[string]interface{}
		deleteErr  error
		wantStatus int
	}{
		{
			name:       "successful delete",
			payload:    map[string]interface{}{"delete_url": "https://img.example/delete/abc"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing delete url",
			payload:    map[string]interface{}{},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "blank delete url",
			payload:    map[string]interface{}{"delete_url": "   "},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "transport failure",
			payload:    map[string]interface{}{"delete_url": "https://img.example/delete/abc"},
			deleteErr:  assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			images := &mocks.MockImageService{DeleteErr: tt.deleteErr}
			handler := NewImageHandler(images, nil)

			req := withIdentity(
				newJSONRequest(t, "POST", "/api/deleteImage", tt.payload),
				auth.Identity{UID: uuid.New()},
			)
			recorder := httptest.NewRecorder()
			handler.Delete(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "https://img.example/delete/abc", images.LastDeleteURL)
				assert.JSONEq(t, `{"ok":true}`, recorder.Body.String())
			}
		})
	}
}
