package v1_test

import (
	"bytes"
	"encoding/json"
	"image"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"tradenomi-backend/internal/delivery/http/response"
	"tradenomi-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func photoRequest(t *testing.T, f *fixture, path string, file []byte, fields map[string]string) (*httptest.ResponseRecorder, response.Response) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if file != nil {
		part, err := mw.CreateFormFile("file", "kuva.png")
		require.NoError(t, err)
		_, err = part.Write(file)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPut, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+f.token)
	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)

	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w, resp
}

func TestUploadPhoto(t *testing.T) {
	f := newFixture(t)
	upload := []byte("fake image bytes")
	f.photos.On("UpdatePhoto", mock.Anything, sessionUser, upload, (*image.Rectangle)(nil)).
		Return(&domain.Profile{ID: sessionUser, Data: domain.ProfileData{Image: "/kuvat/profiles/1-a.jpg"}}, nil).Once()

	w, resp := photoRequest(t, f, "/api/profiilit/oma/kuva", upload, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "/kuvat/profiles/1-a.jpg", resp.Data.(map[string]interface{})["data"].(map[string]interface{})["image"])
	f.photos.AssertExpectations(t)
}

func TestUploadPhotoWithoutFile(t *testing.T) {
	f := newFixture(t)
	w, _ := photoRequest(t, f, "/api/profiilit/oma/kuva", nil, map[string]string{"x": "1"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	f.photos.AssertNotCalled(t, "UpdatePhoto")
}

func TestUploadCroppedPhoto(t *testing.T) {
	f := newFixture(t)
	upload := []byte("fake image bytes")
	crop := image.Rect(10, 20, 110, 120)
	f.photos.On("UpdatePhoto", mock.Anything, sessionUser, upload, &crop).
		Return(&domain.Profile{ID: sessionUser}, nil).Once()

	w, _ := photoRequest(t, f, "/api/profiilit/oma/kuva/rajattu", upload, map[string]string{
		"x": "10", "y": "20", "width": "100", "height": "100",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	f.photos.AssertExpectations(t)
}

func TestUploadCroppedPhotoBadArea(t *testing.T) {
	f := newFixture(t)
	for name, fields := range map[string]map[string]string{
		"missing height": {"x": "0", "y": "0", "width": "10"},
		"negative":       {"x": "-1", "y": "0", "width": "10", "height": "10"},
		"empty":          {"x": "0", "y": "0", "width": "0", "height": "10"},
	} {
		t.Run(name, func(t *testing.T) {
			w, _ := photoRequest(t, f, "/api/profiilit/oma/kuva/rajattu", []byte("x"), fields)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
	f.photos.AssertNotCalled(t, "UpdatePhoto")
}
