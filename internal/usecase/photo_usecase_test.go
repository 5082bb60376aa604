package usecase_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"strings"
	"testing"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/internal/usecase"
	"tradenomi-backend/pkg/imaging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func samplePNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 40, 20))
	for x := 0; x < 40; x++ {
		img.Set(x, x%20, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestUpdatePhotoStoresJPEGAndLinksIt(t *testing.T) {
	profiles := new(MockProfileRepo)
	store := new(MockImageStore)

	store.On("Put", mock.Anything, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "profiles/1-") && strings.HasSuffix(key, ".jpg")
	}), "image/jpeg", mock.MatchedBy(func(b []byte) bool {
		return len(b) > 2 && b[0] == 0xFF && b[1] == 0xD8
	})).Return("https://cdn.example.com/profiles/1-abc.jpg", nil)
	profiles.On("MergeData", mock.Anything, int64(1), []byte(`{"image":"https://cdn.example.com/profiles/1-abc.jpg"}`)).
		Return(&domain.Profile{ID: 1, Data: domain.ProfileData{Image: "https://cdn.example.com/profiles/1-abc.jpg"}}, nil)

	crop := image.Rect(0, 0, 20, 20)
	p, err := usecase.NewPhotoUsecase(profiles, store, imaging.DefaultOptions()).UpdatePhoto(context.Background(), 1, samplePNG(t), &crop)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/profiles/1-abc.jpg", p.Data.Image)
	store.AssertExpectations(t)
}

func TestUpdatePhotoErrors(t *testing.T) {
	profiles := new(MockProfileRepo)
	store := new(MockImageStore)
	uc := usecase.NewPhotoUsecase(profiles, store, imaging.DefaultOptions())
	ctx := context.Background()

	_, err := uc.UpdatePhoto(ctx, 1, []byte("%PDF-1.4"), nil)
	assertCode(t, err, http.StatusBadRequest)

	outside := image.Rect(30, 0, 60, 20)
	_, err = uc.UpdatePhoto(ctx, 1, samplePNG(t), &outside)
	assertCode(t, err, http.StatusBadRequest)

	_, err = uc.UpdatePhoto(ctx, 0, samplePNG(t), nil)
	assertCode(t, err, http.StatusUnauthorized)

	store.On("Put", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("AccessDenied"))
	_, err = uc.UpdatePhoto(ctx, 1, samplePNG(t), nil)
	assertCode(t, err, http.StatusServiceUnavailable)
	profiles.AssertNotCalled(t, "MergeData", mock.Anything, mock.Anything, mock.Anything)
}
