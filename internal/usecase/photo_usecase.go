package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"image"

	"tradenomi-backend/internal/domain"
	"tradenomi-backend/pkg/apperror"
	"tradenomi-backend/pkg/imaging"
	"tradenomi-backend/pkg/logger"

	"github.com/google/uuid"
)

type photoUsecase struct {
	profileRepo domain.ProfileRepository
	store       domain.ImageStore
	opts        imaging.Options
}

func NewPhotoUsecase(profileRepo domain.ProfileRepository, store domain.ImageStore, opts imaging.Options) domain.PhotoUsecase {
	return &photoUsecase{profileRepo: profileRepo, store: store, opts: opts}
}

func (u *photoUsecase) UpdatePhoto(ctx context.Context, userID int64, upload []byte, crop *image.Rectangle) (*domain.Profile, error) {
	if userID <= 0 {
		return nil, apperror.Unauthorized("Session required")
	}
	if len(upload) == 0 {
		return nil, apperror.BadRequest("Kuva puuttuu")
	}

	jpegBytes, err := imaging.Process(upload, crop, u.opts)
	switch {
	case errors.Is(err, imaging.ErrUnsupportedFormat):
		return nil, apperror.BadRequest("Kuvan tulee olla JPEG, PNG, GIF tai WebP")
	case errors.Is(err, imaging.ErrTooLarge):
		return nil, apperror.BadRequest("Kuva on liian suuri")
	case errors.Is(err, imaging.ErrBadCrop):
		return nil, apperror.BadRequest("Rajaus ei osu kuvaan")
	case err != nil:
		return nil, apperror.BadRequest("Kuvaa ei voitu käsitellä")
	}

	// A fresh key per upload so cached copies of the old photo are never served.
	key := fmt.Sprintf("profiles/%d-%s.jpg", userID, uuid.NewString()[:8])
	url, err := u.store.Put(ctx, key, "image/jpeg", jpegBytes)
	if err != nil {
		return nil, apperror.Unavailable("Image storage temporarily unavailable", err)
	}

	patch, err := json.Marshal(map[string]string{"image": url})
	if err != nil {
		return nil, apperror.Internal(err)
	}
	profile, err := u.profileRepo.MergeData(ctx, userID, patch)
	if err != nil {
		return nil, repoError(err, "Profile not found")
	}

	logger.Log.Info("profile photo updated", "user_id", userID, "bytes", len(jpegBytes), "cropped", crop != nil)
	return profile, nil
}
