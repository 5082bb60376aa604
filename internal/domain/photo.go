package domain

import (
	"context"
	"image"
)

// ImageStore persists an object and returns its public URL.
type ImageStore interface {
	Put(ctx context.Context, key, contentType string, body []byte) (string, error)
}

type PhotoUsecase interface {
	// UpdatePhoto normalizes the upload, stores it and points data.image at it.
	// crop is in source pixel coordinates; nil keeps the whole picture.
	UpdatePhoto(ctx context.Context, userID int64, upload []byte, crop *image.Rectangle) (*Profile, error)
}
