// Package imaging normalizes uploaded profile photos to bounded JPEGs.
package imaging

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif" // registers GIF decoding
	"image/jpeg"
	_ "image/png" // registers PNG decoding

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp" // registers WebP decoding
)

var (
	ErrUnsupportedFormat = errors.New("unsupported image format")
	ErrTooLarge          = errors.New("image dimensions too large")
	ErrBadCrop           = errors.New("crop area outside image")
)

// Options bound the output.
type Options struct {
	MaxDimension int
	Quality      int
	// MaxPixels guards against decompression bombs before full decoding.
	MaxPixels int
}

func DefaultOptions() Options {
	return Options{MaxDimension: 800, Quality: 85, MaxPixels: 40_000_000}
}

// Process decodes data, crops it to crop when given (in source pixel
// coordinates), scales the longest side down to MaxDimension and encodes JPEG.
func Process(data []byte, crop *image.Rectangle, opts Options) ([]byte, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	if opts.MaxPixels > 0 && cfg.Width*cfg.Height > opts.MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, cfg.Width, cfg.Height)
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}

	src := img.Bounds()
	if crop != nil {
		area := crop.Add(src.Min)
		if area.Empty() || !area.In(src) {
			return nil, ErrBadCrop
		}
		src = area
	}

	w, h := fit(src.Dx(), src.Dy(), opts.MaxDimension)
	out := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(out, out.Bounds(), img, src, draw.Over, nil)

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, out, &jpeg.Options{Quality: opts.Quality}); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), nil
}

// fit keeps the aspect ratio and never upscales.
func fit(width, height, maxDimension int) (int, int) {
	if maxDimension <= 0 || (width <= maxDimension && height <= maxDimension) {
		return width, height
	}
	if width >= height {
		return maxDimension, max(1, height*maxDimension/width)
	}
	return max(1, width*maxDimension/height), maxDimension
}
