package service

import (
	"context"
	"io"
)

// ImageStorage defines the interface for storing uploaded product images.
// The implementation owns key generation and public URL shaping.
type ImageStorage interface {
	// SaveImage stores the image bytes under a fresh key and returns the
	// public URL of the stored object.
	SaveImage(ctx context.Context, contentType string, body io.Reader) (string, error)
}
