// Package storage persists uploaded product images through a gocloud blob
// bucket, so local disk and GCS share one code path.
package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"boutique/config"
	"boutique/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"

	// Register the bucket schemes the config may point at.
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"
)

// extensionByContentType maps accepted image MIME types to stored extensions.
var extensionByContentType = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

// blobImageStorage implements service.ImageStorage on top of a blob bucket.
type blobImageStorage struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the image storage, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewBlobImageStorage opens the configured bucket and wires its closing into
// the application lifecycle.
func NewBlobImageStorage(params Params) (service.ImageStorage, error) {
	cfg := params.Config.Upload
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("upload bucket URL must be provided")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Closing image bucket")

			return bucket.Close()
		},
	})

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}, nil
}

// SaveImage stores the image under a fresh UUID key and returns its public
// URL. The caller is responsible for size limits; type checking happens here.
func (s *blobImageStorage) SaveImage(ctx context.Context, contentType string, body io.Reader) (string, error) {
	ext, ok := extensionByContentType[contentType]
	if !ok {
		return "", errors.Errorf("unsupported image content type: %s", contentType)
	}

	key := fmt.Sprintf("products/%s%s", uuid.New(), ext)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to open bucket writer")
	}

	if _, err := io.Copy(writer, body); err != nil {
		// Close discards the partial write on error.
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write image")
	}

	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finalize image write")
	}

	s.logger.Info("Stored product image",
		slog.String("key", key),
		slog.String("content_type", contentType),
	)

	return s.publicBaseURL + "/" + key, nil
}
