package storage

import (
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func newMemStorage(t *testing.T) *blobImageStorage {
	t.Helper()

	bucket := memblob.OpenBucket(nil)
	t.Cleanup(func() { bucket.Close() })

	return &blobImageStorage{
		bucket:        bucket,
		publicBaseURL: "https://cdn.example.com",
		logger:        slog.Default(),
	}
}

func TestBlobImageStorage_SaveImage(t *testing.T) {
	storage := newMemStorage(t)

	url, err := storage.SaveImage(context.Background(), "image/png", strings.NewReader("fake-png-bytes"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "https://cdn.example.com/products/"), url)
	assert.True(t, strings.HasSuffix(url, ".png"), url)

	// The object is retrievable under the generated key.
	key := strings.TrimPrefix(url, "https://cdn.example.com/")
	data, err := storage.bucket.ReadAll(context.Background(), key)
	require.NoError(t, err)
	assert.Equal(t, "fake-png-bytes", string(data))
}

func TestBlobImageStorage_SaveImage_UniqueKeys(t *testing.T) {
	storage := newMemStorage(t)

	first, err := storage.SaveImage(context.Background(), "image/jpeg", strings.NewReader("a"))
	require.NoError(t, err)

	second, err := storage.SaveImage(context.Background(), "image/jpeg", strings.NewReader("b"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestBlobImageStorage_SaveImage_RejectsNonImage(t *testing.T) {
	storage := newMemStorage(t)

	url, err := storage.SaveImage(context.Background(), "application/pdf", strings.NewReader("%PDF"))
	assert.Error(t, err)
	assert.Empty(t, url)
	assert.Contains(t, err.Error(), "unsupported image content type")
}
