package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"boutique/config"
	"boutique/internal/delivery/http/response"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UploadHandler holds dependencies for product image uploads.
type UploadHandler struct {
	storage  service.ImageStorage
	maxBytes int64
	logger   *slog.Logger
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(storage service.ImageStorage, cfg *config.Config, logger *slog.Logger) *UploadHandler {
	var maxBytes int64
	if cfg.Upload != nil {
		maxBytes = cfg.Upload.MaxImageSizeBytes
	}

	return &UploadHandler{
		storage:  storage,
		maxBytes: maxBytes,
		logger:   logger,
	}
}

// UploadImage accepts a multipart "image" part, stores it in the configured
// bucket and returns the public URL for the product form to reference.
func (h *UploadHandler) UploadImage(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "image file part is required")
	}

	if h.maxBytes > 0 && fileHeader.Size > h.maxBytes {
		return domainerrors.ErrUploadTooLarge
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return domainerrors.ErrUploadInvalidType
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.storage.SaveImage(c.Request().Context(), contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Product image uploaded",
		slog.String("url", url),
		slog.Int64("size", fileHeader.Size),
	)

	return response.Success(c, http.StatusCreated, map[string]string{"url": url}, "Image uploaded successfully")
}
