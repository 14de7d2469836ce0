package handler

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
)

const archiveURLExpiry = time.Hour

// ArchiveBrowser reads archived objects
type ArchiveBrowser interface {
	ListFiles(ctx context.Context, prefix string) ([]string, error)
	GetFileURL(ctx context.Context, objectName string, expiry time.Duration) (string, error)
}

// Archive exposes archived media and exports
type Archive struct {
	archive ArchiveBrowser
	logger  *zap.Logger
}

// NewArchiveHandler creates a new archive handler. archive is nil when storage is disabled.
func NewArchiveHandler(archive ArchiveBrowser, logger *zap.Logger) *Archive {
	return &Archive{archive: archive, logger: logger}
}

// ListFiles lists archived objects
// @Summary      List archived files
// @Description  Lists uploaded media and exports copied to object storage
// @Tags         Archive
// @Produce      json
// @Param        prefix  query  string  false  "Object prefix, e.g. media/ or exports/"
// @Success      200     {object}  map[string]interface{}  "File list"
// @Failure      503     {object}  map[string]interface{}  "Storage disabled"
// @Router       /archive/files [get]
func (h *Archive) ListFiles(c echo.Context) error {
	if h.archive == nil {
		return HandleError(h.logger, c, usecaseErrors.ErrArchiveDisabled)
	}

	prefix := c.QueryParam("prefix")
	files, err := h.archive.ListFiles(c.Request().Context(), prefix)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("list", err))
	}

	if h.logger != nil {
		h.logger.Info("🗄️ Archive listed",
			zap.String("prefix", prefix),
			zap.Int("count", len(files)))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"files":  files,
		"count":  len(files),
		"prefix": prefix,
	})
}

// FileURL generates a download URL for an archived object
// @Summary      Archived file URL
// @Description  Generates a presigned download URL valid for one hour
// @Tags         Archive
// @Produce      json
// @Param        file  query  string  true  "Object name"
// @Success      200   {object}  map[string]interface{}  "Download URL"
// @Failure      400   {object}  map[string]interface{}  "Missing file parameter"
// @Failure      503   {object}  map[string]interface{}  "Storage disabled"
// @Router       /archive/url [get]
func (h *Archive) FileURL(c echo.Context) error {
	if h.archive == nil {
		return HandleError(h.logger, c, usecaseErrors.ErrArchiveDisabled)
	}

	file := c.QueryParam("file")
	if file == "" {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("Missing file parameter"))
	}

	url, err := h.archive.GetFileURL(c.Request().Context(), file, archiveURLExpiry)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrStorageFailed("presign", err))
	}

	return HandleSuccess(h.logger, c, map[string]interface{}{
		"file":       file,
		"url":        url,
		"expires_in": archiveURLExpiry.String(),
	})
}
