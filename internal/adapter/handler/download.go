package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	"github.com/johnquangdev/insight-stream/internal/infrastructure/storage"
)

// DownloadStore resolves downloadable file names to paths
type DownloadStore interface {
	ExportPath(name string) (string, error)
	TTSPath(name string) (string, error)
}

// Download serves exported reports and generated speech
type Download struct {
	files  DownloadStore
	logger *zap.Logger
}

// NewDownloadHandler creates a new download handler
func NewDownloadHandler(files DownloadStore, logger *zap.Logger) *Download {
	return &Download{files: files, logger: logger}
}

// Export handles GET /download/:filename
// @Summary      Download an exported report
// @Tags         Download
// @Produce      octet-stream
// @Param        filename  path  string  true  "CSV or XLSX file name"
// @Success      200
// @Failure      404  {object}  map[string]interface{}  "File not found"
// @Router       /download/{filename} [get]
func (h *Download) Export(c echo.Context) error {
	return h.serve(c, h.files.ExportPath)
}

// TTS handles GET /download/tts/:filename
// @Summary      Download generated speech
// @Tags         Download
// @Produce      octet-stream
// @Param        filename  path  string  true  "Audio file name"
// @Success      200
// @Failure      404  {object}  map[string]interface{}  "File not found"
// @Router       /download/tts/{filename} [get]
func (h *Download) TTS(c echo.Context) error {
	return h.serve(c, h.files.TTSPath)
}

func (h *Download) serve(c echo.Context, resolve func(string) (string, error)) error {
	name := c.Param("filename")
	path, err := resolve(name)
	if err != nil || !storage.Exists(path) {
		return HandleError(h.logger, c, errors.ErrFileNotFound(name))
	}
	return c.Attachment(path, name)
}
