package handler

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/agent"
	audioUsecase "github.com/johnquangdev/insight-stream/internal/usecase/audio"
)

// Audio handles audio upload and speech synthesis
type Audio struct {
	audioService audioUsecase.Service
	logger       *zap.Logger
}

// NewAudioHandler creates a new audio handler
func NewAudioHandler(audioService audioUsecase.Service, logger *zap.Logger) *Audio {
	return &Audio{audioService: audioService, logger: logger}
}

// Upload handles POST /audio/upload
// @Summary      Upload an audio file
// @Description  Stores the file under uploads/audio with a generated name, keeping its extension
// @Tags         Audio
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Audio file"
// @Success      200  {object}  audio.SavedFile
// @Failure      400  {object}  map[string]interface{}  "Missing file"
// @Router       /audio/upload [post]
func (h *Audio) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMediaSaveFailed(err))
	}
	defer src.Close()

	saved, err := h.audioService.Save(c.Request().Context(), file.Filename, src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMediaSaveFailed(err))
	}

	return HandleSuccess(h.logger, c, saved)
}

// TextToSpeech handles POST /audio/tts
// @Summary      Synthesize speech
// @Tags         Audio
// @Accept       json
// @Produce      json
// @Param        request  body  agent.TTSRequest  true  "Text and optional voice"
// @Success      200  {object}  map[string]string  "filename and download url"
// @Failure      500  {object}  map[string]interface{}  "Speech synthesis failed"
// @Router       /audio/tts [post]
func (h *Audio) TextToSpeech(c echo.Context) error {
	var req agent.TTSRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	saved, err := h.audioService.TextToSpeech(c.Request().Context(), req.Text, req.Voice)
	if err != nil {
		return HandleError(h.logger, c, appErrorOr(err, errors.ErrSpeechSynthesisFailed))
	}

	return HandleSuccess(h.logger, c, map[string]string{
		"filename": saved.Filename,
		"url":      "/download/tts/" + saved.Filename,
	})
}
