package handler

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/errors"
	"github.com/johnquangdev/insight-stream/internal/adapter/dto/meeting"
	"github.com/johnquangdev/insight-stream/internal/adapter/presenter"
	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	meetingUsecase "github.com/johnquangdev/insight-stream/internal/usecase/meeting"
	"github.com/johnquangdev/insight-stream/pkg/validator"
)

// UploadStore saves uploaded media on disk
type UploadStore interface {
	SaveUpload(originalName string, r io.Reader) (string, error)
}

// Video handles media upload and stored meeting requests
type Video struct {
	meetingService meetingUsecase.Service
	uploads        UploadStore
	logger         *zap.Logger
}

// NewVideoHandler creates a new video handler
func NewVideoHandler(meetingService meetingUsecase.Service, uploads UploadStore, logger *zap.Logger) *Video {
	return &Video{
		meetingService: meetingService,
		uploads:        uploads,
		logger:         logger,
	}
}

// Upload handles POST /upload
// @Summary      Upload and process a recording
// @Description  Saves the file, transcribes it, runs the two-stage analysis, exports CSV/XLSX and stores the meeting
// @Tags         Videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file                  formData  file    true   "Video, audio or .txt transcript"
// @Param        transcription_method  formData  string  false  "gemini or groq"
// @Param        model_id              formData  string  false  "Analysis model id"
// @Success      200  {object}  meeting.UploadResponse
// @Failure      400  {object}  map[string]interface{}  "Missing file or unsupported media"
// @Failure      500  {object}  map[string]interface{}  "Processing failed"
// @Router       /upload [post]
func (h *Video) Upload(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("file is required"))
	}

	req := meeting.UploadRequest{
		Filename:            file.Filename,
		TranscriptionMethod: c.FormValue("transcription_method"),
		ModelID:             c.FormValue("model_id"),
	}
	if err := c.Validate(&req); err != nil {
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if !validator.MediaExtensions[ext] {
			return HandleError(h.logger, c, errors.ErrMediaUnsupported(ext))
		}
		return HandleError(h.logger, c, errors.ErrValidationFailed(err))
	}

	src, err := file.Open()
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMediaSaveFailed(err))
	}
	defer src.Close()

	path, err := h.uploads.SaveUpload(file.Filename, src)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrMediaSaveFailed(err))
	}

	if h.logger != nil {
		h.logger.Info("📥 Upload received",
			zap.String("request_id", getRequestID(c)),
			zap.String("filename", file.Filename),
			zap.String("path", path),
			zap.Int64("size", file.Size),
		)
	}

	result, err := h.meetingService.Process(c.Request().Context(), meetingUsecase.ProcessInput{
		Path:     path,
		Filename: file.Filename,
		Method:   req.TranscriptionMethod,
		Model:    req.ModelID,
	})
	if err != nil {
		return HandleError(h.logger, c, appErrorOr(err, errors.ErrProcessingFailed))
	}

	response := &meeting.UploadResponse{
		MeetingID:  result.MeetingID,
		Filename:   result.Filename,
		Transcript: result.Transcript,
		Analysis:   result.Analysis,
	}
	if result.Export != nil {
		response.CSVPath = result.Export.CSVPath
		response.XLSXPath = result.Export.XLSXPath
		response.Download = "/download/" + filepath.Base(result.Export.CSVPath)
	}

	return HandleSuccess(h.logger, c, response)
}

// ListVideos handles GET /videos
// @Summary      List processed meetings
// @Tags         Videos
// @Produce      json
// @Param        page       query  int  false  "Page number"
// @Param        page_size  query  int  false  "Items per page"
// @Success      200  {object}  meeting.ListMeetingsResponse
// @Router       /videos [get]
func (h *Video) ListVideos(c echo.Context) error {
	var req meeting.ListMeetingsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	meetings, total, err := h.meetingService.List(c.Request().Context(), req.PageSize, (req.Page-1)*req.PageSize)
	if err != nil {
		return HandleError(h.logger, c, errors.ErrDBQueryFailed("list meetings", err))
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingListResponse(meetings, total, req.Page, req.PageSize))
}

// GetVideo handles GET /videos/:id
// @Summary      Get a processed meeting
// @Description  Returns the meeting with its parsed summary and stored insights
// @Tags         Videos
// @Produce      json
// @Param        id   path      string  true  "Meeting ID (UUID)"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /videos/{id} [get]
func (h *Video) GetVideo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid meeting id"))
	}

	m, insights, err := h.meetingService.Get(c.Request().Context(), id)
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m, insights))
}

// UpdateVideo handles PUT /videos/:id
// @Summary      Update a processed meeting
// @Description  Replaces title, transcript or summary; summary_text must be a JSON object
// @Tags         Videos
// @Accept       json
// @Produce      json
// @Param        id       path  string                        true  "Meeting ID (UUID)"
// @Param        request  body  meeting.UpdateMeetingRequest  true  "Fields to replace"
// @Success      200  {object}  meeting.MeetingResponse
// @Failure      404  {object}  map[string]interface{}  "Meeting not found"
// @Router       /videos/{id} [put]
func (h *Video) UpdateVideo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return HandleError(h.logger, c, errors.ErrInvalidArgument("invalid meeting id"))
	}

	var req meeting.UpdateMeetingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return HandleError(h.logger, c, err)
	}

	m, err := h.meetingService.Update(c.Request().Context(), id, entities.MeetingPatch{
		Title:          req.Title,
		TranscriptText: req.TranscriptText,
		SummaryText:    req.SummaryText,
	})
	if err != nil {
		return HandleError(h.logger, c, err)
	}

	return HandleSuccess(h.logger, c, presenter.ToMeetingResponse(m, nil))
}
