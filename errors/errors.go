package errors

import (
	"fmt"
	"net/http"
	"time"
)

// AppError là custom error type cho application
type AppError struct {
	Raw       error
	HTTPCode  int
	Code      ErrorCode
	Message   string
	Details   map[string]string
	Timestamp time.Time
}

// Error implements error interface
func (e AppError) Error() string {
	if e.Raw != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code.String(), e.Message, e.Raw)
	}
	return fmt.Sprintf("[%s] %s", e.Code.String(), e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As
func (e AppError) Unwrap() error {
	return e.Raw
}

// WithDetail adds a detail to the error
func (e AppError) WithDetail(key, value string) AppError {
	if e.Details == nil {
		e.Details = make(map[string]string)
	}
	e.Details[key] = value
	return e
}

func newAppError(raw error, httpCode int, code ErrorCode, message string) AppError {
	return AppError{
		Raw:       raw,
		HTTPCode:  httpCode,
		Code:      code,
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
}

// General Errors
func ErrInternal(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTERNAL, "Internal server error")
}

func ErrInvalidArgument(message string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, message)
}

func ErrNotFound(resource string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_NOT_FOUND, fmt.Sprintf("%s not found", resource))
}

func ErrInvalidPayload() AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_INVALID_PAYLOAD, "Invalid payload")
}

func ErrValidationFailed(err error) AppError {
	return newAppError(err, http.StatusBadRequest, ErrorCode_INVALID_ARGUMENT, "Request validation failed")
}

// Media Errors
func ErrMediaUnsupported(ext string) AppError {
	return newAppError(nil, http.StatusBadRequest, ErrorCode_MEDIA_UNSUPPORTED, "Unsupported media type").
		WithDetail("extension", ext)
}

func ErrMediaSaveFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_MEDIA_SAVE_FAILED, "Failed to save uploaded file")
}

func ErrFileNotFound(filename string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_MEDIA_FILE_NOT_FOUND, "File not found").
		WithDetail("filename", filename)
}

// AI Errors
func ErrAITranscriptionFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_AI_TRANSCRIPTION_FAILED, "Audio transcription failed")
}

func ErrAIAnalysisFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_AI_ANALYSIS_FAILED, "AI analysis failed")
}

func ErrAIServiceUnavailable(service string) AppError {
	return newAppError(nil, http.StatusServiceUnavailable, ErrorCode_AI_SERVICE_UNAVAILABLE, "AI service temporarily unavailable").
		WithDetail("service", service)
}

func ErrSpeechSynthesisFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_AI_SPEECH_FAILED, "Speech synthesis failed")
}

// Report Errors
func ErrReportExportFailed(format string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_REPORT_EXPORT_FAILED, "Failed to export report").
		WithDetail("format", format)
}

// Integration Errors
func ErrStorageFailed(operation string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTEGRATION_STORAGE_FAILED,
		fmt.Sprintf("Storage operation failed: %s", operation))
}

func ErrStorageDisabled() AppError {
	return newAppError(nil, http.StatusServiceUnavailable, ErrorCode_INTEGRATION_STORAGE_FAILED, "Object storage is not enabled")
}

func ErrCacheFailed(operation string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTEGRATION_CACHE_FAILED,
		fmt.Sprintf("Cache operation failed: %s", operation))
}

func ErrExternalAPIFailed(service string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_INTEGRATION_EXTERNAL_API_FAILED,
		fmt.Sprintf("External API call failed: %s", service))
}

func ErrGraphUnavailable() AppError {
	return newAppError(nil, http.StatusServiceUnavailable, ErrorCode_INTEGRATION_GRAPH_UNAVAILABLE, "Graph database is unavailable")
}

// Database Errors
func ErrDBConnectionFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_DB_CONNECTION_FAILED, "Database connection failed")
}

func ErrDBQueryFailed(query string, err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_DB_QUERY_FAILED, "Database query failed").
		WithDetail("query", query)
}

// Agent Errors
func ErrInvalidSignature() AppError {
	return newAppError(nil, http.StatusUnauthorized, ErrorCode_AGENT_INVALID_SIGNATURE, "Invalid message signature")
}

func ErrToolNotFound(name string) AppError {
	return newAppError(nil, http.StatusNotFound, ErrorCode_AGENT_TOOL_NOT_FOUND, "Tool not found").
		WithDetail("tool", name)
}

// Pipeline Errors
func ErrProcessingFailed(err error) AppError {
	return newAppError(err, http.StatusInternalServerError, ErrorCode_PROCESSING_FAILED, "Processing failed")
}
