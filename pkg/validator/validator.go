package validator

import (
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// MediaExtensions lists the upload extensions the pipeline accepts
var MediaExtensions = map[string]bool{
	".mp4": true, ".mov": true, ".mkv": true, ".webm": true, ".avi": true,
	".mp3": true, ".wav": true, ".m4a": true, ".ogg": true, ".flac": true,
	".txt": true,
}

// CustomValidator implements echo.Validator using go-playground/validator
type CustomValidator struct {
	v *validator.Validate
}

// New creates a new CustomValidator instance
func New() *CustomValidator {
	v := validator.New()
	_ = v.RegisterValidation("transcription_method", validateTranscriptionMethod)
	_ = v.RegisterValidation("media_ext", validateMediaExt)
	return &CustomValidator{v: v}
}

// Validate performs struct validation
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.v.Struct(i)
}

// Var validates a single value against a tag
func (cv *CustomValidator) Var(field interface{}, tag string) error {
	return cv.v.Var(field, tag)
}

func validateTranscriptionMethod(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "", config.MethodGemini, config.MethodGroq:
		return true
	}
	return false
}

func validateMediaExt(fl validator.FieldLevel) bool {
	return MediaExtensions[strings.ToLower(filepath.Ext(fl.Field().String()))]
}
