package settings

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
	"github.com/johnquangdev/insight-stream/pkg/config"
)

// ModelOption is a selectable model
type ModelOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// View is the runtime configuration shown to clients. Keys are reported
// only as present or absent.
type View struct {
	DefaultModel        string        `json:"default_model"`
	TranscriptionMethod string        `json:"transcription_method"`
	HasGroqKey          bool          `json:"has_groq_key"`
	HasGoogleKey        bool          `json:"has_google_key"`
	TranscriptionModels []ModelOption `json:"transcription_models"`
	AnalysisModels      []ModelOption `json:"analysis_models"`
}

var transcriptionModels = []ModelOption{
	{ID: config.MethodGemini, Name: "Gemini (Multimodal)"},
	{ID: config.MethodGroq, Name: "Groq Whisper (Fast Audio)"},
}

var analysisModels = []ModelOption{
	{ID: "openai/gpt-oss-120b", Name: "Default (GPT-OSS 120B)"},
	{ID: "gemini-2.0-flash", Name: "Gemini 2.0 Flash"},
	{ID: "gemini-1.5-pro", Name: "Gemini 1.5 Pro"},
	{ID: "llama-3.3-70b-versatile", Name: "Llama 3.3 70B (Groq)"},
	{ID: "llama-3.1-8b-instant", Name: "Llama 3.1 8B (Groq)"},
}

// Service reads and updates runtime settings
type Service interface {
	Get() View
	Update(patch config.SettingsPatch) (View, error)
}

type settingsService struct {
	runtime *config.RuntimeSettings
	logger  *zap.Logger
}

// NewSettingsService creates the settings service
func NewSettingsService(runtime *config.RuntimeSettings, logger *zap.Logger) Service {
	return &settingsService{runtime: runtime, logger: logger}
}

func (s *settingsService) Get() View {
	return toView(s.runtime.Snapshot())
}

// Update applies the non-empty fields of patch
func (s *settingsService) Update(patch config.SettingsPatch) (View, error) {
	patch.DefaultModel = nonEmpty(patch.DefaultModel)
	patch.TranscriptionMethod = nonEmpty(patch.TranscriptionMethod)
	patch.GroqAPIKey = nonEmpty(patch.GroqAPIKey)
	patch.GoogleAPIKey = nonEmpty(patch.GoogleAPIKey)

	if m := patch.TranscriptionMethod; m != nil && *m != config.MethodGemini && *m != config.MethodGroq {
		return View{}, fmt.Errorf("%w: transcription_method must be %s or %s", usecaseErrors.ErrInvalidInput, config.MethodGemini, config.MethodGroq)
	}

	updated := s.runtime.Apply(patch)
	if s.logger != nil {
		s.logger.Info("⚙️ Runtime settings updated",
			zap.String("default_model", updated.DefaultModel),
			zap.String("transcription_method", updated.TranscriptionMethod),
			zap.Bool("groq_key_changed", patch.GroqAPIKey != nil),
			zap.Bool("google_key_changed", patch.GoogleAPIKey != nil),
		)
	}
	return toView(updated), nil
}

func toView(s config.Settings) View {
	return View{
		DefaultModel:        s.DefaultModel,
		TranscriptionMethod: s.TranscriptionMethod,
		HasGroqKey:          s.GroqAPIKey != "",
		HasGoogleKey:        s.GoogleAPIKey != "",
		TranscriptionModels: transcriptionModels,
		AnalysisModels:      analysisModels,
	}
}

func nonEmpty(v *string) *string {
	if v == nil || strings.TrimSpace(*v) == "" {
		return nil
	}
	t := strings.TrimSpace(*v)
	return &t
}
