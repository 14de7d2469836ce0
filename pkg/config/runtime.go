package config

import "sync"

// Transcription methods accepted by the upload pipeline
const (
	MethodGemini = "gemini"
	MethodGroq   = "groq"
)

// Settings is a point-in-time copy of the settings editable over the API
type Settings struct {
	DefaultModel        string
	TranscriptionMethod string
	GroqAPIKey          string
	GoogleAPIKey        string
}

// SettingsPatch carries optional replacements for Settings
type SettingsPatch struct {
	DefaultModel        *string
	TranscriptionMethod *string
	GroqAPIKey          *string
	GoogleAPIKey        *string
}

// RuntimeSettings guards the mutable subset of configuration.
// Everything else in Config is fixed at startup.
type RuntimeSettings struct {
	mu       sync.RWMutex
	settings Settings
}

// NewRuntimeSettings seeds runtime settings from the loaded configuration
func NewRuntimeSettings(cfg *Config) *RuntimeSettings {
	return &RuntimeSettings{
		settings: Settings{
			DefaultModel:        cfg.AI.DefaultModel,
			TranscriptionMethod: cfg.AI.TranscriptionMethod,
			GroqAPIKey:          cfg.AI.GroqAPIKey,
			GoogleAPIKey:        cfg.AI.GoogleAPIKey,
		},
	}
}

// Snapshot returns a copy of the current settings
func (r *RuntimeSettings) Snapshot() Settings {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings
}

// Apply merges the non-nil fields of patch and returns the result
func (r *RuntimeSettings) Apply(patch SettingsPatch) Settings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.DefaultModel != nil {
		r.settings.DefaultModel = *patch.DefaultModel
	}
	if patch.TranscriptionMethod != nil {
		r.settings.TranscriptionMethod = *patch.TranscriptionMethod
	}
	if patch.GroqAPIKey != nil {
		r.settings.GroqAPIKey = *patch.GroqAPIKey
	}
	if patch.GoogleAPIKey != nil {
		r.settings.GoogleAPIKey = *patch.GoogleAPIKey
	}
	return r.settings
}
