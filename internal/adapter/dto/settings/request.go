package settings

import "github.com/johnquangdev/insight-stream/pkg/config"

// UpdateConfigRequest changes runtime settings; empty fields are ignored
type UpdateConfigRequest struct {
	DefaultModel        *string `json:"default_model,omitempty" validate:"omitempty,max=128"`
	TranscriptionMethod *string `json:"transcription_method,omitempty" validate:"omitempty,transcription_method"`
	GroqAPIKey          *string `json:"groq_api_key,omitempty"`
	GoogleAPIKey        *string `json:"google_api_key,omitempty"`
}

// Patch converts the request to a settings patch
func (r UpdateConfigRequest) Patch() config.SettingsPatch {
	return config.SettingsPatch{
		DefaultModel:        r.DefaultModel,
		TranscriptionMethod: r.TranscriptionMethod,
		GroqAPIKey:          r.GroqAPIKey,
		GoogleAPIKey:        r.GoogleAPIKey,
	}
}
