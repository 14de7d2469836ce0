package ai

import (
	"context"
	"fmt"
	"os"
	"strings"

	aai "github.com/AssemblyAI/assemblyai-go-sdk"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// AssemblyAITranscriber transcribes local audio files with the AssemblyAI SDK.
// It is an alternative backend for the secondary speech provider.
type AssemblyAITranscriber struct {
	client *aai.Client
	hasKey bool
}

// NewAssemblyAITranscriber creates a transcriber using the provided config.
// If the config has no key, falls back to ASSEMBLYAI_API_KEY.
func NewAssemblyAITranscriber(cfg *config.AIConfig) *AssemblyAITranscriber {
	apiKey := cfg.AssemblyAIAPIKey
	if apiKey == "" {
		apiKey = os.Getenv("ASSEMBLYAI_API_KEY")
	}
	return &AssemblyAITranscriber{
		client: aai.NewClient(apiKey),
		hasKey: apiKey != "",
	}
}

// Name identifies the provider in logs
func (a *AssemblyAITranscriber) Name() string {
	return "assemblyai"
}

// TranscribeFile uploads the file and waits for the transcript to complete.
// AssemblyAI has no free-text prompt, so prompt is used as word boost hints.
func (a *AssemblyAITranscriber) TranscribeFile(ctx context.Context, path, prompt string) (string, error) {
	if !a.hasKey {
		return "", ErrMissingAPIKey
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	params := &aai.TranscriptOptionalParams{
		LanguageDetection: aai.Bool(true),
		SpeakerLabels:     aai.Bool(true),
	}
	if hints := promptHints(prompt); len(hints) > 0 {
		params.WordBoost = hints
	}

	transcript, err := a.client.Transcripts.TranscribeFromReader(ctx, f, params)
	if err != nil {
		return "", fmt.Errorf("assemblyai transcription failed: %w", err)
	}
	if transcript.Status == aai.TranscriptStatusError {
		return "", fmt.Errorf("assemblyai transcription failed: %s", aai.ToString(transcript.Error))
	}
	return strings.TrimSpace(aai.ToString(transcript.Text)), nil
}

// promptHints splits a comma separated prompt into boost terms
func promptHints(prompt string) []string {
	var hints []string
	for _, h := range strings.Split(prompt, ",") {
		if h = strings.TrimSpace(h); h != "" && len(h) <= 64 {
			hints = append(hints, h)
		}
	}
	return hints
}
