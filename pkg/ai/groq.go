package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// GroqClient is a minimal client for the Groq audio endpoints
// (Whisper transcription and text-to-speech)
type GroqClient struct {
	apiKey       KeyFunc
	baseURL      string
	whisperModel string
	ttsModel     string
	client       *http.Client
}

// NewGroqClient creates a Groq client using values from the provided config.
// A nil key falls back to cfg.GroqAPIKey, then to GROQ_API_KEY.
func NewGroqClient(cfg *config.AIConfig, key KeyFunc) *GroqClient {
	if key == nil {
		apiKey := cfg.GroqAPIKey
		if apiKey == "" {
			apiKey = os.Getenv("GROQ_API_KEY")
		}
		key = StaticKey(apiKey)
	}

	base := cfg.GroqBaseURL
	if base == "" {
		base = "https://api.groq.com"
	}

	return &GroqClient{
		apiKey:       key,
		baseURL:      strings.TrimRight(base, "/"),
		whisperModel: cfg.WhisperModel,
		ttsModel:     cfg.TTSModel,
		client:       &http.Client{Timeout: cfg.HTTPTimeout},
	}
}

// Name identifies the provider in logs
func (g *GroqClient) Name() string {
	return "groq"
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// TranscribeFile uploads an audio file to the Whisper endpoint and returns its text
func (g *GroqClient) TranscribeFile(ctx context.Context, path, prompt string) (string, error) {
	key := g.apiKey()
	if key == "" {
		return "", ErrMissingAPIKey
	}

	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", err
	}
	_ = w.WriteField("model", g.whisperModel)
	_ = w.WriteField("response_format", "json")
	_ = w.WriteField("temperature", "0")
	if prompt != "" {
		_ = w.WriteField("prompt", prompt)
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := g.baseURL + "/openai/v1/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", statusError("groq transcription", resp)
	}

	var tr transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", err
	}
	return strings.TrimSpace(tr.Text), nil
}

// SpeechRequest is the payload for /openai/v1/audio/speech
type SpeechRequest struct {
	Model          string `json:"model"`
	Input          string `json:"input"`
	Voice          string `json:"voice"`
	ResponseFormat string `json:"response_format"`
}

// Synthesize converts text to speech and returns the encoded audio (wav)
func (g *GroqClient) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	key := g.apiKey()
	if key == "" {
		return nil, ErrMissingAPIKey
	}

	b, err := json.Marshal(SpeechRequest{
		Model:          g.ttsModel,
		Input:          text,
		Voice:          voice,
		ResponseFormat: "wav",
	})
	if err != nil {
		return nil, err
	}

	endpoint := g.baseURL + "/openai/v1/audio/speech"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, statusError("groq speech", resp)
	}
	return io.ReadAll(resp.Body)
}

// statusError builds an error carrying the status and a short body excerpt
func statusError(op string, resp *http.Response) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s returned status %d: %s", op, resp.StatusCode, strings.TrimSpace(string(excerpt)))
}
