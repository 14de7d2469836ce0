package ai

import (
	"context"
	"errors"
	"fmt"
	"mime"
	"path/filepath"
	"strings"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.uber.org/zap"
	"google.golang.org/genai"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

const defaultTranscriptPrompt = "Generate a detailed, verbatim transcript of this recording. " +
	"Prefix each turn with the speaker's name when it can be inferred, for example \"David Kim: ...\"."

var (
	// ErrFileProcessingFailed is returned when the uploaded file reaches the FAILED state
	ErrFileProcessingFailed = errors.New("gemini file processing failed")
	// ErrEmptyTranscript is returned when a provider answers with no text
	ErrEmptyTranscript = errors.New("empty transcript")

	errStillProcessing = errors.New("file still processing")
)

// geminiFiles is the subset of the Gemini API used for file transcription
type geminiFiles interface {
	Upload(ctx context.Context, path, mimeType string) (*genai.File, error)
	Get(ctx context.Context, name string) (*genai.File, error)
	Delete(ctx context.Context, name string) error
	Generate(ctx context.Context, model string, file *genai.File, prompt string) (string, error)
}

// GeminiTranscriber is the primary multimodal transcription provider.
// It uploads the media, waits for processing and asks the model for a transcript.
type GeminiTranscriber struct {
	api          geminiFiles
	model        string
	pollInterval time.Duration
	logger       *zap.Logger
}

// NewGeminiTranscriber creates the primary transcriber backed by google.golang.org/genai
func NewGeminiTranscriber(cfg *config.AIConfig, key KeyFunc, logger *zap.Logger) *GeminiTranscriber {
	if key == nil {
		key = StaticKey(cfg.GoogleAPIKey)
	}
	return &GeminiTranscriber{
		api:          &genaiFiles{key: key},
		model:        cfg.GeminiModel,
		pollInterval: cfg.PollInterval,
		logger:       logger,
	}
}

// Name identifies the provider in logs
func (t *GeminiTranscriber) Name() string {
	return "gemini"
}

// TranscribeFile uploads the media file and returns the generated transcript
func (t *GeminiTranscriber) TranscribeFile(ctx context.Context, path, prompt string) (string, error) {
	if prompt == "" {
		prompt = defaultTranscriptPrompt
	}

	file, err := t.api.Upload(ctx, path, MimeTypeFor(path))
	if err != nil {
		return "", fmt.Errorf("gemini upload failed: %w", err)
	}
	name := file.Name
	defer func() {
		if err := t.api.Delete(context.WithoutCancel(ctx), name); err != nil && t.logger != nil {
			t.logger.Warn("⚠️ failed to delete gemini file", zap.String("file", name), zap.Error(err))
		}
	}()

	if t.logger != nil {
		t.logger.Info("📤 Uploaded media to Gemini", zap.String("file", file.Name), zap.String("state", string(file.State)))
	}

	active, err := t.waitForFile(ctx, file)
	if err != nil {
		return "", err
	}

	text, err := t.api.Generate(ctx, t.model, active, prompt)
	if err != nil {
		return "", fmt.Errorf("gemini generate failed: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}

// waitForFile polls the file until it leaves the PROCESSING state
func (t *GeminiTranscriber) waitForFile(ctx context.Context, file *genai.File) (*genai.File, error) {
	current := file
	if current.State == genai.FileStateFailed {
		return nil, ErrFileProcessingFailed
	}
	if current.State != genai.FileStateProcessing {
		return current, nil
	}

	interval := t.pollInterval
	if interval <= 0 {
		interval = 2 * time.Second
	}
	bo := backoff.WithContext(backoff.NewConstantBackOff(interval), ctx)

	poll := func() error {
		f, err := t.api.Get(ctx, file.Name)
		if err != nil {
			return backoff.Permanent(fmt.Errorf("gemini get file failed: %w", err))
		}
		switch f.State {
		case genai.FileStateProcessing:
			return errStillProcessing
		case genai.FileStateFailed:
			return backoff.Permanent(ErrFileProcessingFailed)
		}
		current = f
		return nil
	}
	notify := func(_ error, wait time.Duration) {
		if t.logger != nil {
			t.logger.Debug("⏳ Gemini file still processing", zap.String("file", file.Name), zap.Duration("next_poll", wait))
		}
	}

	if err := backoff.RetryNotify(poll, bo, notify); err != nil {
		return nil, err
	}
	return current, nil
}

// MimeTypeFor guesses a media MIME type from the file extension
func MimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".mp3":
		return "audio/mpeg"
	case ".wav":
		return "audio/wav"
	case ".m4a":
		return "audio/mp4"
	case ".mp4":
		return "video/mp4"
	case ".mov":
		return "video/quicktime"
	}
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "application/octet-stream"
}

// genaiFiles implements geminiFiles with a client built per call,
// so key changes made at runtime take effect on the next request
type genaiFiles struct {
	key KeyFunc
}

func (g *genaiFiles) client(ctx context.Context) (*genai.Client, error) {
	return NewGenAIClient(ctx, g.key())
}

func (g *genaiFiles) Upload(ctx context.Context, path, mimeType string) (*genai.File, error) {
	c, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	return c.Files.UploadFromPath(ctx, path, &genai.UploadFileConfig{
		MIMEType:    mimeType,
		DisplayName: filepath.Base(path),
	})
}

func (g *genaiFiles) Get(ctx context.Context, name string) (*genai.File, error) {
	c, err := g.client(ctx)
	if err != nil {
		return nil, err
	}
	return c.Files.Get(ctx, name, nil)
}

func (g *genaiFiles) Delete(ctx context.Context, name string) error {
	c, err := g.client(ctx)
	if err != nil {
		return err
	}
	_, err = c.Files.Delete(ctx, name, nil)
	return err
}

func (g *genaiFiles) Generate(ctx context.Context, model string, file *genai.File, prompt string) (string, error) {
	c, err := g.client(ctx)
	if err != nil {
		return "", err
	}
	contents := []*genai.Content{
		genai.NewContentFromParts([]*genai.Part{
			genai.NewPartFromURI(file.URI, file.MIMEType),
			genai.NewPartFromText(prompt),
		}, genai.RoleUser),
	}
	resp, err := c.Models.GenerateContent(ctx, model, contents, nil)
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// NewGenAIClient builds a Gemini API client for key
func NewGenAIClient(ctx context.Context, key string) (*genai.Client, error) {
	if key == "" {
		return nil, ErrMissingAPIKey
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
}
