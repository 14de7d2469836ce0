package transcription

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
	"github.com/johnquangdev/insight-stream/pkg/config"
)

// Transcriber turns a media file into text
type Transcriber interface {
	Name() string
	TranscribeFile(ctx context.Context, path, prompt string) (string, error)
}

// AudioProcessor prepares audio for the speech-recognition provider
type AudioProcessor interface {
	TempDir() (string, error)
	ExtractAudio(ctx context.Context, src, dir string) (string, error)
	Split(ctx context.Context, audio, dir string, maxSeconds int) ([]string, error)
}

// Service transcribes uploaded media
type Service interface {
	// Transcribe returns the transcript for the file at path. method selects
	// the first provider to try; empty means the runtime default.
	Transcribe(ctx context.Context, path, method string) (string, error)
}

type transcriptionService struct {
	primary         Transcriber // multimodal, takes the whole file
	speech          Transcriber // speech recognition on extracted audio
	media           AudioProcessor
	settings        *config.RuntimeSettings
	maxChunkSeconds int
	logger          *zap.Logger
}

// NewTranscriptionService wires the primary and speech providers
func NewTranscriptionService(
	primary Transcriber,
	speech Transcriber,
	media AudioProcessor,
	settings *config.RuntimeSettings,
	cfg *config.MediaConfig,
	logger *zap.Logger,
) Service {
	return &transcriptionService{
		primary:         primary,
		speech:          speech,
		media:           media,
		settings:        settings,
		maxChunkSeconds: cfg.MaxChunkSeconds,
		logger:          logger,
	}
}

func (s *transcriptionService) Transcribe(ctx context.Context, path, method string) (string, error) {
	if strings.EqualFold(filepath.Ext(path), ".txt") {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("read transcript file: %w", err)
		}
		return string(data), nil
	}

	if method == "" {
		method = s.settings.Snapshot().TranscriptionMethod
	}

	first, second := s.viaPrimary, s.viaSpeech
	if method == config.MethodGroq {
		first, second = s.viaSpeech, s.viaPrimary
	}

	text, err := first(ctx, path)
	if err == nil {
		return text, nil
	}
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if s.logger != nil {
		s.logger.Warn("⚠️ Transcription provider failed, falling back",
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err),
		)
	}

	text, fallbackErr := second(ctx, path)
	if fallbackErr != nil {
		return "", fmt.Errorf("%w: %v; fallback: %v", usecaseErrors.ErrTranscriptionFailed, err, fallbackErr)
	}
	return text, nil
}

func (s *transcriptionService) viaPrimary(ctx context.Context, path string) (string, error) {
	text, err := s.primary.TranscribeFile(ctx, path, "")
	if err != nil {
		return "", fmt.Errorf("%s: %w", s.primary.Name(), err)
	}
	if s.logger != nil {
		s.logger.Info("📝 Transcribed media", zap.String("provider", s.primary.Name()), zap.Int("chars", len(text)))
	}
	return text, nil
}

// viaSpeech extracts audio into a private temp directory, transcribes each
// chunk and joins the texts. The directory is removed on every return path.
func (s *transcriptionService) viaSpeech(ctx context.Context, path string) (string, error) {
	dir, err := s.media.TempDir()
	if err != nil {
		return "", fmt.Errorf("create temp dir: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil && s.logger != nil {
			s.logger.Warn("⚠️ Failed to remove temp audio", zap.String("dir", dir), zap.Error(rmErr))
		}
	}()

	audio, err := s.media.ExtractAudio(ctx, path, dir)
	if err != nil {
		return "", err
	}

	chunks, err := s.media.Split(ctx, audio, dir, s.maxChunkSeconds)
	if err != nil {
		return "", err
	}

	texts := make([]string, 0, len(chunks))
	for i, chunk := range chunks {
		text, err := s.speech.TranscribeFile(ctx, chunk, "")
		if err != nil {
			return "", fmt.Errorf("%s chunk %d/%d: %w", s.speech.Name(), i+1, len(chunks), err)
		}
		if t := strings.TrimSpace(text); t != "" {
			texts = append(texts, t)
		}
	}

	if len(texts) == 0 {
		return "", fmt.Errorf("%s: %w", s.speech.Name(), usecaseErrors.ErrEmptyTranscript)
	}

	if s.logger != nil {
		s.logger.Info("📝 Transcribed audio", zap.String("provider", s.speech.Name()), zap.Int("chunks", len(chunks)))
	}
	return strings.Join(texts, " "), nil
}

// IsTranscriptionFailure reports whether err came from both providers failing
func IsTranscriptionFailure(err error) bool {
	return errors.Is(err, usecaseErrors.ErrTranscriptionFailed)
}
