package audio

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
)

// Synthesizer converts text to speech audio
type Synthesizer interface {
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

// FileStore saves audio files on disk
type FileStore interface {
	SaveAudio(originalName string, r io.Reader) (string, error)
	SaveTTS(data []byte, ext string) (string, error)
}

// SavedFile is a stored audio file
type SavedFile struct {
	Filename string `json:"filename"`
	Path     string `json:"path"`
}

// Service stores audio uploads and generates speech
type Service interface {
	Save(ctx context.Context, originalName string, r io.Reader) (*SavedFile, error)
	TextToSpeech(ctx context.Context, text, voice string) (*SavedFile, error)
}

type audioService struct {
	store        FileStore
	synth        Synthesizer
	defaultVoice string
	logger       *zap.Logger
}

// NewAudioService creates the audio service
func NewAudioService(store FileStore, synth Synthesizer, defaultVoice string, logger *zap.Logger) Service {
	return &audioService{store: store, synth: synth, defaultVoice: defaultVoice, logger: logger}
}

func (s *audioService) Save(ctx context.Context, originalName string, r io.Reader) (*SavedFile, error) {
	path, err := s.store.SaveAudio(originalName, r)
	if err != nil {
		return nil, fmt.Errorf("save audio: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("🎙️ Audio saved", zap.String("path", path))
	}
	return &SavedFile{Filename: filepath.Base(path), Path: path}, nil
}

func (s *audioService) TextToSpeech(ctx context.Context, text, voice string) (*SavedFile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: text is required", usecaseErrors.ErrInvalidInput)
	}
	if voice == "" {
		voice = s.defaultVoice
	}

	data, err := s.synth.Synthesize(ctx, text, voice)
	if err != nil {
		return nil, err
	}

	path, err := s.store.SaveTTS(data, ".wav")
	if err != nil {
		return nil, fmt.Errorf("save speech: %w", err)
	}
	if s.logger != nil {
		s.logger.Info("🔊 Speech generated", zap.String("path", path), zap.String("voice", voice))
	}
	return &SavedFile{Filename: filepath.Base(path), Path: path}, nil
}
