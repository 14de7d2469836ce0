package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// runFunc executes an external command and returns its stdout
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Extractor pulls audio tracks out of media files and splits long audio with ffmpeg
type Extractor struct {
	ffmpeg  string
	ffprobe string
	tempDir string
	run     runFunc
	logger  *zap.Logger
}

// NewExtractor creates an ffmpeg-backed extractor
func NewExtractor(cfg *config.MediaConfig, logger *zap.Logger) *Extractor {
	return &Extractor{
		ffmpeg:  cfg.FFmpegPath,
		ffprobe: cfg.FFprobePath,
		tempDir: cfg.TempDir,
		run:     runCommand,
		logger:  logger,
	}
}

// TempDir creates a private working directory. The caller removes it.
func (e *Extractor) TempDir() (string, error) {
	return os.MkdirTemp(e.tempDir, "insight-audio-*")
}

// ExtractAudio writes a mono 16kHz mp3 of src's audio track into dir
func (e *Extractor) ExtractAudio(ctx context.Context, src, dir string) (string, error) {
	out := filepath.Join(dir, "audio.mp3")
	_, err := e.run(ctx, e.ffmpeg,
		"-y", "-hide_banner", "-loglevel", "error",
		"-i", src,
		"-vn", "-ac", "1", "-ar", "16000", "-b:a", "64k",
		out,
	)
	if err != nil {
		return "", fmt.Errorf("extract audio: %w", err)
	}
	if e.logger != nil {
		e.logger.Info("🎵 Extracted audio track", zap.String("src", src), zap.String("audio", out))
	}
	return out, nil
}

// Duration returns the length of a media file in seconds
func (e *Extractor) Duration(ctx context.Context, path string) (float64, error) {
	out, err := e.run(ctx, e.ffprobe,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)
	if err != nil {
		return 0, fmt.Errorf("probe duration: %w", err)
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(string(out)), 64)
	if err != nil {
		return 0, fmt.Errorf("parse duration %q: %w", strings.TrimSpace(string(out)), err)
	}
	return d, nil
}

// Split cuts audio into chunks of at most maxSeconds inside dir.
// Audio that already fits is returned unchanged.
func (e *Extractor) Split(ctx context.Context, audio, dir string, maxSeconds int) ([]string, error) {
	duration, err := e.Duration(ctx, audio)
	if err != nil {
		return nil, err
	}

	segments := PlanChunks(duration, float64(maxSeconds))
	if len(segments) <= 1 {
		return []string{audio}, nil
	}

	chunks := make([]string, 0, len(segments))
	for i, seg := range segments {
		out := filepath.Join(dir, fmt.Sprintf("chunk_%03d%s", i, filepath.Ext(audio)))
		_, err := e.run(ctx, e.ffmpeg,
			"-y", "-hide_banner", "-loglevel", "error",
			"-ss", formatSeconds(seg.Start),
			"-t", formatSeconds(seg.Length),
			"-i", audio,
			"-c", "copy",
			out,
		)
		if err != nil {
			return nil, fmt.Errorf("split chunk %d: %w", i, err)
		}
		chunks = append(chunks, out)
	}

	if e.logger != nil {
		e.logger.Info("✂️ Split audio into chunks", zap.Float64("duration", duration), zap.Int("chunks", len(chunks)))
	}
	return chunks, nil
}

// Segment is a [Start, Start+Length) window in seconds
type Segment struct {
	Start  float64
	Length float64
}

// PlanChunks divides duration into consecutive windows of at most max seconds
func PlanChunks(duration, max float64) []Segment {
	if duration <= 0 || max <= 0 {
		return nil
	}
	var segments []Segment
	for start := 0.0; start < duration; start += max {
		length := max
		if start+length > duration {
			length = duration - start
		}
		segments = append(segments, Segment{Start: start, Length: length})
	}
	return segments
}

func formatSeconds(s float64) string {
	return strconv.FormatFloat(s, 'f', 3, 64)
}

func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w: %s", filepath.Base(name), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
