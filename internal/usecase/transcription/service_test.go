package transcription

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

type fakeTranscriber struct {
	name  string
	text  string
	err   error
	calls []string
}

func (f *fakeTranscriber) Name() string { return f.name }

func (f *fakeTranscriber) TranscribeFile(ctx context.Context, path, prompt string) (string, error) {
	f.calls = append(f.calls, path)
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

// fakeAudio writes real files so cleanup can be observed
type fakeAudio struct {
	root       string
	dirs       []string
	chunks     int
	extractErr error
}

func (f *fakeAudio) TempDir() (string, error) {
	dir, err := os.MkdirTemp(f.root, "audio-*")
	f.dirs = append(f.dirs, dir)
	return dir, err
}

func (f *fakeAudio) ExtractAudio(ctx context.Context, src, dir string) (string, error) {
	if f.extractErr != nil {
		return "", f.extractErr
	}
	out := filepath.Join(dir, "audio.mp3")
	return out, os.WriteFile(out, []byte("audio"), 0o644)
}

func (f *fakeAudio) Split(ctx context.Context, audio, dir string, maxSeconds int) ([]string, error) {
	if f.chunks <= 1 {
		return []string{audio}, nil
	}
	var out []string
	for i := 0; i < f.chunks; i++ {
		p := filepath.Join(dir, "chunk_"+string(rune('a'+i))+".mp3")
		if err := os.WriteFile(p, []byte("c"), 0o644); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func newService(primary, speech *fakeTranscriber, audio *fakeAudio, method string) Service {
	cfg := &config.Config{AI: config.AIConfig{TranscriptionMethod: method}}
	return NewTranscriptionService(primary, speech, audio, config.NewRuntimeSettings(cfg), &config.MediaConfig{MaxChunkSeconds: 600}, nil)
}

func assertCleaned(t *testing.T, audio *fakeAudio) {
	t.Helper()
	if len(audio.dirs) == 0 {
		t.Fatal("expected a temp dir to be created")
	}
	for _, dir := range audio.dirs {
		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Fatalf("temp dir %s still exists", dir)
		}
	}
}

func TestTranscribe_SpeechFailureFallsBackToPrimary(t *testing.T) {
	primary := &fakeTranscriber{name: "gemini", text: "David Kim: hello"}
	speech := &fakeTranscriber{name: "groq", err: errors.New("429 rate limited")}
	audio := &fakeAudio{root: t.TempDir()}

	text, err := newService(primary, speech, audio, config.MethodGemini).Transcribe(context.Background(), "/data/call.mp4", config.MethodGroq)
	if err != nil {
		t.Fatalf("expected fallback success, got %v", err)
	}
	if text != "David Kim: hello" {
		t.Fatalf("unexpected text %q", text)
	}
	if len(speech.calls) != 1 || len(primary.calls) != 1 {
		t.Fatalf("expected one call each, got speech=%d primary=%d", len(speech.calls), len(primary.calls))
	}
	assertCleaned(t, audio)
}

func TestTranscribe_BothFail(t *testing.T) {
	primary := &fakeTranscriber{name: "gemini", err: errors.New("FAILED")}
	speech := &fakeTranscriber{name: "groq", err: errors.New("boom")}
	audio := &fakeAudio{root: t.TempDir()}

	text, err := newService(primary, speech, audio, config.MethodGroq).Transcribe(context.Background(), "/data/call.mp4", "")
	if !IsTranscriptionFailure(err) {
		t.Fatalf("expected transcription failure, got %v", err)
	}
	if text != "" {
		t.Fatalf("transcript must be empty when every provider fails, got %q", text)
	}
	assertCleaned(t, audio)
}

func TestTranscribe_ChunksJoinedAndCleaned(t *testing.T) {
	primary := &fakeTranscriber{name: "gemini"}
	speech := &fakeTranscriber{name: "groq", text: " part "}
	audio := &fakeAudio{root: t.TempDir(), chunks: 3}

	text, err := newService(primary, speech, audio, config.MethodGroq).Transcribe(context.Background(), "/data/long.mp4", "")
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "part part part" {
		t.Fatalf("unexpected joined text %q", text)
	}
	if len(primary.calls) != 0 {
		t.Fatal("primary should not be called when speech succeeds")
	}
	assertCleaned(t, audio)
}

func TestTranscribe_ExtractFailureCleansUp(t *testing.T) {
	primary := &fakeTranscriber{name: "gemini", text: "ok"}
	speech := &fakeTranscriber{name: "groq", text: "never"}
	audio := &fakeAudio{root: t.TempDir(), extractErr: errors.New("no audio stream")}

	if _, err := newService(primary, speech, audio, config.MethodGroq).Transcribe(context.Background(), "/data/x.mp4", ""); err != nil {
		t.Fatalf("expected fallback success, got %v", err)
	}
	if len(speech.calls) != 0 {
		t.Fatal("speech provider should not be called without audio")
	}
	assertCleaned(t, audio)
}

func TestTranscribe_PrimaryFirstByDefault(t *testing.T) {
	primary := &fakeTranscriber{name: "gemini", text: "from gemini"}
	speech := &fakeTranscriber{name: "groq", text: "from groq"}
	audio := &fakeAudio{root: t.TempDir()}

	text, err := newService(primary, speech, audio, config.MethodGemini).Transcribe(context.Background(), "/data/call.mp4", "")
	if err != nil || text != "from gemini" {
		t.Fatalf("got %q %v", text, err)
	}
	if len(audio.dirs) != 0 {
		t.Fatal("no temp audio expected on the primary path")
	}
}

func TestTranscribe_TextFileBypassesProviders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.TXT")
	if err := os.WriteFile(path, []byte("David Kim: plain text"), 0o644); err != nil {
		t.Fatal(err)
	}
	primary := &fakeTranscriber{name: "gemini"}
	speech := &fakeTranscriber{name: "groq"}

	text, err := newService(primary, speech, &fakeAudio{root: t.TempDir()}, config.MethodGemini).Transcribe(context.Background(), path, "")
	if err != nil || text != "David Kim: plain text" {
		t.Fatalf("got %q %v", text, err)
	}
	if len(primary.calls)+len(speech.calls) != 0 {
		t.Fatal("providers should not be called for text files")
	}
}
