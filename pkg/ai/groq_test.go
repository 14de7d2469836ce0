package ai

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

func newTestGroq(url, key string) *GroqClient {
	return NewGroqClient(&config.AIConfig{
		GroqBaseURL:  url,
		WhisperModel: "whisper-large-v3",
		TTSModel:     "playai-tts",
		HTTPTimeout:  5 * time.Second,
	}, StaticKey(key))
}

func TestTranscribeFile_Success(t *testing.T) {
	// Mock Groq server
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/transcriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.Header.Get("Authorization") != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", r.Header.Get("Authorization"))
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("invalid multipart: %v", err)
		}
		if r.FormValue("model") != "whisper-large-v3" {
			t.Fatalf("unexpected model %q", r.FormValue("model"))
		}
		if r.FormValue("prompt") != "sales call" {
			t.Fatalf("unexpected prompt %q", r.FormValue("prompt"))
		}
		f, hdr, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("missing file: %v", err)
		}
		defer f.Close()
		data, _ := io.ReadAll(f)
		if hdr.Filename != "chunk.mp3" || string(data) != "fake-audio" {
			t.Fatalf("unexpected upload %s %q", hdr.Filename, data)
		}
		json.NewEncoder(w).Encode(map[string]string{"text": "  David Kim: hello  "})
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "chunk.mp3")
	if err := os.WriteFile(path, []byte("fake-audio"), 0o644); err != nil {
		t.Fatal(err)
	}

	text, err := newTestGroq(ts.URL, "test-key").TranscribeFile(context.Background(), path, "sales call")
	if err != nil {
		t.Fatalf("transcribe failed: %v", err)
	}
	if text != "David Kim: hello" {
		t.Fatalf("unexpected text %q", text)
	}
}

func TestTranscribeFile_ErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":"rate limited"}`))
	}))
	defer ts.Close()

	path := filepath.Join(t.TempDir(), "a.mp3")
	os.WriteFile(path, []byte("x"), 0o644)

	_, err := newTestGroq(ts.URL, "k").TranscribeFile(context.Background(), path, "")
	if err == nil || !strings.Contains(err.Error(), "429") {
		t.Fatalf("expected status error, got %v", err)
	}
}

func TestTranscribeFile_MissingKey(t *testing.T) {
	_, err := newTestGroq("http://unused", "").TranscribeFile(context.Background(), "/nope.mp3", "")
	if err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestSynthesize_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/openai/v1/audio/speech" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req SpeechRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("invalid payload: %v", err)
		}
		if req.Input != "Hello team" || req.Voice != "Fritz-PlayAI" || req.ResponseFormat != "wav" {
			t.Fatalf("unexpected request %+v", req)
		}
		w.Header().Set("Content-Type", "audio/wav")
		w.Write([]byte("RIFF"))
	}))
	defer ts.Close()

	audio, err := newTestGroq(ts.URL, "k").Synthesize(context.Background(), "Hello team", "Fritz-PlayAI")
	if err != nil {
		t.Fatalf("synthesize failed: %v", err)
	}
	if string(audio) != "RIFF" {
		t.Fatalf("unexpected audio %q", audio)
	}
}

func TestVerifyHMAC(t *testing.T) {
	payload := []byte(`{"sender":"crm-agent"}`)
	sig := SignHMAC("s3cret", payload)

	if !VerifyHMAC("s3cret", payload, sig) {
		t.Fatal("expected valid signature")
	}
	if VerifyHMAC("other", payload, sig) {
		t.Fatal("expected invalid signature for other secret")
	}
	if VerifyHMAC("", payload, sig) {
		t.Fatal("empty secret never verifies")
	}

	header := SignatureHeaderValue("s3cret", payload)
	if header != SignaturePrefix+sig || !VerifyHMAC("s3cret", payload, header) {
		t.Fatalf("prefixed header %q should verify", header)
	}
	if SignatureHeaderValue("", payload) != "" {
		t.Fatal("no header value without a secret")
	}
}
