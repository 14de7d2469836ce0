package ai

import (
	"context"
	"testing"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

func TestAssemblyAITranscriber_MissingKey(t *testing.T) {
	t.Setenv("ASSEMBLYAI_API_KEY", "")
	tr := NewAssemblyAITranscriber(&config.AIConfig{})

	if _, err := tr.TranscribeFile(context.Background(), "/tmp/a.mp3", ""); err != ErrMissingAPIKey {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}
}

func TestPromptHints(t *testing.T) {
	got := promptHints(" Acme Corp, ,Q4 roadmap ,")
	if len(got) != 2 || got[0] != "Acme Corp" || got[1] != "Q4 roadmap" {
		t.Fatalf("unexpected hints %v", got)
	}
	if promptHints("") != nil {
		t.Fatal("empty prompt yields no hints")
	}
}
