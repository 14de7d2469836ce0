package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/johnquangdev/insight-stream/internal/domain/entities"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
	"github.com/johnquangdev/insight-stream/pkg/config"
)

type fakeAnalyzer struct {
	gotTranscript, gotSource string
}

func (f *fakeAnalyzer) Analyze(ctx context.Context, transcript, sourceID, model string) (*entities.AnalysisResult, error) {
	f.gotTranscript, f.gotSource = transcript, sourceID
	return &entities.AnalysisResult{
		Classification: entities.Classification{Domain: "Sales"},
		Report:         entities.Report{"Summary": "ok"},
		Graph:          entities.Unavailable[entities.GraphEntities](),
	}, nil
}

func newTestAgent(secret string) (Service, *fakeAnalyzer) {
	a := &fakeAnalyzer{}
	cfg := &config.AgentConfig{Name: "Video Analysis Agent", SharedSecret: secret}
	return NewAgentService(cfg, a, nil), a
}

func TestHandleMessage(t *testing.T) {
	svc, _ := newTestAgent("")
	reply := svc.HandleMessage(context.Background(), Message{Sender: "Scheduler", Content: "ping", Type: "info"})

	want := "Hello Scheduler, I am the Video Analysis Agent. I received your message: ping"
	if reply.Status != "received" || reply.Reply != want {
		t.Fatalf("unexpected reply %+v", reply)
	}
	if caps := svc.Capabilities(); len(caps) != 1 || caps[0].Name != "Video Analysis Agent" {
		t.Fatalf("unexpected capabilities %+v", caps)
	}
}

func TestSignature(t *testing.T) {
	body := []byte(`{"sender":"a","content":"b"}`)

	open, _ := newTestAgent("")
	if err := open.VerifySignature(body, ""); err != nil {
		t.Fatalf("no secret means no check: %v", err)
	}
	if open.Sign(body) != "" {
		t.Fatal("no signature without a secret")
	}

	signed, _ := newTestAgent("s3cret")
	sig := pkgai.SignHMAC("s3cret", body)
	if err := signed.VerifySignature(body, sig); err != nil {
		t.Fatalf("valid signature rejected: %v", err)
	}
	if err := signed.VerifySignature(body, "sha256="+sig); err != nil {
		t.Fatalf("prefixed signature rejected: %v", err)
	}
	if err := signed.VerifySignature(body, "deadbeef"); !errors.Is(err, usecaseErrors.ErrInvalidSignature) {
		t.Fatalf("expected ErrInvalidSignature, got %v", err)
	}
	if signed.Sign(body) != pkgai.SignaturePrefix+sig {
		t.Fatal("Sign should return the prefixed SignHMAC value")
	}
}

func TestCallTool(t *testing.T) {
	svc, analyzer := newTestAgent("")
	ctx := context.Background()

	out, err := svc.CallTool(ctx, ToolTranscribeVideo, map[string]interface{}{"video_path": "/etc/passwd"})
	if err != nil {
		t.Fatal(err)
	}
	if status, ok := out.(ToolStatus); !ok || status.Status != "error" {
		t.Fatalf("transcribe tool should report not available, got %+v", out)
	}

	out, err = svc.CallTool(ctx, ToolAnalyzeVideo, map[string]interface{}{"transcript": "David Kim: hi"})
	if err != nil {
		t.Fatal(err)
	}
	if res, ok := out.(*entities.AnalysisResult); !ok || res.Classification.Domain != "Sales" {
		t.Fatalf("unexpected analysis output %+v", out)
	}
	if analyzer.gotSource != "unknown" || analyzer.gotTranscript != "David Kim: hi" {
		t.Fatalf("unexpected analyzer args %q %q", analyzer.gotTranscript, analyzer.gotSource)
	}

	if _, err := svc.CallTool(ctx, ToolAnalyzeVideo, map[string]interface{}{}); !errors.Is(err, usecaseErrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.CallTool(ctx, "delete_everything", nil); !errors.Is(err, usecaseErrors.ErrToolNotFound) {
		t.Fatalf("expected ErrToolNotFound, got %v", err)
	}
	if tools := svc.Tools(); len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(tools))
	}
}

func makeCallToolRequest(name string, args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func TestMCPCall(t *testing.T) {
	svc, _ := newTestAgent("")
	ctx := context.Background()

	res, err := mcpCall(svc, ToolAnalyzeVideo)(ctx, makeCallToolRequest(ToolAnalyzeVideo, map[string]any{"transcript": "t"}))
	if err != nil || res.IsError {
		t.Fatalf("unexpected result %+v %v", res, err)
	}
	text := res.Content[0].(mcp.TextContent).Text
	if !strings.Contains(text, `"domain":"Sales"`) {
		t.Fatalf("unexpected text %s", text)
	}

	res, _ = mcpCall(svc, ToolTranscribeVideo)(ctx, makeCallToolRequest(ToolTranscribeVideo, map[string]any{"video_path": "x"}))
	if !res.IsError {
		t.Fatal("transcribe tool should be an MCP error")
	}

	if NewMCPServer(svc, "insight-stream", "1.0.0") == nil {
		t.Fatal("expected server")
	}
}
