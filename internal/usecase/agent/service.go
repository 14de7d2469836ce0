package agent

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/internal/usecase/analysis"
	usecaseErrors "github.com/johnquangdev/insight-stream/internal/usecase/errors"
	pkgai "github.com/johnquangdev/insight-stream/pkg/ai"
	"github.com/johnquangdev/insight-stream/pkg/config"
)

// Tool names
const (
	ToolTranscribeVideo = "transcribe_video"
	ToolAnalyzeVideo    = "analyze_video_transcript"
)

// Capability describes what this agent can do for other agents
type Capability struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	InputFormat  string `json:"input_format"`
	OutputFormat string `json:"output_format"`
	URL          string `json:"url,omitempty"`
}

// Message is an inter-agent message
type Message struct {
	Sender  string `json:"sender" validate:"required"`
	Content string `json:"content" validate:"required"`
	Type    string `json:"type" validate:"omitempty,oneof=request response info"`
}

// Reply acknowledges a message
type Reply struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

// Tool is a callable operation with a JSON-schema input
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"input_schema"`
}

// ToolStatus is returned by tools that did not run
type ToolStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Service exposes the agent card, messaging and tools
type Service interface {
	Capabilities() []Capability
	HandleMessage(ctx context.Context, msg Message) Reply
	// VerifySignature checks an HMAC-SHA256 hex signature of body when a
	// shared secret is configured
	VerifySignature(body []byte, signature string) error
	// Sign returns the signature header value for body, or "" without a shared secret
	Sign(body []byte) string
	Tools() []Tool
	CallTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error)
}

type agentService struct {
	cfg      *config.AgentConfig
	analyzer analysis.Service
	logger   *zap.Logger
}

// NewAgentService creates the agent service
func NewAgentService(cfg *config.AgentConfig, analyzer analysis.Service, logger *zap.Logger) Service {
	return &agentService{cfg: cfg, analyzer: analyzer, logger: logger}
}

func (s *agentService) Capabilities() []Capability {
	return []Capability{
		{
			Name:         s.cfg.Name,
			Description:  "Specialized agent for analyzing sales and marketing videos.",
			InputFormat:  "Video File / Transcript",
			OutputFormat: "JSON Report with Domain Analysis",
			URL:          s.cfg.PublicURL,
		},
	}
}

func (s *agentService) HandleMessage(ctx context.Context, msg Message) Reply {
	if s.logger != nil {
		s.logger.Info("📨 Agent message received", zap.String("sender", msg.Sender), zap.String("type", msg.Type))
	}
	return Reply{
		Status: "received",
		Reply:  fmt.Sprintf("Hello %s, I am the %s. I received your message: %s", msg.Sender, s.cfg.Name, msg.Content),
	}
}

func (s *agentService) VerifySignature(body []byte, signature string) error {
	if s.cfg.SharedSecret == "" {
		return nil
	}
	if !pkgai.VerifyHMAC(s.cfg.SharedSecret, body, signature) {
		return usecaseErrors.ErrInvalidSignature
	}
	return nil
}

func (s *agentService) Sign(body []byte) string {
	return pkgai.SignatureHeaderValue(s.cfg.SharedSecret, body)
}

func (s *agentService) Tools() []Tool {
	return []Tool{
		{
			Name:        ToolTranscribeVideo,
			Description: "Transcribes a video file from a given path or URL.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"video_path": map[string]interface{}{"type": "string"},
				},
				"required": []string{"video_path"},
			},
		},
		{
			Name:        ToolAnalyzeVideo,
			Description: "Analyzes a video transcript and generates a structured report.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"transcript": map[string]interface{}{"type": "string"},
					"filename":   map[string]interface{}{"type": "string"},
				},
				"required": []string{"transcript"},
			},
		},
	}
}

func (s *agentService) CallTool(ctx context.Context, name string, args map[string]interface{}) (interface{}, error) {
	switch name {
	case ToolTranscribeVideo:
		return ToolStatus{
			Status:  "error",
			Message: "Direct file path access is not available over the tool interface. Use the upload endpoint.",
		}, nil

	case ToolAnalyzeVideo:
		transcript, _ := args["transcript"].(string)
		if strings.TrimSpace(transcript) == "" {
			return nil, fmt.Errorf("%w: transcript is required", usecaseErrors.ErrInvalidInput)
		}
		filename, _ := args["filename"].(string)
		if filename == "" {
			filename = "unknown"
		}
		model, _ := args["model"].(string)
		return s.analyzer.Analyze(ctx, transcript, filename, model)
	}

	return nil, fmt.Errorf("%w: %s", usecaseErrors.ErrToolNotFound, name)
}
