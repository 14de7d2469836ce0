package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer exposes the agent tools over the Model Context Protocol
func NewMCPServer(svc Service, name, version string) *server.MCPServer {
	s := server.NewMCPServer(
		name,
		version,
		server.WithToolCapabilities(false),
		server.WithInstructions("Transcribe and analyze sales and meeting recordings."),
		server.WithRecovery(),
	)

	s.AddTool(
		mcp.NewTool(ToolTranscribeVideo,
			mcp.WithDescription("Transcribes a video file from a given path or URL."),
			mcp.WithString("video_path", mcp.Description("Path or URL of the video"), mcp.Required()),
		),
		mcpCall(svc, ToolTranscribeVideo),
	)

	s.AddTool(
		mcp.NewTool(ToolAnalyzeVideo,
			mcp.WithDescription("Analyzes a video transcript and generates a structured report."),
			mcp.WithString("transcript", mcp.Description("Full transcript text"), mcp.Required()),
			mcp.WithString("filename", mcp.Description("Source file name used to label the recording")),
			mcp.WithString("model", mcp.Description("Analysis model id; empty uses the default")),
		),
		mcpCall(svc, ToolAnalyzeVideo),
	)

	return s
}

func mcpCall(svc Service, tool string) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := svc.CallTool(ctx, tool, req.GetArguments())
		if err != nil {
			return mcpError(err.Error()), nil
		}

		if status, ok := out.(ToolStatus); ok && status.Status == "error" {
			return mcpError(status.Message), nil
		}

		b, err := json.Marshal(out)
		if err != nil {
			return mcpError(fmt.Sprintf("failed to encode result: %v", err)), nil
		}
		return mcpText(string(b)), nil
	}
}

func mcpText(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: text},
		},
	}
}

func mcpError(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.TextContent{Type: "text", Text: msg},
		},
		IsError: true,
	}
}
