package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/johnquangdev/insight-stream/pkg/config"
)

// Provider names an LLM backend
type Provider string

const (
	ProviderGroq   Provider = "groq"
	ProviderGemini Provider = "gemini"
)

// ErrNoProvider is returned when neither LLM provider has credentials
var ErrNoProvider = errors.New("no LLM provider configured: set GROQ_API_KEY or GOOGLE_API_KEY")

// ChatRequest is a single-turn prompt
type ChatRequest struct {
	Model       string // empty means the configured default
	System      string
	Prompt      string
	Temperature float32
}

// ChatClient completes a single-turn prompt
type ChatClient interface {
	Complete(ctx context.Context, req ChatRequest) (string, error)
}

// chatModelBuilder constructs an eino chat model for a provider
type chatModelBuilder func(ctx context.Context, provider Provider, modelName, apiKey string, temperature float32) (model.ToolCallingChatModel, error)

// ModelFactory routes chat requests to Groq (OpenAI-compatible) or Gemini
// through eino chat models, using the current runtime settings
type ModelFactory struct {
	cfg      *config.AIConfig
	settings *config.RuntimeSettings
	build    chatModelBuilder
	logger   *zap.Logger
}

// NewModelFactory creates a model factory
func NewModelFactory(cfg *config.AIConfig, settings *config.RuntimeSettings, logger *zap.Logger) *ModelFactory {
	f := &ModelFactory{cfg: cfg, settings: settings, logger: logger}
	f.build = f.buildChatModel
	return f
}

// Resolve picks the provider and concrete model for a requested model id.
// Gemini model ids go to Gemini; everything else goes to Groq. When the chosen
// provider has no key the other provider is used with its fallback model.
func (f *ModelFactory) Resolve(requested string) (Provider, string, error) {
	s := f.settings.Snapshot()

	name := strings.TrimSpace(requested)
	if name == "" {
		name = s.DefaultModel
	}

	if strings.Contains(strings.ToLower(name), "gemini") {
		switch {
		case s.GoogleAPIKey != "":
			return ProviderGemini, name, nil
		case s.GroqAPIKey != "":
			return ProviderGroq, f.cfg.GroqFallbackModel, nil
		}
		return "", "", ErrNoProvider
	}

	switch {
	case s.GroqAPIKey != "":
		return ProviderGroq, name, nil
	case s.GoogleAPIKey != "":
		return ProviderGemini, f.cfg.GeminiModel, nil
	}
	return "", "", ErrNoProvider
}

// Complete sends one request to the resolved provider. There is no retry.
func (f *ModelFactory) Complete(ctx context.Context, req ChatRequest) (string, error) {
	provider, modelName, err := f.Resolve(req.Model)
	if err != nil {
		return "", err
	}

	s := f.settings.Snapshot()
	key := s.GroqAPIKey
	if provider == ProviderGemini {
		key = s.GoogleAPIKey
	}

	cm, err := f.build(ctx, provider, modelName, key, req.Temperature)
	if err != nil {
		return "", fmt.Errorf("init %s chat model: %w", provider, err)
	}

	messages := make([]*schema.Message, 0, 2)
	if req.System != "" {
		messages = append(messages, schema.SystemMessage(req.System))
	}
	messages = append(messages, schema.UserMessage(req.Prompt))

	if f.logger != nil {
		f.logger.Debug("🤖 LLM request", zap.String("provider", string(provider)), zap.String("model", modelName))
	}

	resp, err := cm.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("%s generate failed: %w", provider, err)
	}
	return resp.Content, nil
}

func (f *ModelFactory) buildChatModel(ctx context.Context, provider Provider, modelName, apiKey string, temperature float32) (model.ToolCallingChatModel, error) {
	switch provider {
	case ProviderGroq:
		return openai.NewChatModel(ctx, &openai.ChatModelConfig{
			BaseURL:     strings.TrimRight(f.cfg.GroqBaseURL, "/") + "/openai/v1",
			APIKey:      apiKey,
			Model:       modelName,
			Temperature: &temperature,
			Timeout:     f.cfg.HTTPTimeout,
		})
	case ProviderGemini:
		client, err := NewGenAIClient(ctx, apiKey)
		if err != nil {
			return nil, err
		}
		return gemini.NewChatModel(ctx, &gemini.Config{
			Client:      client,
			Model:       modelName,
			Temperature: &temperature,
		})
	}
	return nil, fmt.Errorf("unknown provider %q", provider)
}
