package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider implements LLMProvider against any OpenAI-compatible
// chat-completions endpoint (Ollama serves one under /v1).
type OpenAIProvider struct {
	api   *openai.Client
	model string
}

// NewOpenAIProvider creates an OpenAIProvider. An empty baseURL keeps the
// library default. A non-positive timeout selects DefaultTimeout.
func NewOpenAIProvider(baseURL, apiKey, model string, timeout time.Duration) *OpenAIProvider {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	cfg.HTTPClient = &http.Client{Timeout: timeout}

	return &OpenAIProvider{
		api:   openai.NewClientWithConfig(cfg),
		model: model,
	}
}

// Generate sends the prompt as a single user message.
func (p *OpenAIProvider) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	model := req.Model
	if model == "" {
		model = p.model
	}

	resp, err := p.api.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: req.Prompt},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		return nil, fmt.Errorf("encode chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return &GenerateResponse{Raw: raw}, nil
	}

	choice := resp.Choices[0]
	return &GenerateResponse{
		Text:       choice.Message.Content,
		DoneReason: string(choice.FinishReason),
		Raw:        raw,
	}, nil
}

// ModelInfo returns static metadata for this provider/model.
func (p *OpenAIProvider) ModelInfo() ModelMeta {
	return ModelMeta{
		ID:       p.model,
		Provider: "openai",
	}
}

// HealthCheck lists models and returns nil if the endpoint answers.
func (p *OpenAIProvider) HealthCheck(ctx context.Context) error {
	if _, err := p.api.ListModels(ctx); err != nil {
		return fmt.Errorf("openai healthcheck: %w", err)
	}
	return nil
}
