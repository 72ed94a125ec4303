package llm

import "context"

// LLMProvider is the interface every generation backend adapter implements.
type LLMProvider interface {
	// Generate performs one non-streaming generation. It does not retry.
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)

	// ModelInfo returns static metadata about the provider/model.
	ModelInfo() ModelMeta

	// HealthCheck returns nil if the provider is reachable and operational.
	HealthCheck(ctx context.Context) error
}
