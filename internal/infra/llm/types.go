// Package llm defines the model-agnostic text-generation provider abstraction.
// All types here are shared between the provider interface and adapters.
package llm

// DoneReasonLoad is reported by Ollama when a call only loaded the model into
// memory and produced no text.
const DoneReasonLoad = "load"

// GenerateRequest is the input for a single non-streaming generation.
type GenerateRequest struct {
	// Model overrides the provider default when non-empty.
	Model  string
	Prompt string
}

// GenerateResponse is the output from a single non-streaming generation.
type GenerateResponse struct {
	Text       string // Generated text, untrimmed.
	DoneReason string // "stop" | "length" | "load" | ...
	Raw        []byte // Upstream response body, kept for diagnostics.
}

// ModelMeta describes the model / provider identity.
type ModelMeta struct {
	ID       string // e.g. "llama3.2"
	Provider string // e.g. "ollama", "openai"
}
