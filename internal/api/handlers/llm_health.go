package handlers

import (
	"context"
	"net/http"

	"github.com/uidejarvis/jarvis/internal/infra/llm"
)

// ProviderChecker is the subset of llm.LLMProvider used for health reporting.
type ProviderChecker interface {
	HealthCheck(ctx context.Context) error
	ModelInfo() llm.ModelMeta
}

// LLMHealthHandler reports whether the generation backend is reachable.
type LLMHealthHandler struct {
	provider ProviderChecker
}

// NewLLMHealthHandler creates an LLMHealthHandler.
func NewLLMHealthHandler(provider ProviderChecker) *LLMHealthHandler {
	return &LLMHealthHandler{provider: provider}
}

type llmHealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}

// Check handles GET /health/llm.
func (h *LLMHealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	if err := h.provider.HealthCheck(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "llm unavailable: "+err.Error())
		return
	}
	meta := h.provider.ModelInfo()
	writeJSON(w, http.StatusOK, llmHealthResponse{Status: "ok", Provider: meta.Provider, Model: meta.ID})
}
