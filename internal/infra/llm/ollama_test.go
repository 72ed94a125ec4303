// Uses httptest.NewServer to mock the Ollama HTTP API: no real Ollama needed.
package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"
)

// ============================================================================
// Generate tests
// ============================================================================

func TestOllamaProvider_Generate_Success(t *testing.T) {
	t.Parallel()

	var got ollamaGenerateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/generate" || r.Method != http.MethodPost {
			http.Error(w, "unexpected path", http.StatusNotFound)
			return
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			http.Error(w, "bad content type", http.StatusUnsupportedMediaType)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(ollamaGenerateResponse{ //nolint:errcheck
			Model:      got.Model,
			Response:   "Hola desde Ollama",
			DoneReason: "stop",
			Done:       true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	resp, err := p.Generate(context.Background(), GenerateRequest{Prompt: "Hola"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "Hola desde Ollama" {
		t.Errorf("expected 'Hola desde Ollama', got %q", resp.Text)
	}
	if resp.DoneReason != "stop" {
		t.Errorf("expected DoneReason 'stop', got %q", resp.DoneReason)
	}
	if !strings.Contains(string(resp.Raw), "Hola desde Ollama") {
		t.Errorf("expected raw body to be kept, got %q", resp.Raw)
	}
	if got.Model != "llama3.2" || got.Prompt != "Hola" || got.Stream {
		t.Errorf("unexpected upstream request: %+v", got)
	}
}

func TestOllamaProvider_Generate_ModelOverride(t *testing.T) {
	t.Parallel()

	var model string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ollamaGenerateRequest
		json.NewDecoder(r.Body).Decode(&req) //nolint:errcheck
		model = req.Model
		json.NewEncoder(w).Encode(ollamaGenerateResponse{Response: "ok", Done: true}) //nolint:errcheck
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "llama3.2", time.Second)
	if _, err := p.Generate(context.Background(), GenerateRequest{Model: "qwen2.5", Prompt: "x"}); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if model != "qwen2.5" {
		t.Errorf("expected model override 'qwen2.5', got %q", model)
	}
}

func TestOllamaProvider_Generate_LoadResponse(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"model":"llama3.2","response":"","done":true,"done_reason":"load"}`)) //nolint:errcheck
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	resp, err := p.Generate(context.Background(), GenerateRequest{Prompt: "x"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if resp.Text != "" || resp.DoneReason != DoneReasonLoad {
		t.Errorf("expected empty load response, got %+v", resp)
	}
}

func TestOllamaProvider_Generate_ServerError_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	_, err := p.Generate(context.Background(), GenerateRequest{Prompt: "hi"})
	if err == nil {
		t.Fatal("expected error for 500 response, got nil")
	}
	if !strings.Contains(err.Error(), "status 500") {
		t.Errorf("expected status in error, got %q", err.Error())
	}
}

func TestOllamaProvider_Generate_InvalidJSON_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`)) //nolint:errcheck
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	if _, err := p.Generate(context.Background(), GenerateRequest{Prompt: "hi"}); err == nil {
		t.Error("expected decode error, got nil")
	}
}

func TestOllamaProvider_Generate_Timeout_ReturnsError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	p := NewOllamaProvider(srv.URL, "llama3.2", 50*time.Millisecond)
	if _, err := p.Generate(context.Background(), GenerateRequest{Prompt: "hi"}); err == nil {
		t.Error("expected timeout error, got nil")
	}
	if calls.Load() != 1 {
		t.Errorf("expected exactly one upstream call, got %d", calls.Load())
	}
}

// ============================================================================
// HealthCheck tests
// ============================================================================

func TestOllamaProvider_HealthCheck_Healthy(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/tags" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]any{"models": []any{}}) //nolint:errcheck
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	if err := p.HealthCheck(context.Background()); err != nil {
		t.Errorf("expected healthy, got error: %v", err)
	}
}

func TestOllamaProvider_HealthCheck_Down_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // Closed before the health check call.

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	if err := p.HealthCheck(context.Background()); err == nil {
		t.Error("expected error when server is down, got nil")
	}
}

func TestOllamaProvider_HealthCheck_BadStatus_ReturnsError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "service unavailable", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL, "llama3.2", 0)
	if err := p.HealthCheck(context.Background()); err == nil {
		t.Error("expected error for 503, got nil")
	}
}

// ============================================================================
// ModelInfo / constructor tests
// ============================================================================

func TestOllamaProvider_ModelInfo_ReturnsMetadata(t *testing.T) {
	t.Parallel()

	p := NewOllamaProvider("http://localhost:11434", "llama3.2", 0)
	meta := p.ModelInfo()
	if meta.ID != "llama3.2" {
		t.Errorf("expected model ID 'llama3.2', got %q", meta.ID)
	}
	if meta.Provider != "ollama" {
		t.Errorf("expected provider 'ollama', got %q", meta.Provider)
	}
	if p.httpClient.Timeout != DefaultTimeout {
		t.Errorf("expected default timeout %v, got %v", DefaultTimeout, p.httpClient.Timeout)
	}
}
