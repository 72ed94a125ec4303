// Package assistant answers student messages through a text-generation backend.
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/uidejarvis/jarvis/internal/infra/llm"
)

// SystemPrompt sets the assistant persona for every request.
const SystemPrompt = "Eres Jarvis, un asistente útil para estudiantes de la UIDE. " +
	"Respondes siempre en español, de forma clara y breve."

// Generator is the subset of llm.LLMProvider the service needs.
type Generator interface {
	Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error)
}

// EmptyAnswerError is returned when the backend produced no text, even after
// the warm-up retry. Raw is the last upstream response body.
type EmptyAnswerError struct {
	DoneReason string
	Raw        string
}

func (e *EmptyAnswerError) Error() string {
	return fmt.Sprintf("Respuesta inesperada del modelo (done_reason=%q): %s", e.DoneReason, e.Raw)
}

// AnswerService composes the prompt and applies the single warm-up retry.
type AnswerService struct {
	llm     Generator
	timeout time.Duration
	logger  *zap.Logger
}

// NewAnswerService creates an AnswerService. timeout bounds a whole Generate
// call, warm-up retry included; zero leaves the caller's deadline alone.
// A nil logger disables logging.
func NewAnswerService(g Generator, timeout time.Duration, logger *zap.Logger) *AnswerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AnswerService{llm: g, timeout: timeout, logger: logger}
}

// Generate returns the trimmed answer for message.
//
// If the first response is empty and reports done_reason "load" (the backend
// only loaded the model), the same request is issued exactly once more.
// Any empty answer after that is an *EmptyAnswerError. Transport errors are
// returned wrapped and never retried.
func (s *AnswerService) Generate(ctx context.Context, message string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	req := llm.GenerateRequest{Prompt: BuildPrompt(message)}

	resp, err := s.llm.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	text := strings.TrimSpace(resp.Text)

	if text == "" && resp.DoneReason == llm.DoneReasonLoad {
		s.logger.Info("model was loading, retrying generation once")
		resp, err = s.llm.Generate(ctx, req)
		if err != nil {
			return "", fmt.Errorf("generate answer after warm-up: %w", err)
		}
		text = strings.TrimSpace(resp.Text)
	}

	if text == "" {
		s.logger.Warn("model returned no text",
			zap.String("done_reason", resp.DoneReason),
			zap.ByteString("raw", resp.Raw))
		return "", &EmptyAnswerError{DoneReason: resp.DoneReason, Raw: string(resp.Raw)}
	}
	return text, nil
}

// BuildPrompt wraps message in the persona and turn markers.
func BuildPrompt(message string) string {
	b := strings.Builder{}
	b.WriteString(SystemPrompt)
	b.WriteString("\n\nUsuario: ")
	b.WriteString(message)
	b.WriteString("\nAsistente:")
	return b.String()
}
