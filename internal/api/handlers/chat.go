package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/uidejarvis/jarvis/internal/api/ctxkeys"
)

// ChatErrorPrefix precedes the underlying error text in /chat failures.
const ChatErrorPrefix = "Error generando respuesta: "

// AnswerGenerator produces an answer for a user message.
// assistant.AnswerService satisfies this interface.
type AnswerGenerator interface {
	Generate(ctx context.Context, message string) (string, error)
}

// ChatHandler handles POST /chat.
type ChatHandler struct {
	answers AnswerGenerator
	logger  *zap.Logger
}

// NewChatHandler creates a ChatHandler. A nil logger disables logging.
func NewChatHandler(answers AnswerGenerator, logger *zap.Logger) *ChatHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ChatHandler{answers: answers, logger: logger}
}

type chatRequest struct {
	Message *string `json:"message"`
}

type chatResponse struct {
	Answer string `json:"answer"`
}

// Chat handles POST /chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	if req.Message == nil {
		writeError(w, http.StatusUnprocessableEntity, "message is required")
		return
	}

	answer, err := h.answers.Generate(r.Context(), *req.Message)
	if err != nil {
		h.logger.Error("answer generation failed",
			zap.String("request_id", ctxkeys.String(r.Context(), ctxkeys.RequestID)),
			zap.Error(err))
		writeError(w, http.StatusInternalServerError, ChatErrorPrefix+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, chatResponse{Answer: answer})
}
