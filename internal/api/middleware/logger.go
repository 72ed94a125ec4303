package middleware

import (
	"fmt"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/uidejarvis/jarvis/internal/api/ctxkeys"
)

// RequestLogger logs one line per request through zap. It plugs into chi's
// RequestLogger, so chimw.Recoverer reports panics through the same logger.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return chimw.RequestLogger(&zapLogFormatter{logger: logger})
}

type zapLogFormatter struct {
	logger *zap.Logger
}

func (f *zapLogFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &zapLogEntry{logger: f.logger.With(
		zap.String("request_id", ctxkeys.String(r.Context(), ctxkeys.RequestID)),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("remote_addr", r.RemoteAddr),
	)}
}

type zapLogEntry struct {
	logger *zap.Logger
}

func (e *zapLogEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	fields := []zap.Field{
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("elapsed", elapsed),
	}
	switch {
	case status >= http.StatusInternalServerError:
		e.logger.Error("request completed", fields...)
	case status >= http.StatusBadRequest:
		e.logger.Info("request rejected", fields...)
	default:
		e.logger.Info("request completed", fields...)
	}
}

func (e *zapLogEntry) Panic(v interface{}, stack []byte) {
	e.logger.Error("request panicked",
		zap.String("panic", fmt.Sprint(v)),
		zap.ByteString("stack", stack))
}
