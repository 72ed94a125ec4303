package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/uidejarvis/jarvis/internal/api/ctxkeys"
)

// HeaderRequestID carries the correlation id in both directions.
const HeaderRequestID = "X-Request-Id"

const maxRequestIDLen = 128

// RequestID reuses the caller's X-Request-Id when present, otherwise assigns a
// UUIDv7. The id is stored under ctxkeys.RequestID and echoed in the response.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = newRequestID()
		}

		w.Header().Set(HeaderRequestID, id)
		ctx := ctxkeys.WithValue(r.Context(), ctxkeys.RequestID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
