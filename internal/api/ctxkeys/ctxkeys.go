// Package ctxkeys holds the typed context keys shared by the API layer.
// Kept as a leaf package to avoid import cycles between api, middleware and handlers.
package ctxkeys

import "context"

// Key is the named type for all API context keys.
// Using a named type avoids collisions with string keys from other packages
// at runtime (context.Value compares both type and value).
type Key string

const (
	// RequestID is the context key for the per-request correlation id.
	// Injected by middleware.RequestID, read by the request logger and handlers.
	RequestID Key = "request_id"
)

// WithValue adds a ctxkeys.Key value to the context.
func WithValue(ctx context.Context, key Key, value string) context.Context {
	return context.WithValue(ctx, key, value)
}

// String returns the string stored under key, or "" if absent.
func String(ctx context.Context, key Key) string {
	v, _ := ctx.Value(key).(string)
	return v
}
