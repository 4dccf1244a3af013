package log

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey int

const requestIDKey contextKey = iota

// WithRequestID attaches a request ID to the context; every entry logged
// through a *Ctx method carries it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext extracts the request ID, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
