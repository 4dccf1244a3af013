// Package log provides a small structured key/value logger with levels,
// request-id propagation through context, and pluggable transports.
package log

import (
	"context"
	"fmt"
	"os"
	"sync"
)

// Logger delivers structured entries to its transports. Delivery is
// synchronous and serialized; a failing transport falls back to stderr.
type Logger struct {
	mu         sync.Mutex
	level      Level
	transports []Transport
	baseFields map[string]any
}

// New creates a logger with the given minimum level and transports.
func New(level Level, transports ...Transport) *Logger {
	return &Logger{
		level:      level,
		transports: transports,
		baseFields: map[string]any{},
	}
}

// SetLevel changes the minimum log level.
func (l *Logger) SetLevel(level Level) {
	l.mu.Lock()
	l.level = level
	l.mu.Unlock()
}

// With returns a child logger carrying additional base fields. The child
// shares the parent's transports.
func (l *Logger) With(keysAndValues ...any) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()

	fields := make(map[string]any, len(l.baseFields)+len(keysAndValues)/2)
	for k, v := range l.baseFields {
		fields[k] = v
	}
	child := &Logger{level: l.level, transports: l.transports, baseFields: fields}
	e := Entry{Fields: fields}
	e.addPairs(keysAndValues)
	return child
}

func (l *Logger) log(level Level, ctx context.Context, msg string, keysAndValues []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.level.Enables(level) {
		return
	}

	entry := newEntry(level, msg)
	for k, v := range l.baseFields {
		entry.Fields[k] = v
	}
	if ctx != nil {
		entry.RequestID = RequestIDFromContext(ctx)
	}
	entry.addPairs(keysAndValues)

	for _, t := range l.transports {
		if err := t.Write(entry); err != nil {
			fmt.Fprintf(os.Stderr, "log transport failed: %v\n", err)
		}
	}
}

// Debug logs at Debug level.
func (l *Logger) Debug(msg string, keysAndValues ...any) {
	l.log(Debug, nil, msg, keysAndValues)
}

// Info logs at Info level.
func (l *Logger) Info(msg string, keysAndValues ...any) {
	l.log(Info, nil, msg, keysAndValues)
}

// Warn logs at Warn level.
func (l *Logger) Warn(msg string, keysAndValues ...any) {
	l.log(Warn, nil, msg, keysAndValues)
}

// Error logs at Error level.
func (l *Logger) Error(msg string, keysAndValues ...any) {
	l.log(Error, nil, msg, keysAndValues)
}

// DebugCtx logs at Debug level with context.
func (l *Logger) DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Debug, ctx, msg, keysAndValues)
}

// InfoCtx logs at Info level with context.
func (l *Logger) InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Info, ctx, msg, keysAndValues)
}

// WarnCtx logs at Warn level with context.
func (l *Logger) WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Warn, ctx, msg, keysAndValues)
}

// ErrorCtx logs at Error level with context.
func (l *Logger) ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	l.log(Error, ctx, msg, keysAndValues)
}

// --- default logger ---

var (
	defaultMu     sync.RWMutex
	defaultLogger = New(Info, NewStdout())
)

// SetDefault replaces the package-level default logger.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
}

// Default returns the package-level default logger.
func Default() *Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// DebugCtx logs at Debug level through the default logger.
func DebugCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().DebugCtx(ctx, msg, keysAndValues...)
}

// InfoCtx logs at Info level through the default logger.
func InfoCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().InfoCtx(ctx, msg, keysAndValues...)
}

// WarnCtx logs at Warn level through the default logger.
func WarnCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().WarnCtx(ctx, msg, keysAndValues...)
}

// ErrorCtx logs at Error level through the default logger.
func ErrorCtx(ctx context.Context, msg string, keysAndValues ...any) {
	Default().ErrorCtx(ctx, msg, keysAndValues...)
}
